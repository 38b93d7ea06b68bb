package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Contadores del motor de colocaciones.
var (
	placementsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventory_placements_created_total",
		Help: "Colocaciones creadas por el motor.",
	})
	placementsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventory_placements_failed_total",
		Help: "Recepciones de stock rechazadas o revertidas.",
	})
)

// MetricsHandler expone el endpoint de Prometheus sobre Fiber.
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
