package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ids-inventory-api/internal/application/auth"
	"github.com/jhoicas/ids-inventory-api/internal/application/catalog"
	"github.com/jhoicas/ids-inventory-api/internal/application/placement"
	"github.com/jhoicas/ids-inventory-api/internal/application/report"
	"github.com/jhoicas/ids-inventory-api/internal/application/search"
	"github.com/jhoicas/ids-inventory-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	CatalogUC      *catalog.UseCase
	PlacementUC    *placement.UseCase
	CategoryUC     *usecase.CategoryUseCase
	WarehouseUC    *usecase.WarehouseUseCase
	InventoryUC    *usecase.InventoryUseCase
	ApprovalUC     *usecase.ApprovalUseCase
	FeatureUC      *usecase.FeatureUseCase
	SearchUC       *search.UseCase
	ReportUC       *report.UseCase
	JWTSecret      string
	MetricsEnabled bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.MetricsEnabled {
		app.Get("/metrics", MetricsHandler())
	}

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)

	// Users (protegido)
	users := protected.Group("/users")
	users.Get("/", authHandler.List)
	users.Put("/:id", authHandler.Update)

	// Features por usuario (protegido)
	featureHandler := NewFeatureHandler(deps.FeatureUC)
	users.Get("/:id/features", featureHandler.GetByUser)
	users.Put("/:id/features", featureHandler.Upsert)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Locations y Warehouses (protegido)
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	locations := protected.Group("/locations")
	locations.Post("/", warehouseHandler.CreateLocation)
	locations.Get("/", warehouseHandler.ListLocations)
	locations.Get("/:id", warehouseHandler.GetLocation)
	warehouses := protected.Group("/warehouses")
	warehouses.Post("/", warehouseHandler.CreateWarehouse)
	warehouses.Get("/", warehouseHandler.ListWarehouses)
	warehouses.Get("/:id", warehouseHandler.GetWarehouse)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Placements: motor de recepción de stock (protegido)
	placements := protected.Group("/placements")
	placementHandler := NewPlacementHandler(deps.PlacementUC)
	placements.Post("/", placementHandler.Create)
	placements.Get("/", placementHandler.List)
	placements.Get("/:id", placementHandler.GetByID)
	placements.Put("/:id", placementHandler.Update)
	placements.Delete("/:id", placementHandler.Delete)

	// Inventory: umbrales y consultas (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Get("/", inventoryHandler.GetByPair)
	invGroup.Put("/thresholds", inventoryHandler.UpsertThresholds)
	invGroup.Get("/product/:id", inventoryHandler.ListByProduct)
	invGroup.Get("/:id", inventoryHandler.GetByID)
	invGroup.Put("/:id", inventoryHandler.Update)

	// Approvals (protegido)
	approvals := protected.Group("/approvals")
	approvalHandler := NewApprovalHandler(deps.ApprovalUC)
	approvals.Post("/delete-requests", approvalHandler.CreateDeleteRequest)
	approvals.Get("/delete-requests", approvalHandler.ListDeleteRequests)
	approvals.Put("/delete-requests/:id", approvalHandler.ResolveDeleteRequest)
	approvals.Post("/product-requests", approvalHandler.CreateProductRequest)
	approvals.Get("/product-requests", approvalHandler.ListProductRequests)
	approvals.Put("/product-requests/:id", approvalHandler.ResolveProductRequest)

	// Búsqueda por imagen (protegido)
	searchGroup := protected.Group("/search")
	searchHandler := NewSearchHandler(deps.SearchUC, deps.CatalogUC)
	searchGroup.Get("/", searchHandler.ByWord)
	searchGroup.Post("/image", searchHandler.ByImage)

	// Reportes descargables (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/inventory.xlsx", reportHandler.InventoryWorkbook)
	reports.Get("/products/:id/labels.pdf", reportHandler.PlacementLabels)
}
