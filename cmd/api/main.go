package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/jhoicas/ids-inventory-api/internal/application/auth"
	"github.com/jhoicas/ids-inventory-api/internal/application/catalog"
	"github.com/jhoicas/ids-inventory-api/internal/application/placement"
	appreport "github.com/jhoicas/ids-inventory-api/internal/application/report"
	"github.com/jhoicas/ids-inventory-api/internal/application/search"
	"github.com/jhoicas/ids-inventory-api/internal/application/usecase"
	infraai "github.com/jhoicas/ids-inventory-api/internal/infrastructure/ai"
	"github.com/jhoicas/ids-inventory-api/internal/infrastructure/postgres"
	infrareport "github.com/jhoicas/ids-inventory-api/internal/infrastructure/report"
	httpRouter "github.com/jhoicas/ids-inventory-api/internal/interfaces/http"
	"github.com/jhoicas/ids-inventory-api/pkg/config"
	"github.com/jhoicas/ids-inventory-api/pkg/logger"
)

// runMigrations aplica las migraciones pendientes con Goose sobre el driver
// pgx estándar.
func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := runMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	featureRepo := postgres.NewFeatureRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	placementRepo := postgres.NewPlacementRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	approvalRepo := postgres.NewApprovalRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	catalogUC := catalog.NewUseCase(productRepo, categoryRepo, warehouseRepo, inventoryRepo, placementRepo, batchRepo)
	placementUC := placement.NewUseCase(productRepo, warehouseRepo, placementRepo, txRunner)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	warehouseUC := usecase.NewWarehouseUseCase(locationRepo, warehouseRepo)
	inventoryUC := usecase.NewInventoryUseCase(productRepo, warehouseRepo, inventoryRepo)
	approvalUC := usecase.NewApprovalUseCase(approvalRepo, productRepo, catalogUC)
	featureUC := usecase.NewFeatureUseCase(featureRepo, userRepo)

	visionSvc := infraai.NewGeminiVisionService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	searchUC := search.NewUseCase(productRepo, visionSvc, log)

	reportUC := appreport.NewUseCase(
		productRepo, categoryRepo, warehouseRepo, inventoryRepo, placementRepo, batchRepo,
		infrareport.NewExcelGenerator(), infrareport.NewLabelPDFGenerator(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "IDS Inventory API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		CatalogUC:      catalogUC,
		PlacementUC:    placementUC,
		CategoryUC:     categoryUC,
		WarehouseUC:    warehouseUC,
		InventoryUC:    inventoryUC,
		ApprovalUC:     approvalUC,
		FeatureUC:      featureUC,
		SearchUC:       searchUC,
		ReportUC:       reportUC,
		JWTSecret:      cfg.JWT.Secret,
		MetricsEnabled: cfg.Metrics.Enabled,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
