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

	"github.com/rutvikbarbhai/stockflow/internal/application/alerts"
	"github.com/rutvikbarbhai/stockflow/internal/application/inventory"
	"github.com/rutvikbarbhai/stockflow/internal/application/usecase"
	"github.com/rutvikbarbhai/stockflow/internal/infrastructure/postgres"
	"github.com/rutvikbarbhai/stockflow/internal/infrastructure/thresholds"
	httpRouter "github.com/rutvikbarbhai/stockflow/internal/interfaces/http"
	"github.com/rutvikbarbhai/stockflow/pkg/config"
	"github.com/rutvikbarbhai/stockflow/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	changeRepo := postgres.NewInventoryChangeRepository(pool)
	salesRepo := postgres.NewSalesRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	bundleRepo := postgres.NewBundleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	thresholdResolver, err := thresholds.New(cfg.Inventory.ThresholdsFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.Inventory.ThresholdsFile).Msg("cargar umbrales de stock")
	}

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	productUC := usecase.NewProductUseCase(productRepo, bundleRepo, txRunner)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, productRepo)
	changeLogUC := usecase.NewChangeLogUseCase(changeRepo, productRepo, warehouseRepo)
	provisionUC := inventory.NewProvisionProductUseCase(txRunner, warehouseRepo)
	adjustUC := inventory.NewAdjustQuantityUseCase(txRunner, productRepo, warehouseRepo, cfg.Inventory.AllowBackorder)
	recordSaleUC := inventory.NewRecordSaleUseCase(txRunner, productRepo, warehouseRepo, cfg.Inventory.AllowBackorder)
	lowStockUC := alerts.NewLowStockUseCase(inventoryRepo, salesRepo, supplierRepo, thresholdResolver, log, nil)

	// Recarga de umbrales en caliente vía SIGHUP
	go func() {
		hup := make(chan os.Signal, 1)
		signal.Notify(hup, syscall.SIGHUP)
		for range hup {
			if err := thresholdResolver.Reload(); err != nil {
				log.Error().Err(err).Msg("recarga de umbrales")
				continue
			}
			log.Info().Msg("umbrales de stock recargados")
		}
	}()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs. Solo se monta si el
	// archivo generado existe; el middleware hace panic con la ruta ausente.
	const swaggerFile = "./docs/swagger.json"
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Stockflow API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado, UI de documentación deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:        companyUC,
		WarehouseUC:      warehouseUC,
		ProductUC:        productUC,
		SupplierUC:       supplierUC,
		ChangeLogUC:      changeLogUC,
		ProvisionProduct: provisionUC,
		AdjustQuantity:   adjustUC,
		RecordSale:       recordSaleUC,
		LowStock:         lowStockUC,
		AlertWindowDays:  cfg.Inventory.AlertWindowDays,
		JWTSecret:        cfg.JWT.Secret,
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
