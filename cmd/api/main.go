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
	"github.com/tu-usuario/cafeteria-api/internal/application/auth"
	"github.com/tu-usuario/cafeteria-api/internal/application/reports"
	"github.com/tu-usuario/cafeteria-api/internal/application/sales"
	"github.com/tu-usuario/cafeteria-api/internal/application/stock"
	"github.com/tu-usuario/cafeteria-api/internal/application/usecase"
	"github.com/tu-usuario/cafeteria-api/internal/domain/units"
	"github.com/tu-usuario/cafeteria-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/cafeteria-api/internal/interfaces/http"
	"github.com/tu-usuario/cafeteria-api/pkg/config"
	"github.com/tu-usuario/cafeteria-api/pkg/logger"
	"github.com/tu-usuario/cafeteria-api/pkg/metrics"
)

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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	unitTable := units.NewTable()

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	ingredientRepo := postgres.NewIngredientRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	stockUpdateRepo := postgres.NewStockUpdateRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:         cfg.JWT.Secret,
		ExpMinutes:     cfg.JWT.Expiration,
		RefreshExpDays: cfg.JWT.RefreshExpDays,
		Issuer:         cfg.JWT.Issuer,
	})
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	ingredientUC := usecase.NewIngredientUseCase(ingredientRepo, categoryRepo, unitTable)
	productUC := usecase.NewProductUseCase(productRepo, ingredientRepo, unitTable)
	saleUC := sales.NewSaleUseCase(txRunner, productRepo, saleRepo, unitTable)
	stockUC := stock.NewStockUseCase(txRunner, ingredientRepo, stockUpdateRepo, unitTable)
	reportUC := reports.NewReportUseCase(reportRepo, ingredientUC, cfg.Finance.StartingBalance)

	// Categorías por defecto (idempotente)
	if err := categoryUC.SeedDefaults(); err != nil {
		log.Warn().Err(err).Msg("sembrado de categorías por defecto")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cafetería Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", metrics.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CategoryUC:   categoryUC,
		IngredientUC: ingredientUC,
		ProductUC:    productUC,
		SaleUC:       saleUC,
		StockUC:      stockUC,
		ReportUC:     reportUC,
		Units:        unitTable,
		JWTSecret:    cfg.JWT.Secret,
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
