package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cafeteria-api/internal/application/auth"
	"github.com/tu-usuario/cafeteria-api/internal/application/reports"
	"github.com/tu-usuario/cafeteria-api/internal/application/sales"
	"github.com/tu-usuario/cafeteria-api/internal/application/stock"
	"github.com/tu-usuario/cafeteria-api/internal/application/usecase"
	"github.com/tu-usuario/cafeteria-api/internal/domain/entity"
	"github.com/tu-usuario/cafeteria-api/internal/domain/units"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CategoryUC   *usecase.CategoryUseCase
	IngredientUC *usecase.IngredientUseCase
	ProductUC    *usecase.ProductUseCase
	SaleUC       *sales.SaleUseCase
	StockUC      *stock.StockUseCase
	ReportUC     *reports.ReportUseCase
	Units        *units.Table
	JWTSecret    string
}

// Router registra las rutas de la API. Lecturas abiertas a cualquier usuario
// autenticado; mutaciones de catálogo restringidas a admin y manager (staff
// solo registra ventas y compras de stock).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	manageOnly := RequireRole(entity.RoleAdmin, entity.RoleManager)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	// Unidades de medida
	unitHandler := NewUnitHandler(deps.Units)
	protected.Get("/units", unitHandler.List)

	// Categorías de ingredientes
	categories := protected.Group("/ingredient-categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", manageOnly, categoryHandler.Create)
	categories.Put("/:id", manageOnly, categoryHandler.Update)
	categories.Delete("/:id", manageOnly, categoryHandler.Delete)

	// Ingredientes
	ingredients := protected.Group("/ingredients")
	ingredientHandler := NewIngredientHandler(deps.IngredientUC)
	ingredients.Get("/", ingredientHandler.List)
	ingredients.Get("/:id", ingredientHandler.GetByID)
	ingredients.Post("/", manageOnly, ingredientHandler.Create)
	ingredients.Put("/:id", manageOnly, ingredientHandler.Update)
	ingredients.Delete("/:id", manageOnly, ingredientHandler.Delete)

	// Productos del menú
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/categories", productHandler.ListCategories)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", manageOnly, productHandler.Create)
	products.Put("/:id", manageOnly, productHandler.Update)
	products.Delete("/:id", manageOnly, productHandler.Delete)

	// Ventas (staff puede registrar; eliminar es de gestión)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Post("/", saleHandler.Register)
	salesGroup.Delete("/:id", manageOnly, saleHandler.Delete)

	// Compras de stock
	stockGroup := protected.Group("/stock-updates")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Get("/", stockHandler.List)
	stockGroup.Get("/:id", stockHandler.GetByID)
	stockGroup.Post("/", stockHandler.Create)
	stockGroup.Delete("/:id", manageOnly, stockHandler.Delete)

	// Reportes, finanzas y dashboard
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup := protected.Group("/reports")
	reportsGroup.Get("/sales", reportHandler.Sales)
	reportsGroup.Get("/stock-updates", reportHandler.StockUpdates)
	protected.Get("/finance/overview", reportHandler.Finance)
	protected.Get("/dashboard/summary", reportHandler.Dashboard)
	protected.Get("/dashboard/low-stock-alerts", reportHandler.LowStockAlerts)
}
