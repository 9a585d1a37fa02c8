package http_test

import (
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	apphttp "github.com/tu-usuario/cafeteria-api/internal/interfaces/http"
)

// registeredRoutes devuelve el conjunto "METHOD path" de la app, sin el slash
// final que fiber agrega a las rutas raíz de cada grupo.
func registeredRoutes(app *fiber.App) map[string]bool {
	routes := make(map[string]bool)
	for _, r := range app.GetRoutes() {
		path := strings.TrimSuffix(r.Path, "/")
		if path == "" {
			path = "/"
		}
		routes[r.Method+" "+path] = true
	}
	return routes
}

func TestRouter_RegistraLasRutasDeLaAPI(t *testing.T) {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{JWTSecret: "secreto"})

	routes := registeredRoutes(app)
	for _, want := range []string{
		"POST /api/auth/register",
		"POST /api/auth/login",
		"POST /api/auth/refresh",
		"GET /api/auth/me",
		"GET /api/units",
		"GET /api/ingredient-categories",
		"POST /api/ingredient-categories",
		"PUT /api/ingredient-categories/:id",
		"DELETE /api/ingredient-categories/:id",
		"GET /api/ingredients",
		"GET /api/products",
		"GET /api/products/categories",
		"POST /api/sales",
		"GET /api/sales",
		"POST /api/stock-updates",
		"GET /api/reports/sales",
		"GET /api/reports/stock-updates",
		"GET /api/finance/overview",
		"GET /api/dashboard/summary",
		"GET /api/dashboard/low-stock-alerts",
	} {
		assert.True(t, routes[want], "falta la ruta %s", want)
	}
}
