package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tair/starwars-api/api-gateway/config"
	"github.com/tair/starwars-api/api-gateway/proxy"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix      string
	Description string
}

// Routes holds all route definitions
var Routes = []RouteDefinition{
	{
		Prefix:      "/people",
		Description: "Character endpoints",
	},
	{
		Prefix:      "/planets",
		Description: "Planet endpoints",
	},
	{
		Prefix:      "/users",
		Description: "User and favorites listing endpoints",
	},
	{
		Prefix:      "/favorite",
		Description: "Favorite add/remove endpoints",
	},
	{
		Prefix:      "/health",
		Description: "Backend health check",
	},
	{
		Prefix:      "/swagger",
		Description: "Backend API documentation",
	},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig) {
	reverseProxy := proxy.NewReverseProxy(cfg)

	// Gateway's own health endpoint
	app.Get("/gateway/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "api-gateway",
		})
	})

	for _, route := range Routes {
		app.All(route.Prefix+"/*", reverseProxy.ProxyRequest)
		app.All(route.Prefix, reverseProxy.ProxyRequest)
	}
}
