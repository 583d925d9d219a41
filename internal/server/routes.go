package server

import (
	"castnet/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api")

	// Character routes
	apiRoutes.GET("/characters", routes.GetCharactersHandler)
	apiRoutes.GET("/characters/:name/stats", routes.GetCharacterStatsHandler)

	// Ranking routes
	apiRoutes.GET("/top-connected", routes.GetTopConnectedHandler)
	apiRoutes.GET("/top-pairs", routes.GetTopPairsHandler)

	// Path finder route
	apiRoutes.GET("/path", routes.GetPathHandler)
}
