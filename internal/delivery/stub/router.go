package stub

import (
	"jalsetu/internal/delivery/stub/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers, injected by Fx.
type RouterParams struct {
	fx.In

	AssessmentHandler *handler.AssessmentHandler
	AdvisoryHandler   *handler.AdvisoryHandler
	TokenHandler      *handler.TokenHandler `optional:"true"`
}

// registerRoutes mounts the endpoints the clients call, at the paths they call them.
func registerRoutes(e *echo.Echo, params RouterParams) {
	e.GET("/health", handler.HealthCheck)

	e.POST("/assess", params.AssessmentHandler.Assess)

	e.GET("/crop-suggestion", params.AdvisoryHandler.CropSuggestion)
	e.GET("/market-prices", params.AdvisoryHandler.MarketPrices)
	e.GET("/vendors", params.AdvisoryHandler.Vendors)
	e.GET("/water-management", params.AdvisoryHandler.WaterManagement)

	// Only mounted with local auth.
	if params.TokenHandler != nil {
		e.POST("/dev/token", params.TokenHandler.IssueToken)
	}
}
