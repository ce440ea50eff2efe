package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "go-freight-dashboard/docs"
	"go-freight-dashboard/internal/api/handler"
	"go-freight-dashboard/internal/ws"
	"go-freight-dashboard/pkg/router"
)

// NewRouter wires the dashboard page, the JSON API, the websocket refresh
// feed, and the swagger UI onto one router.
func NewRouter(h *handler.Handler, hub *ws.Hub, page http.HandlerFunc) *router.Router {
	r := router.New()

	r.GET("/", router.HandlerFunc(page))

	r.GET("/api/v1/dashboard", h.Dashboard)
	r.GET("/api/v1/filters", h.Filters)
	r.GET("/api/v1/table", h.Table)
	r.GET("/api/v1/export.xlsx", h.ExportXLSX)
	r.POST("/api/v1/refresh", h.Refresh)
	r.GET("/api/v1/refreshes", h.Refreshes)

	r.GET("/ws/refresh", hub.ServeWS)

	r.Mount("/swagger", httpSwagger.WrapHandler)

	return r
}
