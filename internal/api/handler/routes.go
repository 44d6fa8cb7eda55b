package handler

import (
	"net/http"

	"github.com/vfg2006/ads-mcp-api/internal/api/handler/router"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// MCP exposes the streamable MCP transport. GET serves the SSE stream,
// POST carries client messages and DELETE closes the session.
func MCP(mcpHandler http.Handler) []router.Route {
	routes := make([]router.Route, 0, 3)
	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
		routes = append(routes, router.Route{
			Path:    "/mcp",
			Method:  method,
			Handler: mcpHandler,
		})
	}
	return routes
}
