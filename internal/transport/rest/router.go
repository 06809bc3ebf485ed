package rest

import (
	"log/slog"
	"net/http"
)

// RouterDeps bundles everything the HTTP surface needs.
type RouterDeps struct {
	Logger   *slog.Logger
	Items    itemService
	Settings settingsService
	DB       dbPinger
	Version  string
}

// NewRouter builds the ServeMux with all routes registered.
func NewRouter(deps RouterDeps) *http.ServeMux {
	health := NewHealthHandler(deps.DB, deps.Version)
	items := NewItemHandler(deps.Items, deps.Logger)
	settings := NewSettingsHandler(deps.Settings, deps.Logger)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /health/live", health.Live)
	mux.HandleFunc("GET /health/ready", health.Ready)

	mux.HandleFunc("POST /api/items", items.Create)
	mux.HandleFunc("GET /api/items", items.List)
	mux.HandleFunc("GET /api/items/{id}", items.Get)
	mux.HandleFunc("PATCH /api/items/{id}", items.Update)
	mux.HandleFunc("POST /api/items/{id}/status", items.SetStatus)
	mux.HandleFunc("POST /api/items/{id}/deliver", items.Deliver)
	mux.HandleFunc("POST /api/items/{id}/archive", items.Archive)
	mux.HandleFunc("DELETE /api/items/{id}", items.Delete)

	mux.HandleFunc("GET /api/settings", settings.Get)
	mux.HandleFunc("PATCH /api/settings", settings.Update)

	return mux
}
