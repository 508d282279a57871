package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pickhealth/platform/internal/auth"
	"github.com/pickhealth/platform/internal/directory"
	"github.com/pickhealth/platform/internal/domain"
)

// DirectoryHandler serves the dashboard views: the provider directory for
// corporate users and the profile summary for providers.
type DirectoryHandler struct {
	*Handler
}

// NewDirectoryHandler creates the dashboard endpoint handler.
func NewDirectoryHandler(base *Handler) *DirectoryHandler {
	return &DirectoryHandler{Handler: base}
}

// RegisterRoutes registers the protected dashboard routes. Every route is
// gated on a present session.
func (h *DirectoryHandler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireSession(h.auth))
		r.Get("/api/providers", h.ListProviders)
		r.Get("/api/dashboard", h.Dashboard)
	})
}

// ListProviders returns provider accounts filtered by the optional search
// text and cuisine. An empty result is a valid response; the rendering
// layer shows its own "no results" placeholder.
func (h *DirectoryHandler) ListProviders(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.records.ListAccounts(r.Context())
	if err != nil {
		slog.Error("Failed to list accounts", "error", err)
		Error(w, http.StatusInternalServerError, "failed to load providers")
		return
	}

	filtered := directory.Filter(accounts, directory.Query{
		Search:  r.URL.Query().Get("search"),
		Cuisine: r.URL.Query().Get("cuisine"),
	})

	JSON(w, http.StatusOK, map[string]interface{}{
		"providers": directory.Cards(filtered),
		"count":     len(filtered),
	})
}

// Dashboard returns the data for the signed-in account's dashboard variant:
// corporate users additionally get the unfiltered provider directory.
func (h *DirectoryHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFromContext(r.Context())
	if session == nil {
		Error(w, http.StatusUnauthorized, "not_authenticated")
		return
	}

	resp := map[string]interface{}{
		"kind":         session.Account.Kind,
		"account":      viewOf(session.Account),
		"display_name": session.Account.DisplayName(),
	}

	if session.Account.Kind == domain.KindCorporate {
		accounts, err := h.records.ListAccounts(r.Context())
		if err != nil {
			slog.Error("Failed to list accounts for dashboard", "error", err)
			Error(w, http.StatusInternalServerError, "failed to load dashboard")
			return
		}
		providers := directory.Filter(accounts, directory.Query{})
		resp["providers"] = directory.Cards(providers)
	}

	JSON(w, http.StatusOK, resp)
}
