package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pickhealth/platform/internal/auth"
	"github.com/pickhealth/platform/internal/domain"
	"github.com/pickhealth/platform/internal/store"
)

// maxBodySize caps request bodies on the auth endpoints (1MB).
const maxBodySize = 1 << 20

// AuthHandler handles the sign-in, registration, and logout endpoints.
type AuthHandler struct {
	*Handler
}

// NewAuthHandler creates the auth endpoint handler.
func NewAuthHandler(base *Handler) *AuthHandler {
	return &AuthHandler{Handler: base}
}

// RegisterRoutes registers the auth routes.
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/register/corporate", h.RegisterCorporate)
		r.Post("/register/provider", h.RegisterProvider)
		r.Post("/logout", h.Logout)
		r.Get("/session", h.Session)
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Account  accountView `json:"account"`
	Redirect string      `json:"redirect"`
}

// Login authenticates an email/password pair and persists the session.
// Failures come back as typed JSON, never as a 5xx.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(w, r, &req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		Error(w, http.StatusBadRequest, "Please fill in all required fields")
		return
	}

	session, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			Error(w, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
			return
		}
		slog.Error("Login failed", "error", err)
		Error(w, http.StatusInternalServerError, "login failed")
		return
	}

	JSON(w, http.StatusOK, sessionResponse{
		Account:  viewOf(session.Account),
		Redirect: session.DashboardPath(),
	})
}

// RegisterCorporate creates a corporate client account.
func (h *AuthHandler) RegisterCorporate(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, domain.KindCorporate)
}

// RegisterProvider creates a meal provider account.
func (h *AuthHandler) RegisterProvider(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, domain.KindProvider)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request, kind domain.AccountKind) {
	var account domain.Account
	if err := decodeBody(w, r, &account); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	// The route decides the kind; a kind in the payload is ignored.
	account.Kind = kind

	session, err := h.auth.Register(r.Context(), account)
	if err != nil {
		var verr *auth.ValidationError
		switch {
		case errors.As(err, &verr):
			JSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  "validation_failed",
				"fields": verr.Fields.Messages(),
			})
		case errors.Is(err, store.ErrDuplicateAccount):
			Error(w, http.StatusConflict, store.ErrDuplicateAccount.Error())
		default:
			slog.Error("Registration failed", "error", err, "kind", kind)
			Error(w, http.StatusInternalServerError, "registration failed")
		}
		return
	}

	// Auto-login: the response carries the fresh session and its redirect.
	JSON(w, http.StatusCreated, sessionResponse{
		Account:  viewOf(session.Account),
		Redirect: session.DashboardPath(),
	})
}

// Logout clears the session. Idempotent: logging out while signed out still
// succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context()); err != nil {
		slog.Error("Logout failed", "error", err)
		Error(w, http.StatusInternalServerError, "logout failed")
		return
	}
	JSON(w, http.StatusOK, map[string]string{"redirect": "/"})
}

// Session returns the current session, or a 401 with a redirect hint when
// nobody is signed in. Protected views call this on load.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	session, err := h.auth.CurrentSession(r.Context())
	if err != nil {
		if errors.Is(err, auth.ErrNoSession) {
			JSON(w, http.StatusUnauthorized, map[string]string{
				"error":    "not_authenticated",
				"redirect": auth.AuthPath,
			})
			return
		}
		slog.Error("Session lookup failed", "error", err)
		Error(w, http.StatusInternalServerError, "session lookup failed")
		return
	}

	JSON(w, http.StatusOK, sessionResponse{
		Account:  viewOf(session.Account),
		Redirect: session.DashboardPath(),
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	return json.NewDecoder(r.Body).Decode(v)
}
