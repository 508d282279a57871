// Package api provides HTTP handlers for the PickHealth API.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pickhealth/platform/internal/auth"
	"github.com/pickhealth/platform/internal/domain"
	"github.com/pickhealth/platform/internal/store"
)

// Handler provides common handler dependencies.
type Handler struct {
	auth    *auth.Service
	records *store.RecordStore
}

// NewHandler creates a new Handler with common dependencies.
func NewHandler(authSvc *auth.Service, records *store.RecordStore) *Handler {
	return &Handler{auth: authSvc, records: records}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// accountView is the session projection returned to the rendering layer.
// It never includes the password.
type accountView struct {
	Kind      domain.AccountKind `json:"kind"`
	Email     string             `json:"email"`
	FirstName string             `json:"first_name"`
	LastName  string             `json:"last_name"`
	Phone     string             `json:"phone"`
	Location  string             `json:"location"`
	CreatedAt string             `json:"created_at"`

	CompanyName string `json:"company_name,omitempty"`
	Industry    string `json:"industry,omitempty"`
	TeamSize    string `json:"team_size,omitempty"`
	Budget      string `json:"budget,omitempty"`

	BusinessName   string `json:"business_name,omitempty"`
	Cuisine        string `json:"cuisine,omitempty"`
	Website        string `json:"website,omitempty"`
	Capacity       string `json:"capacity,omitempty"`
	DeliveryRadius string `json:"delivery_radius,omitempty"`
	Description    string `json:"description,omitempty"`
}

func viewOf(a domain.Account) accountView {
	return accountView{
		Kind:           a.Kind,
		Email:          a.Email,
		FirstName:      a.FirstName,
		LastName:       a.LastName,
		Phone:          a.Phone,
		Location:       a.Location,
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
		CompanyName:    a.CompanyName,
		Industry:       a.Industry,
		TeamSize:       a.TeamSize,
		Budget:         a.Budget,
		BusinessName:   a.BusinessName,
		Cuisine:        a.Cuisine,
		Website:        a.Website,
		Capacity:       a.Capacity,
		DeliveryRadius: a.DeliveryRadius,
		Description:    a.Description,
	}
}
