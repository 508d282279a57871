// Package domain contains core domain types for the PickHealth platform.
package domain

import (
	"time"
)

// AccountKind distinguishes the two registration types.
type AccountKind string

const (
	// KindCorporate is a corporate client looking for meal providers.
	KindCorporate AccountKind = "corporate"
	// KindProvider is a caterer or restaurant serving corporate clients.
	KindProvider AccountKind = "provider"
)

// Valid reports whether the kind is one of the two known values.
func (k AccountKind) Valid() bool {
	return k == KindCorporate || k == KindProvider
}

// Account represents a registered corporate client or meal provider.
// Identity is the email address; there is no separate numeric ID.
// Passwords are stored in plaintext — this is a demo platform with
// explicitly mock authentication.
type Account struct {
	Kind      AccountKind `json:"kind"`
	Email     string      `json:"email"`
	Password  string      `json:"password"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Phone     string      `json:"phone"`
	Location  string      `json:"location"`
	CreatedAt time.Time   `json:"created_at"`

	// Corporate-only fields.
	CompanyName string `json:"company_name,omitempty"`
	Industry    string `json:"industry,omitempty"`
	TeamSize    string `json:"team_size,omitempty"`
	Budget      string `json:"budget,omitempty"`

	// Provider-only fields.
	BusinessName   string `json:"business_name,omitempty"`
	Cuisine        string `json:"cuisine,omitempty"`
	Website        string `json:"website,omitempty"`
	Capacity       string `json:"capacity,omitempty"`
	DeliveryRadius string `json:"delivery_radius,omitempty"`
	Description    string `json:"description,omitempty"`
}

// DisplayName returns the name shown in the user menu: first name for
// corporate users, business name for providers, with fallbacks.
func (a *Account) DisplayName() string {
	if a.FirstName != "" {
		return a.FirstName
	}
	if a.BusinessName != "" {
		return a.BusinessName
	}
	return "User"
}

// ProviderCard is the public projection of a provider account rendered in
// the corporate dashboard directory. It never carries credentials.
type ProviderCard struct {
	BusinessName   string `json:"business_name"`
	Cuisine        string `json:"cuisine"`
	Website        string `json:"website,omitempty"`
	Location       string `json:"location"`
	Capacity       string `json:"capacity"`
	DeliveryRadius string `json:"delivery_radius"`
	Description    string `json:"description"`
	ContactEmail   string `json:"contact_email"`
}

// Card returns the directory projection of the account.
func (a *Account) Card() ProviderCard {
	return ProviderCard{
		BusinessName:   a.BusinessName,
		Cuisine:        a.Cuisine,
		Website:        a.Website,
		Location:       a.Location,
		Capacity:       a.Capacity,
		DeliveryRadius: a.DeliveryRadius,
		Description:    a.Description,
		ContactEmail:   a.Email,
	}
}
