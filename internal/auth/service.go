// Package auth implements the mock authentication flow: registration,
// login, logout, and the current-session gate. Credentials are compared in
// plaintext — this is a demo platform, not a real identity system.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pickhealth/platform/internal/domain"
	"github.com/pickhealth/platform/internal/store"
	"github.com/pickhealth/platform/internal/validate"
)

var (
	// ErrInvalidCredentials is returned when no account matches the exact
	// email and password pair. No rate limiting, no lockout.
	ErrInvalidCredentials = errors.New("Invalid email or password")

	// ErrNoSession is returned when nobody is signed in.
	ErrNoSession = errors.New("not signed in")
)

// ValidationError carries per-field registration failures.
type ValidationError struct {
	Fields validate.FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("registration form invalid: %d field(s)", len(e.Fields))
}

// Service is the session manager: it creates, reads, and clears the
// current-session record backed by the record store.
type Service struct {
	records *store.RecordStore
}

// NewService creates a session manager over the record store.
func NewService(records *store.RecordStore) *Service {
	return &Service{records: records}
}

// Login scans the account collection for an exact (email, password) match.
// On success the session is persisted and returned; otherwise
// ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	account, err := s.records.FindAccount(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil || account.Password != password {
		return nil, ErrInvalidCredentials
	}

	session := domain.Session{Account: *account}
	if err := s.records.PutSession(ctx, session); err != nil {
		return nil, err
	}
	slog.Info("Account signed in", "email", account.Email, "kind", account.Kind)
	return &session, nil
}

// Register validates the account fields, appends the account to the
// collection, and immediately signs it in. Auto-login after registration is
// a deliberate product choice (frictionless onboarding), not an oversight.
// Fails with *ValidationError on bad fields and store.ErrDuplicateAccount on
// an already-registered email.
func (s *Service) Register(ctx context.Context, account domain.Account) (*domain.Session, error) {
	if !account.Kind.Valid() {
		return nil, fmt.Errorf("unknown account kind %q", account.Kind)
	}

	if failures := validate.ValidateForm(registrationFields(account)); failures != nil {
		return nil, &ValidationError{Fields: failures}
	}

	account.CreatedAt = time.Now().UTC()
	if err := s.records.AddAccount(ctx, account); err != nil {
		return nil, err
	}

	session := domain.Session{Account: account}
	if err := s.records.PutSession(ctx, session); err != nil {
		return nil, err
	}
	slog.Info("Account registered", "email", account.Email, "kind", account.Kind)
	return &session, nil
}

// Logout clears the session unconditionally. Idempotent.
func (s *Service) Logout(ctx context.Context) error {
	return s.records.ClearSession(ctx)
}

// CurrentSession reads the persisted session. Absence — including a corrupt
// record silently reset by the store — yields ErrNoSession.
func (s *Service) CurrentSession(ctx context.Context) (*domain.Session, error) {
	session, err := s.records.Session(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNoSession
	}
	return session, nil
}

// registrationFields builds the validation form for the account kind.
// Shared fields are always required; the website is the one optional
// typed field on the provider form.
func registrationFields(a domain.Account) []validate.Field {
	fields := []validate.Field{
		{Name: "email", Kind: validate.Email, Value: a.Email, Required: true},
		{Name: "password", Kind: validate.Text, Value: a.Password, Required: true},
		{Name: "first_name", Kind: validate.Text, Value: a.FirstName, Required: true},
		{Name: "last_name", Kind: validate.Text, Value: a.LastName, Required: true},
		{Name: "phone", Kind: validate.Phone, Value: a.Phone, Required: true},
		{Name: "location", Kind: validate.Text, Value: a.Location, Required: true},
	}

	switch a.Kind {
	case domain.KindCorporate:
		fields = append(fields,
			validate.Field{Name: "company_name", Kind: validate.Text, Value: a.CompanyName, Required: true},
			validate.Field{Name: "industry", Kind: validate.Text, Value: a.Industry, Required: true},
			validate.Field{Name: "team_size", Kind: validate.Text, Value: a.TeamSize, Required: true},
			validate.Field{Name: "budget", Kind: validate.Text, Value: a.Budget, Required: true},
		)
	case domain.KindProvider:
		fields = append(fields,
			validate.Field{Name: "business_name", Kind: validate.Text, Value: a.BusinessName, Required: true},
			validate.Field{Name: "cuisine", Kind: validate.Text, Value: a.Cuisine, Required: true},
			validate.Field{Name: "website", Kind: validate.URL, Value: a.Website, Required: false},
			validate.Field{Name: "capacity", Kind: validate.Text, Value: a.Capacity, Required: true},
			validate.Field{Name: "delivery_radius", Kind: validate.Text, Value: a.DeliveryRadius, Required: true},
			validate.Field{Name: "description", Kind: validate.Text, Value: a.Description, Required: false},
		)
	}
	return fields
}
