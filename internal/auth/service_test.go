package auth

import (
	"context"
	"testing"

	"github.com/pickhealth/platform/internal/domain"
	"github.com/pickhealth/platform/internal/kv"
	"github.com/pickhealth/platform/internal/store"
	"github.com/pickhealth/platform/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *Service {
	return NewService(store.New(kv.NewMemory()))
}

func providerAccount(email string) domain.Account {
	return domain.Account{
		Kind:           domain.KindProvider,
		Email:          email,
		Password:       "demo123",
		FirstName:      "Sarah",
		LastName:       "Johnson",
		Phone:          "404-555-0123",
		Location:       "Atlanta, GA",
		BusinessName:   "Fresh & Healthy Meals",
		Cuisine:        "healthy",
		Website:        "https://freshhealthy.com",
		Capacity:       "101-200",
		DeliveryRadius: "10-20",
	}
}

func TestRegisterAutoLogin(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	session, err := svc.Register(ctx, providerAccount("sarah@freshhealthy.com"))
	require.NoError(t, err)
	assert.Equal(t, "sarah@freshhealthy.com", session.Account.Email)

	// Registration immediately signs the account in.
	current, err := svc.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sarah@freshhealthy.com", current.Account.Email)
	assert.Equal(t, "/dashboard?type=provider", current.DashboardPath())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	_, err := svc.Register(ctx, providerAccount("sarah@freshhealthy.com"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, providerAccount("sarah@freshhealthy.com"))
	assert.ErrorIs(t, err, store.ErrDuplicateAccount)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	bad := providerAccount("not-an-email")
	bad.BusinessName = ""
	bad.Website = "not a url"

	_, err := svc.Register(ctx, bad)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ErrorIs(t, verr.Fields["email"], validate.ErrInvalidEmail)
	assert.ErrorIs(t, verr.Fields["business_name"], validate.ErrMissingRequired)
	assert.ErrorIs(t, verr.Fields["website"], validate.ErrInvalidURL)

	// Nothing was stored and nobody is signed in.
	_, err = svc.CurrentSession(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestRegisterUnknownKind(t *testing.T) {
	account := providerAccount("sarah@freshhealthy.com")
	account.Kind = "admin"

	_, err := newService().Register(context.Background(), account)
	assert.Error(t, err)
}

func TestLoginExactMatchOnly(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	_, err := svc.Register(ctx, providerAccount("sarah@freshhealthy.com"))
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "exact pair", email: "sarah@freshhealthy.com", password: "demo123", wantErr: nil},
		{name: "wrong password", email: "sarah@freshhealthy.com", password: "demo1234", wantErr: ErrInvalidCredentials},
		{name: "wrong email", email: "sara@freshhealthy.com", password: "demo123", wantErr: ErrInvalidCredentials},
		{name: "case variant email", email: "SARAH@FRESHHEALTHY.COM", password: "demo123", wantErr: ErrInvalidCredentials},
		{name: "both wrong", email: "sara@freshhealthy.com", password: "nope", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := svc.Login(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "sarah@freshhealthy.com", session.Account.Email)
		})
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	_, err := svc.Register(ctx, providerAccount("sarah@freshhealthy.com"))
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))
	require.NoError(t, svc.Logout(ctx))

	_, err = svc.CurrentSession(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
}
