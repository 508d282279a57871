// Package store implements the record store: the account collection and the
// current-session singleton, serialized as JSON under well-known keys in a
// pluggable key-value store.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pickhealth/platform/internal/domain"
	"github.com/pickhealth/platform/internal/kv"
)

// Persisted keys. The account list and the session live under separate keys
// so logout never touches the account collection.
const (
	AccountsKey = "pickhealth_users"
	SessionKey  = "pickhealth_current_user"
)

// ErrDuplicateAccount is returned when an account with the same email
// already exists in the collection.
var ErrDuplicateAccount = errors.New("an account with this email already exists")

// RecordStore owns the Account collection and the Session singleton.
type RecordStore struct {
	kv kv.Store
}

// New creates a record store over the given key-value backend.
func New(backend kv.Store) *RecordStore {
	return &RecordStore{kv: backend}
}

// ListAccounts returns every registered account in insertion order.
// A corrupt persisted list is treated as empty rather than surfaced:
// the demo store favors self-healing over propagating parse errors.
func (s *RecordStore) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	raw, ok, err := s.kv.Get(ctx, AccountsKey)
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var accounts []domain.Account
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		slog.Warn("Corrupt account list, resetting", "error", err)
		if delErr := s.kv.Delete(ctx, AccountsKey); delErr != nil {
			return nil, fmt.Errorf("reset corrupt accounts: %w", delErr)
		}
		return nil, nil
	}
	return accounts, nil
}

// FindAccount returns the account with the given email, or nil if absent.
// The comparison is exact: login must present the email as registered.
// Duplicate rejection in AddAccount is the looser, case-insensitive check.
func (s *RecordStore) FindAccount(ctx context.Context, email string) (*domain.Account, error) {
	accounts, err := s.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].Email == email {
			return &accounts[i], nil
		}
	}
	return nil, nil
}

// AddAccount appends the account to the collection. Fails with
// ErrDuplicateAccount when the email is already present; the duplicate check
// and append run as one synchronous sequence, so the collection never holds
// two accounts with the same email.
func (s *RecordStore) AddAccount(ctx context.Context, account domain.Account) error {
	accounts, err := s.ListAccounts(ctx)
	if err != nil {
		return err
	}
	for i := range accounts {
		if strings.EqualFold(accounts[i].Email, account.Email) {
			return ErrDuplicateAccount
		}
	}

	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}
	accounts = append(accounts, account)

	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}
	if err := s.kv.Set(ctx, AccountsKey, string(raw)); err != nil {
		return fmt.Errorf("save accounts: %w", err)
	}
	return nil
}

// Session returns the persisted current session, or nil when nobody is
// signed in. Corrupt session data is a silent reset: the record is cleared
// and treated as absence, never surfaced as an error.
func (s *RecordStore) Session(ctx context.Context) (*domain.Session, error) {
	raw, ok, err := s.kv.Get(ctx, SessionKey)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		slog.Warn("Corrupt session record, clearing", "error", err)
		if delErr := s.kv.Delete(ctx, SessionKey); delErr != nil {
			return nil, fmt.Errorf("clear corrupt session: %w", delErr)
		}
		return nil, nil
	}
	return &session, nil
}

// PutSession persists the session singleton, replacing any previous one.
func (s *RecordStore) PutSession(ctx context.Context, session domain.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.kv.Set(ctx, SessionKey, string(raw)); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// ClearSession removes the session singleton. Idempotent.
func (s *RecordStore) ClearSession(ctx context.Context) error {
	if err := s.kv.Delete(ctx, SessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Ping verifies the backing store is reachable.
func (s *RecordStore) Ping(ctx context.Context) error {
	return s.kv.Ping(ctx)
}
