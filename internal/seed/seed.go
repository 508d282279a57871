// Package seed inserts demo meal providers so a fresh corporate dashboard
// is not empty.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pickhealth/platform/internal/domain"
	"github.com/pickhealth/platform/internal/store"
)

// Providers inserts the sample provider accounts, but only when the store
// holds no provider accounts yet. Re-running against a seeded store is a
// no-op.
func Providers(ctx context.Context, records *store.RecordStore) error {
	accounts, err := records.ListAccounts(ctx)
	if err != nil {
		return fmt.Errorf("check existing accounts: %w", err)
	}
	for _, a := range accounts {
		if a.Kind == domain.KindProvider {
			return nil
		}
	}

	for _, account := range sampleProviders() {
		if err := records.AddAccount(ctx, account); err != nil {
			return fmt.Errorf("seed provider %q: %w", account.BusinessName, err)
		}
	}
	slog.Info("Seeded demo providers", "count", len(sampleProviders()))
	return nil
}

func sampleProviders() []domain.Account {
	now := time.Now().UTC()
	return []domain.Account{
		{
			Kind:           domain.KindProvider,
			BusinessName:   "Fresh & Healthy Meals",
			Cuisine:        "healthy",
			Website:        "https://freshhealthy.com",
			Location:       "Atlanta, GA",
			Capacity:       "101-200",
			DeliveryRadius: "10-20",
			FirstName:      "Sarah",
			LastName:       "Johnson",
			Email:          "sarah@freshhealthy.com",
			Password:       "demo123",
			Phone:          "404-555-0123",
			Description:    "Specializing in organic, locally-sourced ingredients. Perfect for corporate wellness programs with customizable meal plans.",
			CreatedAt:      now,
		},
		{
			Kind:           domain.KindProvider,
			BusinessName:   "Mediterranean Delights",
			Cuisine:        "mediterranean",
			Website:        "https://meddelights.com",
			Location:       "Atlanta, GA",
			Capacity:       "51-100",
			DeliveryRadius: "5-10",
			FirstName:      "Ahmed",
			LastName:       "Hassan",
			Email:          "ahmed@meddelights.com",
			Password:       "demo123",
			Phone:          "404-555-0456",
			Description:    "Authentic Mediterranean cuisine with a focus on healthy, flavorful dishes. Great for team lunches and corporate events.",
			CreatedAt:      now,
		},
		{
			Kind:           domain.KindProvider,
			BusinessName:   "Asian Fusion Kitchen",
			Cuisine:        "asian",
			Website:        "https://asianfusion.com",
			Location:       "Atlanta, GA",
			Capacity:       "201-500",
			DeliveryRadius: "20+",
			FirstName:      "Lisa",
			LastName:       "Chen",
			Email:          "lisa@asianfusion.com",
			Password:       "demo123",
			Phone:          "404-555-0789",
			Description:    "Modern Asian cuisine with healthy options. Large capacity for corporate orders with flexible delivery options.",
			CreatedAt:      now,
		},
	}
}
