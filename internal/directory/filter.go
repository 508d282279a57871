// Package directory implements the provider search pipeline shown on the
// corporate dashboard.
package directory

import (
	"strings"

	"github.com/pickhealth/platform/internal/domain"
)

// Query holds the optional filter inputs. Zero values mean "no filtering"
// for that step.
type Query struct {
	// Search matches case-insensitively as a substring of the business
	// name, location, or description.
	Search string
	// Cuisine must equal the provider's cuisine exactly.
	Cuisine string
}

// Filter restricts accounts to providers, then applies the search and
// cuisine steps. The filter is stable: results keep their original relative
// order, and filtering twice with the same query yields the same sequence.
// An empty result is a valid value, not an error.
func Filter(accounts []domain.Account, q Query) []domain.Account {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	var out []domain.Account
	for _, a := range accounts {
		if a.Kind != domain.KindProvider {
			continue
		}
		if search != "" && !matchesSearch(a, search) {
			continue
		}
		if q.Cuisine != "" && a.Cuisine != q.Cuisine {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Cards maps the filtered accounts to their public directory projections.
func Cards(accounts []domain.Account) []domain.ProviderCard {
	cards := make([]domain.ProviderCard, 0, len(accounts))
	for i := range accounts {
		cards = append(cards, accounts[i].Card())
	}
	return cards
}

func matchesSearch(a domain.Account, search string) bool {
	return strings.Contains(strings.ToLower(a.BusinessName), search) ||
		strings.Contains(strings.ToLower(a.Location), search) ||
		strings.Contains(strings.ToLower(a.Description), search)
}
