// Package gigs implements the discovery side of the client: fetching the gig
// feed and narrowing it with view-local filter criteria. Filtering is a
// total, stateless recompute over the fetched list; the expected list sizes
// make anything indexed pointless.
package gigs

import (
	"strings"

	"github.com/giglink/giglink-cli/internal/client/models"
)

// Default budget range bounds.
const (
	DefaultBudgetMin = 0
	DefaultBudgetMax = 5000
)

// Criteria is the ephemeral filter state. The three predicates compose
// conjunctively; nothing couples them and nothing persists them.
type Criteria struct {
	// Query matches case-insensitively against title, description, and tags.
	// Empty matches everything.
	Query string

	// Category must be an exact member of the gig's tag set. Empty means no
	// category is selected.
	Category string

	// Budget is the inclusive [min, max] range.
	Budget [2]int
}

// DefaultCriteria returns the reset state: no query, no category, full
// budget range.
func DefaultCriteria() Criteria {
	return Criteria{Budget: [2]int{DefaultBudgetMin, DefaultBudgetMax}}
}

// Filter returns the listings matching c. The input is never mutated.
func Filter(listings []models.GigListing, c Criteria) []models.GigListing {
	out := make([]models.GigListing, 0, len(listings))
	for _, l := range listings {
		if matches(l.Gig, c) {
			out = append(out, l)
		}
	}
	return out
}

func matches(g models.Gig, c Criteria) bool {
	return matchesSearch(g, c.Query) && matchesCategory(g, c.Category) && matchesBudget(g, c.Budget)
}

func matchesSearch(g models.Gig, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(g.Title), q) || strings.Contains(strings.ToLower(g.Description), q) {
		return true
	}
	for _, tag := range g.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func matchesCategory(g models.Gig, category string) bool {
	if category == "" {
		return true
	}
	for _, tag := range g.Tags {
		if tag == category {
			return true
		}
	}
	return false
}

func matchesBudget(g models.Gig, budget [2]int) bool {
	return g.Budget >= budget[0] && g.Budget <= budget[1]
}
