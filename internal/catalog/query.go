// Package catalog filters, orders and aggregates the campaign collection.
package catalog

import (
	"cmp"
	"net/url"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"campusfund/internal/domain"
)

// SortKey selects the ordering applied to a campaign listing.
type SortKey string

const (
	SortNone     SortKey = ""
	SortNewest   SortKey = "newest"
	SortDeadline SortKey = "deadline"
	SortRaised   SortKey = "raised"
	SortGoal     SortKey = "goal"
)

// Filter narrows and orders a campaign listing. Zero fields are ignored.
// The empty SortKey and any unrecognized key keep input order.
type Filter struct {
	Category string
	Status   domain.CampaignStatus
	Search   string
	SortBy   SortKey
}

// ParseFilter reads a Filter from query parameters. Values are kept as
// given: an unknown status matches no campaign and an unknown sortBy keeps
// input order.
func ParseFilter(q url.Values) Filter {
	return Filter{
		Category: strings.TrimSpace(q.Get("category")),
		Status:   domain.CampaignStatus(strings.TrimSpace(q.Get("status"))),
		Search:   strings.TrimSpace(q.Get("search")),
		SortBy:   SortKey(strings.TrimSpace(q.Get("sortBy"))),
	}
}

// Query returns the campaigns matching every non-empty filter dimension,
// ordered by f.SortBy. Ties keep their input order. The input slice is not
// modified.
func Query(campaigns []domain.Campaign, f Filter) []domain.Campaign {
	out := make([]domain.Campaign, 0, len(campaigns))
	term := foldTerm(f.Search)
	for _, c := range campaigns {
		if f.Category != "" && c.Category.ID != f.Category {
			continue
		}
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		if term != "" && !matchesSearch(c, term) {
			continue
		}
		out = append(out, c)
	}
	if cmpFn := comparator(f.SortBy); cmpFn != nil {
		slices.SortStableFunc(out, cmpFn)
	}
	return out
}

// Featured returns the active campaigns flagged for the landing page.
func Featured(campaigns []domain.Campaign) []domain.Campaign {
	out := make([]domain.Campaign, 0)
	for _, c := range campaigns {
		if c.Featured && c.Status == domain.CampaignStatusActive {
			out = append(out, c)
		}
	}
	return out
}

func comparator(key SortKey) func(a, b domain.Campaign) int {
	switch key {
	case SortNewest:
		return func(a, b domain.Campaign) int { return b.CreatedAt.Compare(a.CreatedAt) }
	case SortDeadline:
		return func(a, b domain.Campaign) int { return a.Deadline.Compare(b.Deadline) }
	case SortRaised:
		return func(a, b domain.Campaign) int { return cmp.Compare(b.Raised, a.Raised) }
	case SortGoal:
		return func(a, b domain.Campaign) int { return cmp.Compare(b.Goal, a.Goal) }
	}
	return nil
}

func foldTerm(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return cases.Fold().String(s)
}

func matchesSearch(c domain.Campaign, term string) bool {
	fold := cases.Fold()
	if strings.Contains(fold.String(c.Title), term) || strings.Contains(fold.String(c.Description), term) {
		return true
	}
	for _, tag := range c.Tags {
		if strings.Contains(fold.String(tag), term) {
			return true
		}
	}
	return false
}
