package derive

import (
	"sort"
	"strings"

	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
)

// SortDirection is an explicit column-sort direction.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortSpec selects either the natural composite order (empty Column) or an
// explicit column sort with direction.
type SortSpec struct {
	Column    string
	Direction SortDirection
}

// Toggle returns the spec after the user clicks a column header: clicking the
// active column flips direction, selecting a new column resets to ascending.
func (s SortSpec) Toggle(column string) SortSpec {
	if s.Column == column {
		if s.Direction == SortAsc {
			return SortSpec{Column: column, Direction: SortDesc}
		}
		return SortSpec{Column: column, Direction: SortAsc}
	}
	return SortSpec{Column: column, Direction: SortAsc}
}

// SortTickets returns a newly ordered copy of tickets. Sorting is stable so
// the derived order is deterministic across recomputes for equal keys.
//
// Natural order (empty column): status rank, then priority rank, then most
// recent activity first, then id descending.
func SortTickets(tickets []domain.Ticket, spec SortSpec) []domain.Ticket {
	out := make([]domain.Ticket, len(tickets))
	copy(out, tickets)

	if spec.Column == "" {
		sort.SliceStable(out, func(i, j int) bool {
			return naturalLess(&out[i], &out[j])
		})
		return out
	}

	less := columnLess(spec.Column)
	desc := spec.Direction == SortDesc
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(&out[j], &out[i])
		}
		return less(&out[i], &out[j])
	})
	return out
}

func naturalLess(a, b *domain.Ticket) bool {
	if ra, rb := StatusRank(a.Status), StatusRank(b.Status); ra != rb {
		return ra < rb
	}
	if pa, pb := PriorityRank(a.Priority), PriorityRank(b.Priority); pa != pb {
		return pa < pb
	}
	ua, ub := a.EffectiveUpdatedAt(), b.EffectiveUpdatedAt()
	if !ua.Equal(ub) {
		return ua.After(ub)
	}
	return a.ID > b.ID
}

func columnLess(column string) func(a, b *domain.Ticket) bool {
	switch column {
	case "id":
		return func(a, b *domain.Ticket) bool { return a.ID < b.ID }
	case "title":
		return textLess(func(t *domain.Ticket) string { return t.Title })
	case "status":
		return textLess(func(t *domain.Ticket) string { return t.Status })
	case "priority":
		// Priority orders by severity rank rather than alphabetically.
		return func(a, b *domain.Ticket) bool {
			return PriorityRank(a.Priority) < PriorityRank(b.Priority)
		}
	case "work_type":
		return textLess(func(t *domain.Ticket) string { return WorkTypeLabel(t.WorkType) })
	case "requester":
		return textLess(func(t *domain.Ticket) string { return t.RequesterName() })
	case "assignee":
		return textLess(func(t *domain.Ticket) string { return t.AssigneeName() })
	case "created_at":
		return func(a, b *domain.Ticket) bool {
			// Missing timestamps sort as the earliest possible value.
			return a.CreatedAt.Time.Before(b.CreatedAt.Time)
		}
	case "updated_at":
		return func(a, b *domain.Ticket) bool {
			return a.EffectiveUpdatedAt().Before(b.EffectiveUpdatedAt())
		}
	default:
		return naturalLess
	}
}

func textLess(value func(t *domain.Ticket) string) func(a, b *domain.Ticket) bool {
	return func(a, b *domain.Ticket) bool {
		return strings.ToLower(value(a)) < strings.ToLower(value(b))
	}
}
