package derive

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
)

// ListFilter holds the interactive list predicates. All active predicates
// are AND-composed; an empty field means "no restriction".
type ListFilter struct {
	// Search is matched case-insensitively as a substring against the title,
	// the requester display name, and the ticket id.
	Search string
	// Status is either a coarse bucket (all, pending, resolved, closed) or a
	// raw status value matched exactly. pending covers open and in_progress.
	Status string
	// CategoryID and ProjectID are compared as strings so absent values on
	// either side never match.
	CategoryID string
	ProjectID  string
	// CreatedFrom / CreatedTo bound created_at inclusively when set.
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// FilterTickets returns the subset of tickets matching every active
// predicate. The input slice is never mutated.
func FilterTickets(tickets []domain.Ticket, f ListFilter) []domain.Ticket {
	out := make([]domain.Ticket, 0, len(tickets))
	search := strings.ToLower(strings.TrimSpace(f.Search))
	for _, t := range tickets {
		if !matchesSearch(&t, search) {
			continue
		}
		if !matchesStatus(&t, f.Status) {
			continue
		}
		if f.CategoryID != "" && !matchesCategory(&t, f.CategoryID) {
			continue
		}
		if f.ProjectID != "" && !matchesProject(&t, f.ProjectID) {
			continue
		}
		if !matchesCreatedRange(&t, f.CreatedFrom, f.CreatedTo) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchesSearch(t *domain.Ticket, search string) bool {
	if search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(t.Title), search) {
		return true
	}
	if strings.Contains(strings.ToLower(t.RequesterName()), search) {
		return true
	}
	return strings.Contains(strconv.FormatInt(t.ID, 10), search)
}

func matchesStatus(t *domain.Ticket, filter string) bool {
	filter = strings.ToLower(strings.TrimSpace(filter))
	switch filter {
	case "", "all":
		return true
	case "pending":
		raw := strings.ToLower(strings.TrimSpace(t.Status))
		return raw == "open" || raw == "in_progress"
	default:
		return strings.EqualFold(strings.TrimSpace(t.Status), filter)
	}
}

func matchesCategory(t *domain.Ticket, want string) bool {
	if t.CategoryID != nil && strconv.FormatInt(*t.CategoryID, 10) == want {
		return true
	}
	for _, id := range t.CategoryIDs {
		if strconv.FormatInt(id, 10) == want {
			return true
		}
	}
	return false
}

func matchesProject(t *domain.Ticket, want string) bool {
	return t.ProjectID != nil && strconv.FormatInt(*t.ProjectID, 10) == want
}

func matchesCreatedRange(t *domain.Ticket, from, to *time.Time) bool {
	if from == nil && to == nil {
		return true
	}
	if t.CreatedAt.IsZero() {
		return false
	}
	if from != nil && t.CreatedAt.Before(*from) {
		return false
	}
	if to != nil && t.CreatedAt.After(*to) {
		return false
	}
	return true
}

// FieldValueFunc extracts the comparable string value of a named field from
// a ticket. The export column catalog supplies the canonical implementation.
type FieldValueFunc func(t *domain.Ticket, field string) string

// ExtractFilter holds the data-extraction predicates: per-column rules, a
// created-year allow-list (empty = all years) and an inclusive day-of-year
// range given as [start,end] percentages of a 366-day year. A nil DayRange
// means no day restriction.
type ExtractFilter struct {
	Rules       []domain.FilterRule
	YearInclude []int
	DayRange    *[2]float64
}

// FilterForExtract applies extract rules on top of a ticket collection.
// Rules with an empty value list match everything; year and day-range
// predicates exclude tickets without a parsable created_at.
func FilterForExtract(tickets []domain.Ticket, f ExtractFilter, fieldValue FieldValueFunc) []domain.Ticket {
	var dayLo, dayHi int
	if f.DayRange != nil {
		dayLo = PercentToDayOfYear(f.DayRange[0])
		dayHi = PercentToDayOfYear(f.DayRange[1])
	}

	out := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if !matchesRules(&t, f.Rules, fieldValue) {
			continue
		}
		if len(f.YearInclude) > 0 {
			if t.CreatedAt.IsZero() || !containsInt(f.YearInclude, t.CreatedAt.In(kst).Year()) {
				continue
			}
		}
		if f.DayRange != nil {
			if t.CreatedAt.IsZero() {
				continue
			}
			day := t.CreatedAt.In(kst).YearDay()
			if day < dayLo || day > dayHi {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

func matchesRules(t *domain.Ticket, rules []domain.FilterRule, fieldValue FieldValueFunc) bool {
	for _, rule := range rules {
		if len(rule.Values) == 0 {
			continue
		}
		value := fieldValue(t, rule.Field)
		found := false
		for _, v := range rule.Values {
			if v == value {
				found = true
				break
			}
		}
		switch rule.Mode {
		case domain.RuleModeExclude:
			if found {
				return false
			}
		default:
			// include_only is the default mode.
			if !found {
				return false
			}
		}
	}
	return true
}

// daysInRangeYear is the slot count of the leap-capable reference year the
// percent encoding is defined over.
const daysInRangeYear = 366

// PercentToDayOfYear converts a position in [0,100] to a day-of-year in
// [1,366], rounding to the nearest day. Inverse of DayOfYearToPercent for
// every valid day.
func PercentToDayOfYear(percent float64) int {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	day := 1 + int(math.Round(percent/100*(daysInRangeYear-1)))
	if day < 1 {
		day = 1
	}
	if day > daysInRangeYear {
		day = daysInRangeYear
	}
	return day
}

// DayOfYearToPercent converts a day-of-year in [1,366] to its position in
// [0,100].
func DayOfYearToPercent(day int) float64 {
	if day < 1 {
		day = 1
	}
	if day > daysInRangeYear {
		day = daysInRangeYear
	}
	return float64(day-1) * 100 / (daysInRangeYear - 1)
}

func containsInt(values []int, want int) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
