package derive

import (
	"testing"
	"time"

	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
)

func ticketAt(id int64, status string, created string) domain.Ticket {
	return domain.Ticket{
		ID:        id,
		Status:    status,
		CreatedAt: domain.ParseTimestamp(created),
	}
}

func TestFilterTicketsSearch(t *testing.T) {
	tickets := []domain.Ticket{
		{ID: 1, Title: "VPN is broken", RequesterEmpNo: "E100"},
		{ID: 2, Title: "Printer jam", Requester: &domain.UserSummary{Name: "김지훈"}},
		{ID: 31, Title: "Monitor flicker"},
	}

	got := FilterTickets(tickets, ListFilter{Search: "vpn"})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("title search: got %v", got)
	}

	got = FilterTickets(tickets, ListFilter{Search: "김지훈"})
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("requester search: got %v", got)
	}

	got = FilterTickets(tickets, ListFilter{Search: "31"})
	if len(got) != 1 || got[0].ID != 31 {
		t.Fatalf("id search: got %v", got)
	}
}

func TestFilterTicketsCoarseStatus(t *testing.T) {
	tickets := []domain.Ticket{
		{ID: 1, Status: "open"},
		{ID: 2, Status: "in_progress"},
		{ID: 3, Status: "resolved"},
		{ID: 4, Status: "closed"},
	}

	got := FilterTickets(tickets, ListFilter{Status: "pending"})
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("pending bucket should cover open and in_progress, got %v", got)
	}
	if got := FilterTickets(tickets, ListFilter{Status: "all"}); len(got) != 4 {
		t.Fatalf("all bucket should pass everything, got %d", len(got))
	}
	if got := FilterTickets(tickets, ListFilter{Status: "closed"}); len(got) != 1 || got[0].ID != 4 {
		t.Fatalf("exact status match failed: %v", got)
	}
}

func TestFilterTicketsCategoryAsString(t *testing.T) {
	cat := int64(7)
	tickets := []domain.Ticket{
		{ID: 1, CategoryID: &cat},
		{ID: 2},
		{ID: 3, CategoryIDs: []int64{3, 7}},
	}
	got := FilterTickets(tickets, ListFilter{CategoryID: "7"})
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("category filter should match id and id-list, got %v", got)
	}
}

func TestFilterTicketsIdempotent(t *testing.T) {
	tickets := []domain.Ticket{
		{ID: 1, Status: "open", Title: "alpha"},
		{ID: 2, Status: "closed", Title: "beta"},
		{ID: 3, Status: "open", Title: "alphabet"},
	}
	f := ListFilter{Search: "alpha", Status: "open"}
	once := FilterTickets(tickets, f)
	twice := FilterTickets(once, f)
	if len(once) != len(twice) {
		t.Fatalf("filter not idempotent: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("filter not idempotent at %d", i)
		}
	}
}

func TestFilterTicketsDoesNotMutateInput(t *testing.T) {
	tickets := []domain.Ticket{{ID: 2}, {ID: 1}}
	_ = FilterTickets(tickets, ListFilter{})
	if tickets[0].ID != 2 || tickets[1].ID != 1 {
		t.Fatal("input slice was reordered")
	}
}

func TestFilterForExtractRules(t *testing.T) {
	tickets := []domain.Ticket{
		{ID: 1, Status: "open"},
		{ID: 2, Status: "closed"},
		{ID: 3, Status: "resolved"},
	}
	field := func(tk *domain.Ticket, f string) string {
		if f == "status" {
			return tk.Status
		}
		return ""
	}

	got := FilterForExtract(tickets, ExtractFilter{Rules: []domain.FilterRule{
		{Field: "status", Mode: domain.RuleModeIncludeOnly, Values: []string{"open", "resolved"}},
	}}, field)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("include_only: got %v", got)
	}

	got = FilterForExtract(tickets, ExtractFilter{Rules: []domain.FilterRule{
		{Field: "status", Mode: domain.RuleModeExclude, Values: []string{"closed"}},
	}}, field)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("exclude: got %v", got)
	}

	// Empty value list is a no-op regardless of mode.
	got = FilterForExtract(tickets, ExtractFilter{Rules: []domain.FilterRule{
		{Field: "status", Mode: domain.RuleModeIncludeOnly, Values: nil},
	}}, field)
	if len(got) != 3 {
		t.Fatalf("empty values should match everything, got %d", len(got))
	}
}

func TestFilterForExtractYearAndDayRange(t *testing.T) {
	tickets := []domain.Ticket{
		ticketAt(1, "open", "2023-03-10T09:00:00+09:00"),
		ticketAt(2, "open", "2024-03-10T09:00:00+09:00"),
		ticketAt(3, "open", "2024-11-20T09:00:00+09:00"),
		{ID: 4, Status: "open"}, // no created_at
	}
	noField := func(*domain.Ticket, string) string { return "" }

	got := FilterForExtract(tickets, ExtractFilter{YearInclude: []int{2024}}, noField)
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 3 {
		t.Fatalf("year allow-list: got %v", got)
	}

	// First half of the year only.
	dayRange := [2]float64{0, 50}
	got = FilterForExtract(tickets, ExtractFilter{DayRange: &dayRange}, noField)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("day range should keep March of any year, got %v", got)
	}
}

func TestDayRangePercentRoundTrip(t *testing.T) {
	for day := 1; day <= 366; day++ {
		if got := PercentToDayOfYear(DayOfYearToPercent(day)); got != day {
			t.Fatalf("round trip failed for day %d: got %d", day, got)
		}
	}
	if got := PercentToDayOfYear(0); got != 1 {
		t.Fatalf("percent 0 = day %d, want 1", got)
	}
	if got := PercentToDayOfYear(100); got != 366 {
		t.Fatalf("percent 100 = day %d, want 366", got)
	}
	if got := PercentToDayOfYear(-5); got != 1 {
		t.Fatalf("clamped low percent = day %d, want 1", got)
	}
	if got := PercentToDayOfYear(250); got != 366 {
		t.Fatalf("clamped high percent = day %d, want 366", got)
	}
}

func TestFilterTicketsCreatedRange(t *testing.T) {
	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	tickets := []domain.Ticket{
		ticketAt(1, "open", "2024-01-15T00:00:00Z"),
		ticketAt(2, "open", "2024-02-15T00:00:00Z"),
		{ID: 3, Status: "open"},
	}
	got := FilterTickets(tickets, ListFilter{CreatedFrom: &from})
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("created range: got %v", got)
	}
}
