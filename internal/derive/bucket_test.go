package derive

import (
	"testing"
	"time"

	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
)

func created(ts string) domain.Ticket {
	return domain.Ticket{CreatedAt: domain.ParseTimestamp(ts)}
}

func TestDailyBucketKSTBoundary(t *testing.T) {
	// 2024-01-01T15:00Z is already 2024-01-02 in Korea.
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	tickets := []domain.Ticket{created("2024-01-01T15:00:00Z")}

	series := BucketTickets(tickets, PeriodDaily, now)
	if len(series.Labels) != 30 || len(series.Values) != 30 {
		t.Fatalf("daily series length = %d/%d, want 30/30", len(series.Labels), len(series.Values))
	}

	idx := indexOf(t, series.Labels, "1/2")
	if series.Values[idx] != 1 {
		t.Fatalf("ticket should land in the 1/2 bucket, series %v", series.Values)
	}
	if jan1 := indexOf(t, series.Labels, "1/1"); series.Values[jan1] != 0 {
		t.Fatalf("1/1 bucket should be empty, got %d", series.Values[jan1])
	}
}

func TestDailyBucketWindowAndLabels(t *testing.T) {
	now := time.Date(2024, 3, 15, 23, 0, 0, 0, kst)
	series := BucketTickets(nil, PeriodDaily, now)
	if series.Labels[29] != "3/15" {
		t.Fatalf("last daily label = %q, want 3/15", series.Labels[29])
	}
	if series.Labels[0] != "2/15" {
		t.Fatalf("first daily label = %q, want 2/15 (30 days ending today)", series.Labels[0])
	}
}

func TestBucketTotalsInvariant(t *testing.T) {
	now := time.Date(2024, 6, 12, 9, 0, 0, 0, kst)
	tickets := []domain.Ticket{
		created("2024-06-11T10:00:00+09:00"),
		created("2024-06-01T10:00:00+09:00"),
		created("2020-01-01T00:00:00Z"),  // far outside the window
		created("2099-01-01T00:00:00Z"),  // far future, silently dropped
		{},                               // missing created_at
		created("not-a-timestamp-value"), // unparsable
	}
	series := BucketTickets(tickets, PeriodDaily, now)
	sum := 0
	for _, v := range series.Values {
		sum += v
	}
	if sum != 2 {
		t.Fatalf("sum(values) = %d, want 2 (in-window parsable tickets only)", sum)
	}
}

func TestWeeklyBucketCurrentWeekIsPartial(t *testing.T) {
	// Wednesday 2024-05-15 KST. The last bucket spans Monday 5/13 onward and
	// only counts tickets up to now (week-to-date).
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, kst)
	tickets := []domain.Ticket{
		created("2024-05-13T09:00:00+09:00"), // Monday of current week
		created("2024-05-14T09:00:00+09:00"),
		created("2024-05-12T09:00:00+09:00"), // Sunday, previous week
	}
	series := BucketTickets(tickets, PeriodWeekly, now)
	if len(series.Values) != 12 {
		t.Fatalf("weekly series length = %d, want 12", len(series.Values))
	}
	if series.Labels[11] != "5/13~5/19" {
		t.Fatalf("current week label = %q, want 5/13~5/19", series.Labels[11])
	}
	if series.Values[11] != 2 {
		t.Fatalf("current week count = %d, want 2", series.Values[11])
	}
	if series.Values[10] != 1 {
		t.Fatalf("previous week count = %d, want 1", series.Values[10])
	}
}

func TestWeeklyBucketMondayStart(t *testing.T) {
	// When "now" is itself a Monday the current week starts today.
	now := time.Date(2024, 5, 13, 8, 0, 0, 0, kst)
	series := BucketTickets(nil, PeriodWeekly, now)
	if series.Labels[11] != "5/13~5/19" {
		t.Fatalf("monday-now current week label = %q", series.Labels[11])
	}
}

func TestMonthlyBuckets(t *testing.T) {
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, kst)
	tickets := []domain.Ticket{
		created("2024-03-01T00:00:00+09:00"),
		created("2024-02-29T23:59:59+09:00"),
		created("2023-04-05T00:00:00+09:00"), // first bucket of the window
		created("2023-03-31T00:00:00+09:00"), // just before the window
	}
	series := BucketTickets(tickets, PeriodMonthly, now)
	if len(series.Labels) != 12 {
		t.Fatalf("monthly series length = %d, want 12", len(series.Labels))
	}
	if series.Labels[11] != "2024년 3월" {
		t.Fatalf("last monthly label = %q, want 2024년 3월", series.Labels[11])
	}
	if series.Labels[0] != "2023년 4월" {
		t.Fatalf("first monthly label = %q, want 2023년 4월", series.Labels[0])
	}
	if series.Values[11] != 1 || series.Values[10] != 1 || series.Values[0] != 1 {
		t.Fatalf("monthly values = %v", series.Values)
	}
	sum := 0
	for _, v := range series.Values {
		sum += v
	}
	if sum != 3 {
		t.Fatalf("monthly sum = %d, want 3", sum)
	}
}

func TestBucketingIsPure(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	tickets := []domain.Ticket{
		created("2024-05-10T00:00:00Z"),
		created("2024-05-14T00:00:00Z"),
	}
	a := BucketTickets(tickets, PeriodWeekly, now)
	b := BucketTickets(tickets, PeriodWeekly, now)
	for i := range a.Values {
		if a.Values[i] != b.Values[i] || a.Labels[i] != b.Labels[i] {
			t.Fatal("identical inputs produced different series")
		}
	}
}

func indexOf(t *testing.T, labels []string, want string) int {
	t.Helper()
	for i, l := range labels {
		if l == want {
			return i
		}
	}
	t.Fatalf("label %q not found in %v", want, labels)
	return -1
}
