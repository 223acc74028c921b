package derive

import (
	"fmt"
	"time"

	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
)

// Period selects the chart bucketing granularity.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// All bucket arithmetic is anchored to the Korean calendar regardless of the
// server's local timezone.
var kst = time.FixedZone("KST", 9*60*60)

// Series is a chart-ready pair of aligned label and count sequences.
type Series struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

const (
	dailyBuckets   = 30
	weeklyBuckets  = 12
	monthlyBuckets = 12
)

// BucketTickets folds a ticket collection into a fixed-length series of
// creation counts ending at now:
//
//	daily   30 calendar days, label M/D
//	weekly  12 Monday-Sunday weeks (current week counted to date), label M/D~M/D
//	monthly 12 calendar months, label YYYY년 M월
//
// Tickets with a missing created_at, or whose bucket falls outside the
// window (far-future clock skew included), are silently skipped.
func BucketTickets(tickets []domain.Ticket, period Period, now time.Time) Series {
	switch period {
	case PeriodWeekly:
		return bucketWeekly(tickets, now)
	case PeriodMonthly:
		return bucketMonthly(tickets, now)
	default:
		return bucketDaily(tickets, now)
	}
}

func bucketDaily(tickets []domain.Ticket, now time.Time) Series {
	first := kstDay(now).AddDate(0, 0, -(dailyBuckets - 1))

	labels := make([]string, dailyBuckets)
	for i := range labels {
		day := first.AddDate(0, 0, i)
		labels[i] = fmt.Sprintf("%d/%d", int(day.Month()), day.Day())
	}

	values := make([]int, dailyBuckets)
	for i := range tickets {
		created, ok := kstCreated(&tickets[i])
		if !ok {
			continue
		}
		idx := daysBetween(first, kstDay(created))
		if idx >= 0 && idx < dailyBuckets {
			values[idx]++
		}
	}
	return Series{Labels: labels, Values: values}
}

func bucketWeekly(tickets []domain.Ticket, now time.Time) Series {
	firstMonday := weekStart(kstDay(now)).AddDate(0, 0, -7*(weeklyBuckets-1))

	labels := make([]string, weeklyBuckets)
	for i := range labels {
		start := firstMonday.AddDate(0, 0, 7*i)
		end := start.AddDate(0, 0, 6)
		labels[i] = fmt.Sprintf("%d/%d~%d/%d",
			int(start.Month()), start.Day(), int(end.Month()), end.Day())
	}

	values := make([]int, weeklyBuckets)
	for i := range tickets {
		created, ok := kstCreated(&tickets[i])
		if !ok {
			continue
		}
		days := daysBetween(firstMonday, kstDay(created))
		if days < 0 {
			continue
		}
		idx := days / 7
		if idx < weeklyBuckets {
			values[idx]++
		}
	}
	return Series{Labels: labels, Values: values}
}

func bucketMonthly(tickets []domain.Ticket, now time.Time) Series {
	nowKST := now.In(kst)
	firstYear, firstMonth := monthAdd(nowKST.Year(), int(nowKST.Month()), -(monthlyBuckets - 1))

	labels := make([]string, monthlyBuckets)
	for i := range labels {
		y, m := monthAdd(firstYear, firstMonth, i)
		labels[i] = fmt.Sprintf("%d년 %d월", y, m)
	}

	values := make([]int, monthlyBuckets)
	firstIndex := firstYear*12 + (firstMonth - 1)
	for i := range tickets {
		created, ok := kstCreated(&tickets[i])
		if !ok {
			continue
		}
		c := created.In(kst)
		idx := c.Year()*12 + int(c.Month()) - 1 - firstIndex
		if idx >= 0 && idx < monthlyBuckets {
			values[idx]++
		}
	}
	return Series{Labels: labels, Values: values}
}

func kstCreated(t *domain.Ticket) (time.Time, bool) {
	if t.CreatedAt.IsZero() {
		return time.Time{}, false
	}
	return t.CreatedAt.Time, true
}

// kstDay truncates a time to KST midnight of its calendar day.
func kstDay(t time.Time) time.Time {
	k := t.In(kst)
	return time.Date(k.Year(), k.Month(), k.Day(), 0, 0, 0, 0, kst)
}

// weekStart returns the Monday of the KST-midnight day it receives.
func weekStart(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// daysBetween counts whole calendar days from a to b; both must already be
// KST midnights. The fixed zone has no DST, so hour division is exact.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

func monthAdd(year, month, delta int) (int, int) {
	idx := year*12 + (month - 1) + delta
	return idx / 12, idx%12 + 1
}
