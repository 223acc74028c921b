package derive

import "testing"

func TestClassifyStatusVocabulary(t *testing.T) {
	cases := map[string]StatusBucket{
		"open":        StatusWaiting,
		"new":         StatusWaiting,
		"pending":     StatusWaiting,
		"todo":        StatusWaiting,
		"requested":   StatusWaiting,
		"in_progress": StatusDoing,
		"progress":    StatusDoing,
		"working":     StatusDoing,
		"assigned":    StatusDoing,
		"doing":       StatusDoing,
		"processing":  StatusDoing,
		"resolved":    StatusDone,
		"done":        StatusDone,
		"completed":   StatusDone,
		"closed":      StatusReview,
		"review":      StatusReview,
	}
	for raw, want := range cases {
		if got := ClassifyStatus(raw); got != want {
			t.Errorf("ClassifyStatus(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestClassifyStatusUnknownFallsBackToWaiting(t *testing.T) {
	for _, raw := range []string{"frobnicate", "", "   ", "ARCHIVED"} {
		if got := ClassifyStatus(raw); got != StatusWaiting {
			t.Fatalf("ClassifyStatus(%q) = %q, want waiting", raw, got)
		}
	}
}

func TestClassifyStatusIsCaseInsensitive(t *testing.T) {
	if got := ClassifyStatus("  In_Progress "); got != StatusDoing {
		t.Fatalf("ClassifyStatus with mixed case = %q, want doing", got)
	}
}

func TestStatusRank(t *testing.T) {
	ranks := map[string]int{
		"open":        0,
		"in_progress": 1,
		"resolved":    2,
		"closed":      3,
		"new":         9,
		"whatever":    9,
		"":            9,
	}
	for raw, want := range ranks {
		if got := StatusRank(raw); got != want {
			t.Errorf("StatusRank(%q) = %d, want %d", raw, got, want)
		}
	}
}

func TestPriorityRankAndLabelDivergeOnMissing(t *testing.T) {
	// Ranking treats a missing priority as "sorts last", while display treats
	// it as medium. Both defaults are load-bearing.
	if got := PriorityRank(""); got != 9 {
		t.Fatalf("PriorityRank(\"\") = %d, want 9", got)
	}
	if got := PriorityLabel(""); got != "medium" {
		t.Fatalf("PriorityLabel(\"\") = %q, want medium", got)
	}
	if got := PriorityRank("bogus"); got != 9 {
		t.Fatalf("PriorityRank(bogus) = %d, want 9", got)
	}
	if got := PriorityLabel("bogus"); got != "medium" {
		t.Fatalf("PriorityLabel(bogus) = %q, want medium", got)
	}
}

func TestPriorityRankOrdering(t *testing.T) {
	order := []string{"urgent", "high", "medium", "low"}
	for i := 1; i < len(order); i++ {
		if PriorityRank(order[i-1]) >= PriorityRank(order[i]) {
			t.Fatalf("expected %s to rank before %s", order[i-1], order[i])
		}
	}
}

func TestWorkTypeLabels(t *testing.T) {
	if got := WorkTypeLabel("maintenance"); got != "other" {
		t.Fatalf("legacy maintenance = %q, want other", got)
	}
	if got := WorkTypeLabel("project"); got != "other" {
		t.Fatalf("legacy project = %q, want other", got)
	}
	if got := WorkTypeLabel(""); got != "-" {
		t.Fatalf("empty work type label = %q, want dash", got)
	}
	if got := WorkTypeGroup(""); got != "other" {
		t.Fatalf("empty work type group = %q, want other", got)
	}
	for _, canonical := range []string{"incident", "request", "change", "other"} {
		if got := WorkTypeLabel(canonical); got != canonical {
			t.Errorf("WorkTypeLabel(%q) = %q", canonical, got)
		}
	}
}
