// Package derive implements the pure derivation core shared by every
// dashboard view: classification of raw status/priority/work-type strings,
// filtering, sorting, pagination and KST time-bucketing over ticket
// collections. Every function is a stateless transform; none mutates its
// input or performs I/O.
package derive

import "strings"

// StatusBucket is the canonical coarse status the dashboard groups raw
// statuses into.
type StatusBucket string

const (
	StatusWaiting StatusBucket = "waiting"
	StatusDoing   StatusBucket = "doing"
	StatusDone    StatusBucket = "done"
	StatusReview  StatusBucket = "review"
)

var statusBuckets = map[string]StatusBucket{
	"open":      StatusWaiting,
	"new":       StatusWaiting,
	"pending":   StatusWaiting,
	"todo":      StatusWaiting,
	"requested": StatusWaiting,

	"in_progress": StatusDoing,
	"progress":    StatusDoing,
	"working":     StatusDoing,
	"assigned":    StatusDoing,
	"doing":       StatusDoing,
	"processing":  StatusDoing,

	"resolved":  StatusDone,
	"done":      StatusDone,
	"completed": StatusDone,

	"closed": StatusReview,
	"review": StatusReview,
}

// ClassifyStatus maps a raw status string into its canonical bucket.
// Unrecognized values fall back to waiting, matching the historical behavior
// of every call site. Note that this hides data-quality drift: a status value
// introduced server-side that this table does not know about will silently
// show up as waiting.
func ClassifyStatus(raw string) StatusBucket {
	if bucket, ok := statusBuckets[normalize(raw)]; ok {
		return bucket
	}
	return StatusWaiting
}

// StatusRank orders raw statuses for the default composite sort. Only the
// four primary lifecycle values carry a rank; everything else, synonyms
// included, sorts last.
func StatusRank(raw string) int {
	switch normalize(raw) {
	case "open":
		return 0
	case "in_progress":
		return 1
	case "resolved":
		return 2
	case "closed":
		return 3
	default:
		return 9
	}
}

// PriorityRank orders raw priorities for sorting. Missing or unrecognized
// priority sorts last (rank 9), deliberately NOT as medium: the display
// fallback for a missing priority is medium (see PriorityLabel), but the two
// defaults differ by call site and collapsing them would change observable
// sort order.
func PriorityRank(raw string) int {
	switch normalize(raw) {
	case "urgent":
		return 0
	case "high":
		return 1
	case "medium":
		return 2
	case "low":
		return 3
	default:
		return 9
	}
}

// PriorityLabel returns the canonical display priority, treating a missing
// or unrecognized value as medium.
func PriorityLabel(raw string) string {
	switch normalize(raw) {
	case "low":
		return "low"
	case "high":
		return "high"
	case "urgent":
		return "urgent"
	default:
		return "medium"
	}
}

// WorkTypeLabel returns the canonical display work type. The deprecated
// maintenance and project values normalize to other; an empty value renders
// as a dash placeholder.
func WorkTypeLabel(raw string) string {
	if normalize(raw) == "" {
		return "-"
	}
	return WorkTypeGroup(raw)
}

// WorkTypeGroup returns the canonical work type for grouping, where an empty
// value counts as other rather than a placeholder.
func WorkTypeGroup(raw string) string {
	switch normalize(raw) {
	case "incident":
		return "incident"
	case "request":
		return "request"
	case "change":
		return "change"
	default:
		return "other"
	}
}

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
