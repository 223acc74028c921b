package domain

import (
	"strings"
	"time"
)

// Ticket is the read model for a helpdesk request as served by the upstream
// API. The upstream owns the record; this service only derives views from it.
// Status, priority and work type stay raw strings here because historical data
// carries an open vocabulary; classification happens in the derive package.
type Ticket struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Status      string       `json:"status"`
	Priority    string       `json:"priority"`
	WorkType    string       `json:"work_type"`
	CategoryID  *int64       `json:"category_id"`
	CategoryIDs []int64      `json:"category_ids"`
	ProjectID   *int64       `json:"project_id"`
	ProjectName string       `json:"project_name"`
	Requester   *UserSummary `json:"requester"`
	Assignee    *UserSummary `json:"assignee"`

	RequesterEmpNo string  `json:"requester_emp_no"`
	AssigneeEmpNo  *string `json:"assignee_emp_no"`

	CreatedAt  Timestamp `json:"created_at"`
	UpdatedAt  Timestamp `json:"updated_at"`
	ResolvedAt Timestamp `json:"resolved_at"`
	ClosedAt   Timestamp `json:"closed_at"`
}

// UserSummary is the embedded requester/assignee projection captured on the
// ticket at request time.
type UserSummary struct {
	EmpNo      string `json:"emp_no"`
	Name       string `json:"kor_name"`
	Title      string `json:"title"`
	Department string `json:"department"`
}

// DisplayName renders the user's name with an employee-number fallback.
func (u *UserSummary) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	return u.EmpNo
}

// RequesterName resolves the requester display name, falling back through the
// embedded summary to the bare employee number.
func (t *Ticket) RequesterName() string {
	if name := t.Requester.DisplayName(); name != "" {
		return name
	}
	return t.RequesterEmpNo
}

// AssigneeName resolves the assignee display name, empty when unassigned.
func (t *Ticket) AssigneeName() string {
	if name := t.Assignee.DisplayName(); name != "" {
		return name
	}
	if t.AssigneeEmpNo != nil {
		return *t.AssigneeEmpNo
	}
	return ""
}

// EffectiveUpdatedAt resolves the displayed "updated" timestamp:
// resolved_at when the ticket is resolved, closed_at when closed, otherwise
// updated_at, otherwise created_at. The zero time is returned when no
// timestamp is available and sorts before every real value.
func (t *Ticket) EffectiveUpdatedAt() time.Time {
	switch strings.ToLower(strings.TrimSpace(t.Status)) {
	case "resolved":
		if !t.ResolvedAt.IsZero() {
			return t.ResolvedAt.Time
		}
	case "closed":
		if !t.ClosedAt.IsZero() {
			return t.ClosedAt.Time
		}
	}
	if !t.UpdatedAt.IsZero() {
		return t.UpdatedAt.Time
	}
	if !t.CreatedAt.IsZero() {
		return t.CreatedAt.Time
	}
	return time.Time{}
}
