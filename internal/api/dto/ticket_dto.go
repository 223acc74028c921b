package dto

import (
	"github.com/spec-kit/helpdesk-dashboard/internal/derive"
	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
)

// TicketRow is one derived list row with canonical display labels.
type TicketRow struct {
	ID           int64            `json:"id"`
	Title        string           `json:"title"`
	Status       string           `json:"status"`
	StatusBucket string           `json:"status_bucket"`
	Priority     string           `json:"priority"`
	WorkType     string           `json:"work_type"`
	CategoryID   *int64           `json:"category_id"`
	ProjectID    *int64           `json:"project_id"`
	ProjectName  string           `json:"project_name,omitempty"`
	Requester    string           `json:"requester"`
	Assignee     string           `json:"assignee,omitempty"`
	CreatedAt    domain.Timestamp `json:"created_at"`
	UpdatedAt    domain.Timestamp `json:"updated_at"`
	Unread       bool             `json:"unread"`
}

// TicketListResponse is the paginated list payload.
type TicketListResponse struct {
	Items      []TicketRow `json:"items"`
	Total      int         `json:"total"`
	TotalPages int         `json:"total_pages"`
	Page       int         `json:"page"`
}

// StatusCountsResponse feeds the dashboard headline cards.
type StatusCountsResponse struct {
	Waiting int `json:"waiting"`
	Doing   int `json:"doing"`
	Done    int `json:"done"`
	Review  int `json:"review"`
	Total   int `json:"total"`
}

// TicketRowFrom maps a domain ticket into its list row.
func TicketRowFrom(t *domain.Ticket, unread bool) TicketRow {
	return TicketRow{
		ID:           t.ID,
		Title:        t.Title,
		Status:       t.Status,
		StatusBucket: string(derive.ClassifyStatus(t.Status)),
		Priority:     derive.PriorityLabel(t.Priority),
		WorkType:     derive.WorkTypeLabel(t.WorkType),
		CategoryID:   t.CategoryID,
		ProjectID:    t.ProjectID,
		ProjectName:  t.ProjectName,
		Requester:    t.RequesterName(),
		Assignee:     t.AssigneeName(),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    domain.Timestamp{Time: t.EffectiveUpdatedAt()},
		Unread:       unread,
	}
}
