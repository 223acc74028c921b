package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-dashboard/internal/derive"
	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
	"github.com/spec-kit/helpdesk-dashboard/internal/events"
)

// TicketSource abstracts the upstream API client for the view layer.
type TicketSource interface {
	ListTickets(ctx context.Context) ([]domain.Ticket, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
}

// ViewService owns the ticket snapshot and computes every derived view: the
// filtered/sorted/paginated list, status counts and chart series. All
// derivation is delegated to the pure derive package; this layer adds the
// snapshot cache and unread flags.
type ViewService struct {
	source     TicketSource
	marks      *ReadMarkService
	dispatcher events.Dispatcher
	logger     *zap.Logger
	staleAfter time.Duration
	now        func() time.Time

	mu        sync.RWMutex
	snapshot  []domain.Ticket
	fetchedAt time.Time
}

// ViewDependencies bundles collaborators for the view service.
type ViewDependencies struct {
	Source     TicketSource
	ReadMarks  *ReadMarkService
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	StaleAfter time.Duration
	Now        func() time.Time
}

// NewViewService constructs the service.
func NewViewService(deps ViewDependencies) *ViewService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	staleAfter := deps.StaleAfter
	if staleAfter <= 0 {
		staleAfter = 10 * time.Minute
	}
	return &ViewService{
		source:     deps.Source,
		marks:      deps.ReadMarks,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		staleAfter: staleAfter,
		now:        now,
	}
}

// ListQuery describes one derived list request.
type ListQuery struct {
	Filter   derive.ListFilter
	Sort     derive.SortSpec
	Page     int
	PageSize int
}

// TicketPage is a derived, ordered page plus pagination metadata.
type TicketPage struct {
	Items      []domain.Ticket
	Unread     map[int64]bool
	Total      int
	TotalPages int
	Page       int
}

// RefreshSnapshot fetches the ticket collection from upstream and replaces
// the cached snapshot, publishing a snapshot_refreshed event.
func (s *ViewService) RefreshSnapshot(ctx context.Context) (int, error) {
	start := s.now()
	tickets, err := s.source.ListTickets(ctx)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	s.snapshot = tickets
	s.fetchedAt = s.now()
	s.mu.Unlock()

	s.publishEvent(ctx, events.Event{
		Type: events.EventSnapshotRefreshed,
		Payload: events.SnapshotRefreshedPayload{
			TicketCount: len(tickets),
			Elapsed:     s.now().Sub(start),
		},
	})
	return len(tickets), nil
}

// AllTickets returns the current snapshot, refreshing it first when empty
// or stale.
func (s *ViewService) AllTickets(ctx context.Context) ([]domain.Ticket, error) {
	s.mu.RLock()
	snapshot := s.snapshot
	fetchedAt := s.fetchedAt
	s.mu.RUnlock()

	if fetchedAt.IsZero() || s.now().Sub(fetchedAt) > s.staleAfter {
		if _, err := s.RefreshSnapshot(ctx); err != nil {
			if len(snapshot) == 0 {
				return nil, err
			}
			// Serve the stale snapshot rather than failing the view.
			s.logger.Warn("snapshot refresh failed, serving stale data", zap.Error(err))
			return snapshot, nil
		}
		s.mu.RLock()
		snapshot = s.snapshot
		s.mu.RUnlock()
	}
	return snapshot, nil
}

// ListTickets computes a derived list page for one caller: filter, sort,
// paginate, then flag unread rows against the caller's read marks.
func (s *ViewService) ListTickets(ctx context.Context, empNo string, q ListQuery) (*TicketPage, error) {
	tickets, err := s.AllTickets(ctx)
	if err != nil {
		return nil, err
	}

	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = 20
	}

	filtered := derive.FilterTickets(tickets, q.Filter)
	ordered := derive.SortTickets(filtered, q.Sort)
	page := derive.Paginate(ordered, q.Page, q.PageSize)

	unread, err := s.marks.UnreadSet(ctx, empNo, page)
	if err != nil {
		// Read marks are cosmetic; a store hiccup must not break the list.
		s.logger.Warn("unread computation failed", zap.Error(err))
		unread = map[int64]bool{}
	}

	return &TicketPage{
		Items:      page,
		Unread:     unread,
		Total:      len(ordered),
		TotalPages: derive.TotalPages(len(ordered), q.PageSize),
		Page:       q.Page,
	}, nil
}

// StatusCounts returns ticket counts per canonical status bucket for the
// dashboard headline cards.
func (s *ViewService) StatusCounts(ctx context.Context) (map[derive.StatusBucket]int, error) {
	tickets, err := s.AllTickets(ctx)
	if err != nil {
		return nil, err
	}
	counts := map[derive.StatusBucket]int{
		derive.StatusWaiting: 0,
		derive.StatusDoing:   0,
		derive.StatusDone:    0,
		derive.StatusReview:  0,
	}
	for i := range tickets {
		counts[derive.ClassifyStatus(tickets[i].Status)]++
	}
	return counts, nil
}

// ChartSeries buckets ticket creation into the requested period series.
func (s *ViewService) ChartSeries(ctx context.Context, period derive.Period) (derive.Series, error) {
	tickets, err := s.AllTickets(ctx)
	if err != nil {
		return derive.Series{}, err
	}
	return derive.BucketTickets(tickets, period, s.now()), nil
}

// Categories proxies the normalized category collection.
func (s *ViewService) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.source.ListCategories(ctx)
}

// Projects proxies the normalized project collection.
func (s *ViewService) Projects(ctx context.Context) ([]domain.Project, error) {
	return s.source.ListProjects(ctx)
}

func (s *ViewService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
