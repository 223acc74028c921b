package service

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
	"github.com/spec-kit/helpdesk-dashboard/internal/store"
)

const readMarkKeyPrefix = "ticket_read_marks:"

// ReadMarkService persists each user's ticket-id → last-read-timestamp map
// and computes unread flags from it. The blob is read-modify-written whole;
// last-write-wins is intended.
type ReadMarkService struct {
	kv     store.KV
	logger *zap.Logger
	now    func() time.Time
}

// NewReadMarkService constructs the service.
func NewReadMarkService(kv store.KV, logger *zap.Logger) *ReadMarkService {
	return &ReadMarkService{kv: kv, logger: logger, now: time.Now}
}

// Marks loads a user's read-mark map. Missing or corrupt data reads empty.
func (s *ReadMarkService) Marks(ctx context.Context, empNo string) (map[int64]time.Time, error) {
	stored := map[string]string{}
	if _, err := store.GetJSON(ctx, s.kv, readMarkKeyPrefix+empNo, &stored); err != nil {
		return nil, err
	}
	marks := make(map[int64]time.Time, len(stored))
	for rawID, rawTS := range stored {
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			continue
		}
		ts, err := time.Parse(time.RFC3339, rawTS)
		if err != nil {
			continue
		}
		marks[id] = ts
	}
	return marks, nil
}

// MarkRead records that the user viewed a ticket now.
func (s *ReadMarkService) MarkRead(ctx context.Context, empNo string, ticketID int64) error {
	marks, err := s.Marks(ctx, empNo)
	if err != nil {
		return err
	}
	marks[ticketID] = s.now()

	stored := make(map[string]string, len(marks))
	for id, ts := range marks {
		stored[strconv.FormatInt(id, 10)] = ts.UTC().Format(time.RFC3339)
	}
	return store.SetJSON(ctx, s.kv, readMarkKeyPrefix+empNo, stored)
}

// UnreadSet flags which of the given tickets are unread for the user: no
// mark recorded, or activity after the mark.
func (s *ReadMarkService) UnreadSet(ctx context.Context, empNo string, tickets []domain.Ticket) (map[int64]bool, error) {
	marks, err := s.Marks(ctx, empNo)
	if err != nil {
		return nil, err
	}
	unread := make(map[int64]bool, len(tickets))
	for i := range tickets {
		t := &tickets[i]
		mark, ok := marks[t.ID]
		unread[t.ID] = !ok || t.EffectiveUpdatedAt().After(mark)
	}
	return unread, nil
}
