package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
	"github.com/spec-kit/helpdesk-dashboard/internal/store"
)

func TestUnreadComputation(t *testing.T) {
	ctx := context.Background()
	svc := NewReadMarkService(store.NewMemory(), zap.NewNop())
	svc.now = func() time.Time { return time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC) }

	if err := svc.MarkRead(ctx, "E1", 1); err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}

	tickets := []domain.Ticket{
		// Updated before the mark: read.
		{ID: 1, Status: "open", UpdatedAt: domain.ParseTimestamp("2024-05-09T00:00:00Z")},
		// Never marked: unread.
		{ID: 2, Status: "open", UpdatedAt: domain.ParseTimestamp("2024-05-01T00:00:00Z")},
	}
	unread, err := svc.UnreadSet(ctx, "E1", tickets)
	if err != nil {
		t.Fatalf("UnreadSet failed: %v", err)
	}
	if unread[1] {
		t.Fatal("ticket updated before the mark should be read")
	}
	if !unread[2] {
		t.Fatal("unmarked ticket should be unread")
	}
}

func TestActivityAfterMarkMakesUnreadAgain(t *testing.T) {
	ctx := context.Background()
	svc := NewReadMarkService(store.NewMemory(), zap.NewNop())
	svc.now = func() time.Time { return time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC) }

	if err := svc.MarkRead(ctx, "E1", 7); err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}
	// The resolved_at chain drives recency, and it is after the mark.
	tickets := []domain.Ticket{
		{ID: 7, Status: "resolved",
			UpdatedAt:  domain.ParseTimestamp("2024-05-01T00:00:00Z"),
			ResolvedAt: domain.ParseTimestamp("2024-05-11T00:00:00Z")},
	}
	unread, err := svc.UnreadSet(ctx, "E1", tickets)
	if err != nil {
		t.Fatalf("UnreadSet failed: %v", err)
	}
	if !unread[7] {
		t.Fatal("activity after the mark should flip the ticket back to unread")
	}
}

func TestMarksCorruptBlobReadsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	if err := kv.Set(ctx, readMarkKeyPrefix+"E1", []byte("not json")); err != nil {
		t.Fatalf("seed corrupt blob: %v", err)
	}
	svc := NewReadMarkService(kv, zap.NewNop())
	marks, err := svc.Marks(ctx, "E1")
	if err != nil {
		t.Fatalf("corrupt blob must not error: %v", err)
	}
	if len(marks) != 0 {
		t.Fatalf("corrupt blob should read empty, got %v", marks)
	}
}

func TestMarksSkipMalformedEntries(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	blob := `{"12":"2024-05-01T00:00:00Z","not-an-id":"2024-05-01T00:00:00Z","13":"garbage"}`
	if err := kv.Set(ctx, readMarkKeyPrefix+"E1", []byte(blob)); err != nil {
		t.Fatalf("seed blob: %v", err)
	}
	svc := NewReadMarkService(kv, zap.NewNop())
	marks, err := svc.Marks(ctx, "E1")
	if err != nil {
		t.Fatalf("Marks failed: %v", err)
	}
	if len(marks) != 1 {
		t.Fatalf("only the well-formed entry should survive, got %v", marks)
	}
	if _, ok := marks[12]; !ok {
		t.Fatalf("entry 12 missing: %v", marks)
	}
}
