package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
	"github.com/spec-kit/helpdesk-dashboard/internal/events"
	"github.com/spec-kit/helpdesk-dashboard/internal/store"
)

func newPresetService(kv store.KV) *PresetService {
	return NewPresetService(kv, events.NewInMemoryDispatcher(), zap.NewNop())
}

func TestPresetSaveListDelete(t *testing.T) {
	ctx := context.Background()
	svc := newPresetService(store.NewMemory())

	preset := domain.DataExtractPreset{
		Name:                   "monthly incidents",
		CreatedYearInclude:     []int{2024},
		CreatedDayRangePercent: [2]float64{0, 50},
		FilterRules: []domain.FilterRule{
			{Field: "work_type", Mode: domain.RuleModeIncludeOnly, Values: []string{"incident"}},
		},
		SelectedColumns: []string{"id", "title", "created_at"},
	}
	if err := svc.Save(ctx, "E1", preset); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	presets, err := svc.List(ctx, "E1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(presets) != 1 || presets[0].Name != "monthly incidents" {
		t.Fatalf("List = %+v", presets)
	}
	if len(presets[0].FilterRules) != 1 || presets[0].FilterRules[0].Values[0] != "incident" {
		t.Fatalf("rules lost in round trip: %+v", presets[0])
	}

	// Another user sees nothing.
	other, err := svc.List(ctx, "E2")
	if err != nil || len(other) != 0 {
		t.Fatalf("presets leaked across users: %v, %v", other, err)
	}

	if err := svc.Delete(ctx, "E1", "monthly incidents"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	presets, _ = svc.List(ctx, "E1")
	if len(presets) != 0 {
		t.Fatalf("preset survived delete: %+v", presets)
	}
}

func TestPresetSaveReplacesByName(t *testing.T) {
	ctx := context.Background()
	svc := newPresetService(store.NewMemory())

	first := domain.DataExtractPreset{Name: "p", SelectedColumns: []string{"id"}}
	second := domain.DataExtractPreset{Name: "p", SelectedColumns: []string{"id", "title"}}
	if err := svc.Save(ctx, "E1", first); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := svc.Save(ctx, "E1", second); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	presets, _ := svc.List(ctx, "E1")
	if len(presets) != 1 || len(presets[0].SelectedColumns) != 2 {
		t.Fatalf("same-name save should replace: %+v", presets)
	}
}

func TestPresetSaveValidatesAndClamps(t *testing.T) {
	ctx := context.Background()
	svc := newPresetService(store.NewMemory())

	if err := svc.Save(ctx, "E1", domain.DataExtractPreset{Name: "  "}); err == nil {
		t.Fatal("blank preset name must be rejected")
	}

	preset := domain.DataExtractPreset{Name: "p", CreatedDayRangePercent: [2]float64{120, -3}}
	if err := svc.Save(ctx, "E1", preset); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	presets, _ := svc.List(ctx, "E1")
	if got := presets[0].CreatedDayRangePercent; got != [2]float64{0, 100} {
		t.Fatalf("day range should clamp and order, got %v", got)
	}
}

func TestPresetCorruptBlobReadsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	if err := kv.Set(ctx, presetKeyPrefix+"E1", []byte("{{{")); err != nil {
		t.Fatalf("seed corrupt blob: %v", err)
	}
	svc := newPresetService(kv)
	presets, err := svc.List(ctx, "E1")
	if err != nil {
		t.Fatalf("corrupt blob must not error: %v", err)
	}
	if len(presets) != 0 {
		t.Fatalf("corrupt blob should read empty, got %+v", presets)
	}
	// And a save on top of the corruption starts a fresh list.
	if err := svc.Save(ctx, "E1", domain.DataExtractPreset{Name: "p"}); err != nil {
		t.Fatalf("Save over corrupt blob failed: %v", err)
	}
}

func TestDeleteMissingPresetIsNoop(t *testing.T) {
	svc := newPresetService(store.NewMemory())
	if err := svc.Delete(context.Background(), "E1", "ghost"); err != nil {
		t.Fatalf("deleting a missing preset must not error: %v", err)
	}
}
