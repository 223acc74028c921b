package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
	"github.com/spec-kit/helpdesk-dashboard/internal/events"
	"github.com/spec-kit/helpdesk-dashboard/internal/store"
	apperrors "github.com/spec-kit/helpdesk-dashboard/pkg/util"
)

const presetKeyPrefix = "extract_presets:"

// PresetService persists each user's named data-extract presets as one JSON
// blob in the KV store.
type PresetService struct {
	kv         store.KV
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewPresetService constructs the service.
func NewPresetService(kv store.KV, dispatcher events.Dispatcher, logger *zap.Logger) *PresetService {
	return &PresetService{kv: kv, dispatcher: dispatcher, logger: logger}
}

// List loads a user's presets. Missing or corrupt data reads empty.
func (s *PresetService) List(ctx context.Context, empNo string) ([]domain.DataExtractPreset, error) {
	presets := []domain.DataExtractPreset{}
	if _, err := store.GetJSON(ctx, s.kv, presetKeyPrefix+empNo, &presets); err != nil {
		return nil, err
	}
	return presets, nil
}

// Save stores a preset, replacing any existing one with the same name. The
// day range is clamped into [0,100] and ordered before persisting.
func (s *PresetService) Save(ctx context.Context, empNo string, preset domain.DataExtractPreset) error {
	preset.Name = strings.TrimSpace(preset.Name)
	if preset.Name == "" {
		return apperrors.NewValidationError("preset name required", nil)
	}
	preset.CreatedDayRangePercent = clampDayRange(preset.CreatedDayRangePercent)

	presets, err := s.List(ctx, empNo)
	if err != nil {
		return err
	}
	replaced := false
	for i := range presets {
		if presets[i].Name == preset.Name {
			presets[i] = preset
			replaced = true
			break
		}
	}
	if !replaced {
		presets = append(presets, preset)
	}
	if err := store.SetJSON(ctx, s.kv, presetKeyPrefix+empNo, presets); err != nil {
		return err
	}

	s.publish(ctx, empNo, events.EventPresetSaved, preset.Name)
	return nil
}

// Delete removes a named preset. Deleting a preset that does not exist is
// not an error.
func (s *PresetService) Delete(ctx context.Context, empNo, name string) error {
	presets, err := s.List(ctx, empNo)
	if err != nil {
		return err
	}
	kept := presets[:0]
	removed := false
	for _, p := range presets {
		if p.Name == name {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return nil
	}
	if err := store.SetJSON(ctx, s.kv, presetKeyPrefix+empNo, kept); err != nil {
		return err
	}

	s.publish(ctx, empNo, events.EventPresetDeleted, name)
	return nil
}

func (s *PresetService) publish(ctx context.Context, empNo string, eventType events.EventType, name string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ActorEmp:  empNo,
		Timestamp: time.Now(),
		Payload:   events.PresetPayload{Name: name},
	})
}

func clampDayRange(r [2]float64) [2]float64 {
	for i := range r {
		if r[i] < 0 {
			r[i] = 0
		}
		if r[i] > 100 {
			r[i] = 100
		}
	}
	if r[0] > r[1] {
		r[0], r[1] = r[1], r[0]
	}
	return r
}
