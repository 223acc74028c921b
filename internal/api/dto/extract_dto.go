package dto

import "github.com/spec-kit/helpdesk-dashboard/internal/domain"

// ExtractRequest is the CSV extraction payload. Shapes mirror the persisted
// preset so a preset can be posted back verbatim.
type ExtractRequest struct {
	Columns                []string            `json:"columns"`
	Rules                  []domain.FilterRule `json:"rules"`
	CreatedYearInclude     []int               `json:"createdYearInclude"`
	CreatedDayRangePercent [2]float64          `json:"createdDayRangePercent"`
	PresetName             string              `json:"presetName,omitempty"`
}

// PresetSaveRequest carries one preset to persist.
type PresetSaveRequest struct {
	domain.DataExtractPreset
}

// ColumnInfo describes one extractable column for the configuration UI.
type ColumnInfo struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}
