package domain

// FilterRuleMode selects how a rule's value list is applied.
type FilterRuleMode string

const (
	RuleModeIncludeOnly FilterRuleMode = "include_only"
	RuleModeExclude     FilterRuleMode = "exclude"
)

// FilterRule is one per-column rule in a data extract: include_only keeps
// rows whose field value appears in Values, exclude drops them. An empty
// Values list is a no-op.
type FilterRule struct {
	Field  string         `json:"field"`
	Mode   FilterRuleMode `json:"mode"`
	Values []string       `json:"values"`
}

// DataExtractPreset is a named, per-user bundle of extract configuration,
// persisted as JSON in the blob store. The day range is stored as a
// [start,end] percentage pair in [0,100] over a 366-day year; conversion to
// calendar day-of-year lives in the derive package and must round-trip.
type DataExtractPreset struct {
	Name                   string       `json:"name"`
	CreatedYearInclude     []int        `json:"createdYearInclude"`
	CreatedDayRangePercent [2]float64   `json:"createdDayRangePercent"`
	FilterRules            []FilterRule `json:"filterRules"`
	SelectedColumns        []string     `json:"selectedColumns"`
	ColumnOrder            []string     `json:"columnOrder"`
}
