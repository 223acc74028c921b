package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSnapshotRefreshed EventType = "snapshot_refreshed"
	EventExportGenerated   EventType = "export_generated"
	EventPresetSaved       EventType = "preset_saved"
	EventPresetDeleted     EventType = "preset_deleted"
)

// Event represents a service event.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorEmp  string      `json:"actor_emp_no,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// SnapshotRefreshedPayload payload.
type SnapshotRefreshedPayload struct {
	TicketCount int           `json:"ticket_count"`
	Elapsed     time.Duration `json:"elapsed"`
}

// ExportGeneratedPayload payload.
type ExportGeneratedPayload struct {
	Rows    int    `json:"rows"`
	Columns int    `json:"columns"`
	Preset  string `json:"preset,omitempty"`
}

// PresetPayload payload for preset save/delete.
type PresetPayload struct {
	Name string `json:"name"`
}
