package activity

import (
	"encoding/json"
	"time"
)

// Entry is an immutable, append-only interaction record.
//
// Invariants:
// - Entries are never updated or deleted.
// - church_id is required for tenancy isolation.
// - Writes are best-effort; callers must not block caller-facing flows on
//   a failed entry.
//
// Storage recommendation (Postgres):
// - Table activities with an INSERT-only policy.
// - Optional: partition by time for retention.
type Entry struct {
	ID       string `json:"id" db:"id"`
	ChurchID string `json:"church_id" db:"church_id"`

	Type   Type   `json:"type" db:"type"`
	Status Status `json:"status" db:"status"`

	// Title and Description are short human-readable summaries shown in the
	// dashboard feed. Description is truncated to DescriptionLimit runes.
	Title       string `json:"title" db:"title"`
	Description string `json:"description,omitempty" db:"description"`

	// Metadata is a JSON document with the full detail (raw transcript,
	// call SID, reply text, ...).
	Metadata string `json:"metadata,omitempty" db:"metadata"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Type string

const (
	// TypeVoice records one assistant conversation turn.
	TypeVoice Type = "VOICE"
	// TypeCall records call lifecycle events (completion, duration).
	TypeCall Type = "CALL"
)

type Status string

const StatusCompleted Status = "COMPLETED"

// DescriptionLimit bounds the feed summary; the untruncated transcript
// lives in Metadata.
const DescriptionLimit = 500

// TurnMetadata is the metadata payload for one conversation turn.
type TurnMetadata struct {
	CallSID      string `json:"call_sid,omitempty"`
	From         string `json:"from,omitempty"`
	To           string `json:"to,omitempty"`
	Caller       string `json:"caller,omitempty"`
	SpeechResult string `json:"speech_result,omitempty"`
	Reply        string `json:"reply,omitempty"`
}

// CallMetadata is the metadata payload for a call lifecycle event.
type CallMetadata struct {
	CallSID         string `json:"call_sid,omitempty"`
	From            string `json:"from,omitempty"`
	To              string `json:"to,omitempty"`
	CallStatus      string `json:"call_status,omitempty"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
}

func marshalMetadata(v any) string {
	buf, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(buf)
}

// Truncate bounds s to limit runes, appending an ellipsis when cut.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}
