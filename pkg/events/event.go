package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "PULSE_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

const (
	TypePulseCreated    = "PULSE_CREATED"
	TypeCanonicalMinted = "CANONICAL_MINTED"
)

// NewPulseCreatedEvent is emitted once per persisted pulse point so delivery
// plumbing downstream can notify watchers.
func NewPulseCreatedEvent(pointId, companyId uuid.UUID, bucket string, tier int) Event {
	return BaseEvent{
		Type: TypePulseCreated,
		Data: map[string]interface{}{
			"pulse_point_id": pointId.String(),
			"company_id":     companyId.String(),
			"bucket":         bucket,
			"tier":           tier,
		},
		OccurredAt: time.Now().UTC(),
	}
}

// NewCanonicalMintedEvent is emitted when a new canonical concept enters the
// vocabulary, so other instances refresh their caches.
func NewCanonicalMintedEvent(conceptId int64, kind, name string) Event {
	return BaseEvent{
		Type: TypeCanonicalMinted,
		Data: map[string]interface{}{
			"concept_id": conceptId,
			"kind":       kind,
			"name":       name,
		},
		OccurredAt: time.Now().UTC(),
	}
}
