package movement

import "time"

// EventType enum
type EventType string

const (
	EventEntry       EventType = "ENTRY"
	EventResign      EventType = "RESIGN"
	EventRetire      EventType = "RETIRE"
	EventDeath       EventType = "DEATH"
	EventTransferOut EventType = "TRANSFER_OUT"
	EventStudy       EventType = "STUDY"
)

// IsExit reports whether the event ends active employment.
func (t EventType) IsExit() bool {
	switch t {
	case EventResign, EventRetire, EventDeath, EventTransferOut:
		return true
	}
	return false
}

// Swappable reports whether a same-day or next-day ENTRY after this event
// should be merged into one continuous work period.
func (t EventType) Swappable() bool {
	return t == EventResign || t == EventTransferOut
}

// Event - one row of the append-only movement log. Seq is the creation
// order, used only to break ties between events on the same effective date.
type Event struct {
	ID            string
	CitizenID     string
	Type          EventType
	EffectiveDate time.Time
	Seq           int64
	CreatedAt     time.Time
}
