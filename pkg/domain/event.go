package domain

import "time"

// bus event names
const (
	EventSignalReceived = "intel.webhook.received"
)

// EventStatus is the lifecycle state of a durable bus event
type EventStatus string

// event lifecycle: pending -> inflight -> done, or -> failed after the
// consumer gives up. Failed events stay parked until an operator replays
// them, which moves the event back to pending.
const (
	EventPending  EventStatus = "pending"
	EventInflight EventStatus = "inflight"
	EventDone     EventStatus = "done"
	EventFailed   EventStatus = "failed"
)

// Event is a durable bus record. Payload is opaque to the bus itself and
// interpreted by the registered consumer.
type Event struct {
	ID        string
	Name      string
	Payload   []byte
	Status    EventStatus
	Attempts  int
	LastError string
	CreatedAt time.Time
	UpdatedAt time.Time
}
