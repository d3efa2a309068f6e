package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventSchemaSet    EventType = "schema_set"
	EventRecordStored EventType = "record_stored"
	EventCommand      EventType = "command"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// SchemaEvent reports a template replacement.
type SchemaEvent struct {
	EventBase
	Template string `json:"template"`
	Active   bool   `json:"active"`
}

// RecordEvent reports a record appended to the store.
type RecordEvent struct {
	EventBase
	Index int `json:"index"`
}

// CommandEvent reports a finished command.
type CommandEvent struct {
	EventBase
	Command  string        `json:"command"`
	Arg      string        `json:"arg,omitempty"`
	Duration time.Duration `json:"duration"`
	Err      error         `json:"-"`
}

// LifecycleHooks defines callbacks for program observability.
// Any hook may be nil.
type LifecycleHooks struct {
	OnSchemaSet    func(context.Context, *SchemaEvent)
	OnRecordStored func(context.Context, *RecordEvent)
	OnCommand      func(context.Context, *CommandEvent)
}

// NewEventBase stamps an event of type t with the current time.
func NewEventBase(t EventType) EventBase {
	return EventBase{Timestamp: time.Now(), Type: t}
}
