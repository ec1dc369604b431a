// Package audit defines the event stream the sync pipelines emit after each
// state transition. Emission is synchronous and explicit; the pipeline never
// depends on ambient registration.
package audit

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// EventType identifies a pipeline state transition.
type EventType string

const (
	EventDealAdded      EventType = "deal_added"
	EventDealSuperseded EventType = "deal_superseded"
	EventDealExpired    EventType = "deal_expired"
	EventProductCreated EventType = "product_created"
	EventProductUpdated EventType = "product_updated"
)

// Event is one audit record of a pipeline state transition.
type Event struct {
	Type       EventType
	ASIN       string
	ProductID  int
	DealID     int
	OccurredAt time.Time
}

// Emitter receives audit events. Implementations must be safe for use from a
// single sync pass; events are emitted synchronously after each transition.
type Emitter interface {
	Emit(ctx context.Context, event Event)
}

// LogEmitter writes audit events as structured log entries.
type LogEmitter struct {
	logger *zerolog.Logger
}

// NewLogEmitter returns new LogEmitter.
func NewLogEmitter(logger *zerolog.Logger) *LogEmitter {
	return &LogEmitter{
		logger: logger,
	}
}

// Emit writes one audit event.
func (e *LogEmitter) Emit(_ context.Context, event Event) {
	e.logger.Info().
		Str("event", string(event.Type)).
		Str("asin", event.ASIN).
		Int("productId", event.ProductID).
		Int("dealId", event.DealID).
		Time("occurredAt", event.OccurredAt).
		Msg("audit event")
}

// NopEmitter discards audit events.
type NopEmitter struct{}

// Emit discards the event.
func (NopEmitter) Emit(context.Context, Event) {}
