package events

import (
	"context"
)

// Publisher announces ledger changes to other systems.
type Publisher interface {
	Publish(ctx context.Context, event *LedgerEvent) error
	Close() error
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, *LedgerEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
