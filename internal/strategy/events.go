package strategy

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

type EventKind string

const (
	EventDepositQueued    EventKind = "deposit_queued"
	EventDepositCommitted EventKind = "deposit_committed"
	EventWithdrawn        EventKind = "withdrawn"
	EventThresholdUpdated EventKind = "threshold_updated"
	EventClusterUpdated   EventKind = "cluster_updated"
	EventPauseToggled     EventKind = "pause_toggled"
	EventEmergencyExit    EventKind = "emergency_exit"
)

// Event is a single strategy state transition signal.
// Amount and Recipient are set for asset movements, Direction with the
// Before/After pair for pause transitions.
type Event struct {
	Kind      EventKind
	Amount    *big.Int
	Recipient common.Address
	Direction Direction
	Before    bool
	After     bool
}

// Sink receives strategy events. Implementations must not depend on the
// strategy lock; Emit is called while it is held.
type Sink interface {
	Emit(ctx context.Context, event Event) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, event Event) error

func (f SinkFunc) Emit(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// emit pushes the event to the configured sink. A sink failure is logged and
// not propagated: the asset movement the event describes has already settled,
// failing the enclosing operation at this point would desync the caller.
func (s *Strategy) emit(ctx context.Context, event Event) {
	if s.events == nil {
		return
	}

	if err := s.events.Emit(ctx, event); err != nil {
		s.logger.WithError(err).WithField("event", string(event.Kind)).Error("failed to emit strategy event")
	}
}
