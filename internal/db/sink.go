package db

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hyle-team/staking-strategy-svc/internal/strategy"
	"github.com/pkg/errors"
)

// journalSink persists every strategy event as a movement row.
type journalSink struct {
	movements MovementsQ
}

func NewJournalSink(movements MovementsQ) strategy.Sink {
	return &journalSink{movements: movements}
}

func (s *journalSink) Emit(_ context.Context, event strategy.Event) error {
	movement := Movement{Kind: string(event.Kind)}

	if event.Amount != nil {
		amount := event.Amount.String()
		movement.Amount = &amount
	}
	if event.Recipient != (common.Address{}) {
		recipient := event.Recipient.Hex()
		movement.Recipient = &recipient
	}
	if event.Direction != "" {
		direction := string(event.Direction)
		movement.Direction = &direction
	}

	if _, err := s.movements.New().Insert(movement); err != nil {
		return errors.Wrap(err, "failed to insert movement")
	}

	return nil
}
