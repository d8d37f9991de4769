package strategy

import (
	"context"
	"math/big"

	"github.com/pkg/errors"
)

// OnDeposit is invoked by the aggregator after it has transferred `amount` of
// the held asset to the strategy. The nominal amount is informational only:
// the commit decision is made against the live held balance, so leftovers
// from earlier sub-threshold deposits are included in the batch.
func (s *Strategy) OnDeposit(ctx context.Context, amount *big.Int) error {
	if s.depositsPaused.Load() {
		return ErrDepositsPaused
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	held, err := s.heldBalance(ctx)
	if err != nil {
		return err
	}

	if held.Cmp(s.threshold) < 0 {
		s.logger.WithField("queued", amount.String()).Debug("deposit queued below threshold")
		s.emit(ctx, Event{Kind: EventDepositQueued, Amount: new(big.Int).Set(amount)})

		return nil
	}

	if err = s.adapter.Unwrap(ctx, held); err != nil {
		return errors.Wrap(err, "failed to unwrap held balance")
	}
	if err = s.pool.Deposit(ctx, held); err != nil {
		return errors.Wrap(err, "failed to deposit into staking pool")
	}

	s.logger.WithField("committed", held.String()).Info("deposit batch committed")
	s.emit(ctx, Event{Kind: EventDepositCommitted, Amount: held})

	return nil
}
