package strategy

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

// EmergencyWithdraw halts both directions and fully exits the staking pool,
// leaving everything as held balance. No transfer to any external party
// happens here; funds stay recoverable through the (now paused) withdrawal
// path once unpaused by a separate administrative action.
//
// A repeated call in immediate mode realizes zero and is a no-op. In
// cooldown mode the unstake call is forwarded again and the pool's own
// tolerance for a redundant unstake decides the outcome; the strategy
// propagates whatever the pool answers.
func (s *Strategy) EmergencyWithdraw(ctx context.Context, caller common.Address) error {
	if !s.isOwner(caller) {
		return ErrNotOwner
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pauseForEmergency(ctx, DirectionDeposit, &s.depositsPaused)
	s.pauseForEmergency(ctx, DirectionWithdrawal, &s.withdrawalsPaused)

	cooldownMode, err := s.cooldownMode(ctx)
	if err != nil {
		return err
	}
	readable, err := s.poolReadable(ctx, cooldownMode)
	if err != nil {
		return err
	}

	if cooldownMode {
		if err = s.pool.Unstake(ctx); err != nil {
			return errors.Wrap(err, "failed to unstake cooled down funds")
		}
	} else if readable.Sign() > 0 {
		if err = s.pool.Withdraw(ctx, readable); err != nil {
			return errors.Wrap(err, "failed to withdraw from staking pool")
		}
	}

	if readable.Sign() > 0 {
		if err = s.adapter.Wrap(ctx, readable); err != nil {
			return errors.Wrap(err, "failed to wrap liquidated pool funds")
		}
	}

	s.logger.WithField("liquidated", readable.String()).Warn("emergency exit executed")
	s.emit(ctx, Event{Kind: EventEmergencyExit, Amount: readable})

	return nil
}

func (s *Strategy) pauseForEmergency(ctx context.Context, direction Direction, gate *atomic.Bool) {
	before := gate.Swap(true)
	s.emit(ctx, Event{Kind: EventPauseToggled, Direction: direction, Before: before, After: true})
}
