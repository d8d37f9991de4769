package strategy

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// OnWithdraw delivers exactly `amount` of the held asset to the recipient or
// fails without moving anything. Held balance is drawn first; any remainder
// is pulled from the pool according to its redemption mode. In cooldown mode
// only a previously requested and matured cooldown can be realized, and
// Unstake realizes all of it: the surplus over the pool draw stays as held
// balance for future calls.
func (s *Strategy) OnWithdraw(ctx context.Context, recipient common.Address, amount *big.Int) error {
	if s.withdrawalsPaused.Load() {
		return ErrWithdrawalsPaused
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cooldownMode, err := s.cooldownMode(ctx)
	if err != nil {
		return err
	}
	availableFromPool, err := s.poolReadable(ctx, cooldownMode)
	if err != nil {
		return err
	}
	held, err := s.heldBalance(ctx)
	if err != nil {
		return err
	}

	if new(big.Int).Add(held, availableFromPool).Cmp(amount) < 0 {
		return ErrInsufficientFunds
	}

	if poolDraw := poolDraw(held, amount); poolDraw.Sign() > 0 {
		if err = s.drawFromPool(ctx, cooldownMode, availableFromPool, poolDraw); err != nil {
			return err
		}
	}

	if err = s.held.Transfer(ctx, recipient, amount); err != nil {
		return errors.Wrap(err, "failed to transfer held balance to recipient")
	}

	s.logger.
		WithField("recipient", recipient.Hex()).
		WithField("amount", amount.String()).
		Info("withdrawal delivered")
	s.emit(ctx, Event{Kind: EventWithdrawn, Amount: new(big.Int).Set(amount), Recipient: recipient})

	return nil
}

// drawFromPool realizes pool funds into held balance. In cooldown mode the
// pool only supports claiming the entire matured cooldown amount, never a
// partial draw.
func (s *Strategy) drawFromPool(ctx context.Context, cooldownMode bool, available, poolDraw *big.Int) error {
	realized := poolDraw
	if cooldownMode {
		if err := s.pool.Unstake(ctx); err != nil {
			return errors.Wrap(err, "failed to unstake cooled down funds")
		}
		realized = available
	} else {
		if err := s.pool.Withdraw(ctx, poolDraw); err != nil {
			return errors.Wrap(err, "failed to withdraw from staking pool")
		}
	}

	if err := s.adapter.Wrap(ctx, realized); err != nil {
		return errors.Wrap(err, "failed to wrap realized pool funds")
	}

	return nil
}

// poolDraw is the part of the requested amount not covered by held balance,
// saturating at zero.
func poolDraw(held, amount *big.Int) *big.Int {
	if held.Cmp(amount) >= 0 {
		return new(big.Int)
	}

	return new(big.Int).Sub(amount, held)
}
