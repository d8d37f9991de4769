package strategy

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hyle-team/staking-strategy-svc/internal/protocol"
	"github.com/pkg/errors"
)

func (s *Strategy) isOwner(caller common.Address) bool {
	return caller == s.owner
}

// authorized reports whether the caller is the owner or holds the given role
// in the cluster registry. Callers must hold s.mu.
func (s *Strategy) authorized(ctx context.Context, caller common.Address, role protocol.Role) (bool, error) {
	if s.isOwner(caller) {
		return true, nil
	}

	ok, err := s.registry.HasRole(ctx, caller, role)
	if err != nil {
		return false, errors.Wrap(err, "failed to check registry role")
	}

	return ok, nil
}

// SetPause toggles one of the two independent direction gates. A closed gate
// only blocks future calls in that direction; the other direction and funds
// already settled are unaffected.
func (s *Strategy) SetPause(ctx context.Context, caller common.Address, direction Direction, paused bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok, err := s.authorized(ctx, caller, protocol.RolePauser)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPauserNotAuthorized
	}

	gate := &s.depositsPaused
	if direction == DirectionWithdrawal {
		gate = &s.withdrawalsPaused
	}

	before := gate.Swap(paused)

	s.logger.
		WithField("direction", string(direction)).
		WithField("paused", paused).
		Info("pause gate toggled")
	s.emit(ctx, Event{Kind: EventPauseToggled, Direction: direction, Before: before, After: paused})

	return nil
}

// CooldownAssets forwards an asset-denominated cooldown request to the pool.
// Purely a permissioned pass-through, no local state changes.
func (s *Strategy) CooldownAssets(ctx context.Context, caller common.Address, amount *big.Int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok, err := s.authorized(ctx, caller, protocol.RoleCooldownAdmin)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCooldownNotAuthorized
	}

	return errors.Wrap(s.pool.CooldownAssets(ctx, amount), "failed to request asset cooldown")
}

// CooldownShares forwards a share-denominated cooldown request to the pool.
func (s *Strategy) CooldownShares(ctx context.Context, caller common.Address, shares *big.Int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok, err := s.authorized(ctx, caller, protocol.RoleCooldownAdmin)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCooldownNotAuthorized
	}

	return errors.Wrap(s.pool.CooldownShares(ctx, shares), "failed to request share cooldown")
}

// SetDepositThreshold updates the minimum held balance that triggers a batch
// commit. Takes effect on the next deposit call, no retroactive effect.
func (s *Strategy) SetDepositThreshold(ctx context.Context, caller common.Address, amount *big.Int) error {
	if !s.isOwner(caller) {
		return ErrNotOwner
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.threshold = new(big.Int).Set(amount)

	s.logger.WithField("threshold", amount.String()).Info("deposit threshold updated")
	s.emit(ctx, Event{Kind: EventThresholdUpdated, Amount: new(big.Int).Set(amount)})

	return nil
}

// SetCluster replaces the authorization registry. The registry must stay
// non-nil once set.
func (s *Strategy) SetCluster(ctx context.Context, caller common.Address, registry protocol.ClusterRegistry) error {
	if !s.isOwner(caller) {
		return ErrNotOwner
	}
	if registry == nil {
		return ErrNilClusterRegistry
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.registry = registry

	s.logger.Info("cluster registry updated")
	s.emit(ctx, Event{Kind: EventClusterUpdated})

	return nil
}

// RescueNative sweeps the custody account's native balance to the recipient.
func (s *Strategy) RescueNative(ctx context.Context, caller, to common.Address) error {
	if !s.isOwner(caller) {
		return ErrNotOwner
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.rescuer.RescueNative(ctx, to); err != nil {
		return errors.Wrap(ErrTransferFailed, err.Error())
	}

	return nil
}
