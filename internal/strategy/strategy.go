package strategy

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hyle-team/staking-strategy-svc/internal/protocol"
	"github.com/pkg/errors"
	"gitlab.com/distributed_lab/logan/v3"
	"go.uber.org/atomic"
)

// Direction selects one of the two independent pause gates.
type Direction string

const (
	DirectionDeposit    Direction = "deposit"
	DirectionWithdrawal Direction = "withdrawal"
)

// Strategy is the custody adapter between a vault aggregator and an external
// yield-bearing staking pool with a delayed-withdrawal redemption model.
//
// Incoming deposits accumulate as held balance until the deposit threshold is
// reached, then the full held balance is committed into the pool. Withdrawals
// are served from held balance first and from the pool second, respecting the
// pool's redemption mode. Held and pool balances are always read live from
// the collaborators; the strategy keeps no balance counters of its own.
type Strategy struct {
	name        string
	description string

	// self is the custody account whose balances the collaborators report.
	self  common.Address
	owner common.Address

	pool    protocol.StakingPool
	adapter protocol.WrapAdapter
	held    protocol.HeldAsset
	rescuer protocol.NativeRescuer

	// mu serializes all mutating operations; each runs to completion with
	// no interleaving, matching transaction semantics of the collaborators.
	mu        sync.Mutex
	threshold *big.Int
	registry  protocol.ClusterRegistry

	depositsPaused    atomic.Bool
	withdrawalsPaused atomic.Bool

	events Sink
	logger *logan.Entry
}

type Opts struct {
	Name        string
	Description string

	Self  common.Address
	Owner common.Address

	Pool     protocol.StakingPool
	Adapter  protocol.WrapAdapter
	Held     protocol.HeldAsset
	Registry protocol.ClusterRegistry
	Rescuer  protocol.NativeRescuer

	// DepositThreshold may be nil, meaning every deposit commits immediately.
	DepositThreshold *big.Int

	Events Sink
	Logger *logan.Entry
}

// New validates that the collaborators agree on the underlying asset and
// assembles an unpaused strategy.
func New(ctx context.Context, opts Opts) (*Strategy, error) {
	if opts.Registry == nil {
		return nil, ErrNilClusterRegistry
	}

	poolAsset, err := opts.Pool.Asset(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get staking pool asset")
	}
	underlying, err := opts.Adapter.UnderlyingAsset(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get wrap adapter underlying asset")
	}
	if poolAsset != underlying {
		return nil, ErrAssetMismatch
	}

	threshold := new(big.Int)
	if opts.DepositThreshold != nil {
		threshold.Set(opts.DepositThreshold)
	}

	return &Strategy{
		name:        opts.Name,
		description: opts.Description,
		self:        opts.Self,
		owner:       opts.Owner,
		pool:        opts.Pool,
		adapter:     opts.Adapter,
		held:        opts.Held,
		rescuer:     opts.Rescuer,
		threshold:   threshold,
		registry:    opts.Registry,
		events:      opts.Events,
		logger:      opts.Logger,
	}, nil
}

func (s *Strategy) Name() string {
	return s.name
}

func (s *Strategy) Description() string {
	return s.description
}

func (s *Strategy) DepositsPaused() bool {
	return s.depositsPaused.Load()
}

func (s *Strategy) WithdrawalsPaused() bool {
	return s.withdrawalsPaused.Load()
}

func (s *Strategy) DepositThreshold() *big.Int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return new(big.Int).Set(s.threshold)
}

// cooldownMode reports whether the pool currently requires the cooldown
// redemption flow. Mode determination is centralized here for both the
// withdrawal path and the emergency exit.
func (s *Strategy) cooldownMode(ctx context.Context) (bool, error) {
	duration, err := s.pool.CooldownDuration(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to get pool cooldown duration")
	}

	return duration > 0, nil
}

// poolReadable returns the amount currently recoverable from the pool under
// the given mode: the pending cooldown amount in cooldown mode, the
// immediately withdrawable maximum otherwise.
func (s *Strategy) poolReadable(ctx context.Context, cooldownMode bool) (*big.Int, error) {
	if cooldownMode {
		cooldown, err := s.pool.Cooldown(ctx, s.self)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get pool cooldown entry")
		}

		return cooldown.Amount, nil
	}

	available, err := s.pool.MaxWithdraw(ctx, s.self)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get pool max withdrawable")
	}

	return available, nil
}

func (s *Strategy) heldBalance(ctx context.Context) (*big.Int, error) {
	balance, err := s.held.BalanceOf(ctx, s.self)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get held balance")
	}

	return balance, nil
}

// CooldownActive reports the pool's current redemption mode.
func (s *Strategy) CooldownActive(ctx context.Context) (bool, error) {
	return s.cooldownMode(ctx)
}

// QueuedBalance is the live held balance not yet committed to the pool.
func (s *Strategy) QueuedBalance(ctx context.Context) (*big.Int, error) {
	return s.heldBalance(ctx)
}

// CurrentBalance is the total value accounted to the aggregator: held balance
// plus whatever is recoverable from the pool under the current mode.
func (s *Strategy) CurrentBalance(ctx context.Context) (*big.Int, error) {
	held, err := s.heldBalance(ctx)
	if err != nil {
		return nil, err
	}

	cooldownMode, err := s.cooldownMode(ctx)
	if err != nil {
		return nil, err
	}
	readable, err := s.poolReadable(ctx, cooldownMode)
	if err != nil {
		return nil, err
	}

	return new(big.Int).Add(held, readable), nil
}

// Harvestable is the realizable pool-side value under the current mode.
func (s *Strategy) Harvestable(ctx context.Context) (*big.Int, error) {
	cooldownMode, err := s.cooldownMode(ctx)
	if err != nil {
		return nil, err
	}

	return s.poolReadable(ctx, cooldownMode)
}

// PendingCooldown reads the live cooldown ledger entry for the strategy.
func (s *Strategy) PendingCooldown(ctx context.Context) (protocol.Cooldown, error) {
	cooldown, err := s.pool.Cooldown(ctx, s.self)
	if err != nil {
		return protocol.Cooldown{}, errors.Wrap(err, "failed to get pool cooldown entry")
	}

	return cooldown, nil
}

// ImmediateWithdrawable reads the live immediate-mode withdrawable maximum.
func (s *Strategy) ImmediateWithdrawable(ctx context.Context) (*big.Int, error) {
	available, err := s.pool.MaxWithdraw(ctx, s.self)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get pool max withdrawable")
	}

	return available, nil
}
