package protocol

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Cooldown is a single holder's entry in the staking pool cooldown ledger.
// The pool overwrites the entry on every new cooldown request rather than
// accumulating, so Amount always reflects the full pending unstake.
type Cooldown struct {
	MaturesAt time.Time
	Amount    *big.Int
}

// Matured reports whether the cooled-down amount is already claimable.
func (c Cooldown) Matured(now time.Time) bool {
	return !now.Before(c.MaturesAt)
}

// StakingPool is the external yield-bearing position the strategy commits
// funds into. A pool with a zero cooldown duration redeems immediately via
// Withdraw; a non-zero duration requires CooldownAssets/CooldownShares
// followed by Unstake once the delay has passed.
type StakingPool interface {
	// Asset returns the address of the token the pool accepts and pays out.
	Asset(ctx context.Context) (common.Address, error)

	CooldownDuration(ctx context.Context) (time.Duration, error)
	Cooldown(ctx context.Context, holder common.Address) (Cooldown, error)
	MaxWithdraw(ctx context.Context, holder common.Address) (*big.Int, error)

	Deposit(ctx context.Context, amount *big.Int) error
	Withdraw(ctx context.Context, amount *big.Int) error
	CooldownAssets(ctx context.Context, amount *big.Int) error
	CooldownShares(ctx context.Context, shares *big.Int) error
	Unstake(ctx context.Context) error
}

// WrapAdapter converts between the held (wrapped) asset and the underlying
// asset the staking pool accepts. Conversions are 1:1.
type WrapAdapter interface {
	Wrap(ctx context.Context, amount *big.Int) error
	Unwrap(ctx context.Context, amount *big.Int) error
	UnderlyingAsset(ctx context.Context) (common.Address, error)
}

// HeldAsset is the ledger of the wrapped base asset the strategy custodies
// directly. Queued balance is always read live from here, never cached.
type HeldAsset interface {
	Address() common.Address
	BalanceOf(ctx context.Context, holder common.Address) (*big.Int, error)
	Transfer(ctx context.Context, to common.Address, amount *big.Int) error
}

// ClusterRegistry is the external authorization oracle.
type ClusterRegistry interface {
	HasRole(ctx context.Context, account common.Address, role Role) (bool, error)
}

// NativeRescuer sweeps the custody account's native balance to a recipient.
type NativeRescuer interface {
	RescueNative(ctx context.Context, to common.Address) error
}
