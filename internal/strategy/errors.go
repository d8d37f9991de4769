package strategy

import "github.com/pkg/errors"

var (
	ErrDepositsPaused    = errors.New("deposits are paused")
	ErrWithdrawalsPaused = errors.New("withdrawals are paused")
	ErrInsufficientFunds = errors.New("held and poolable balance do not cover the requested amount")

	ErrNotOwner              = errors.New("caller is not the strategy owner")
	ErrPauserNotAuthorized   = errors.New("caller is neither the owner nor a pauser")
	ErrCooldownNotAuthorized = errors.New("caller is neither the owner nor a cooldown admin")

	ErrAssetMismatch      = errors.New("wrap adapter underlying asset differs from the staking pool asset")
	ErrNilClusterRegistry = errors.New("cluster registry is not set")
	ErrTransferFailed     = errors.New("native transfer failed")
)
