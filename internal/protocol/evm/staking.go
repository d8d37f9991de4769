package evm

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hyle-team/staking-strategy-svc/internal/protocol"
	"github.com/pkg/errors"
)

func (c *Client) Asset(ctx context.Context) (common.Address, error) {
	out, err := c.call(ctx, c.staking, "asset")
	if err != nil {
		return common.Address{}, err
	}

	asset, ok := out[0].(common.Address)
	if !ok {
		return common.Address{}, errors.New("unexpected asset output type")
	}

	return asset, nil
}

func (c *Client) CooldownDuration(ctx context.Context) (time.Duration, error) {
	out, err := c.call(ctx, c.staking, "cooldownDuration")
	if err != nil {
		return 0, err
	}

	seconds, ok := out[0].(*big.Int)
	if !ok {
		return 0, errors.New("unexpected cooldown duration output type")
	}

	return time.Duration(seconds.Int64()) * time.Second, nil
}

func (c *Client) Cooldown(ctx context.Context, holder common.Address) (protocol.Cooldown, error) {
	out, err := c.call(ctx, c.staking, "cooldowns", holder)
	if err != nil {
		return protocol.Cooldown{}, err
	}

	maturity, ok := out[0].(*big.Int)
	if !ok {
		return protocol.Cooldown{}, errors.New("unexpected cooldown end output type")
	}
	amount, ok := out[1].(*big.Int)
	if !ok {
		return protocol.Cooldown{}, errors.New("unexpected cooldown amount output type")
	}

	return protocol.Cooldown{
		MaturesAt: time.Unix(maturity.Int64(), 0),
		Amount:    amount,
	}, nil
}

func (c *Client) MaxWithdraw(ctx context.Context, holder common.Address) (*big.Int, error) {
	out, err := c.call(ctx, c.staking, "maxWithdraw", holder)
	if err != nil {
		return nil, err
	}

	available, ok := out[0].(*big.Int)
	if !ok {
		return nil, errors.New("unexpected max withdraw output type")
	}

	return available, nil
}

func (c *Client) Deposit(ctx context.Context, amount *big.Int) error {
	return c.transact(ctx, c.staking, "deposit", amount, c.operator)
}

func (c *Client) Withdraw(ctx context.Context, amount *big.Int) error {
	return c.transact(ctx, c.staking, "withdraw", amount, c.operator, c.operator)
}

func (c *Client) CooldownAssets(ctx context.Context, amount *big.Int) error {
	return c.transact(ctx, c.staking, "cooldownAssets", amount)
}

func (c *Client) CooldownShares(ctx context.Context, shares *big.Int) error {
	return c.transact(ctx, c.staking, "cooldownShares", shares)
}

func (c *Client) Unstake(ctx context.Context) error {
	return c.transact(ctx, c.staking, "unstake", c.operator)
}
