package evm

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hyle-team/staking-strategy-svc/internal/protocol"
	"github.com/pkg/errors"
)

func (c *Client) Address() common.Address {
	return c.chain.HeldAsset
}

func (c *Client) BalanceOf(ctx context.Context, holder common.Address) (*big.Int, error) {
	out, err := c.call(ctx, c.held, "balanceOf", holder)
	if err != nil {
		return nil, err
	}

	balance, ok := out[0].(*big.Int)
	if !ok {
		return nil, errors.New("unexpected balance output type")
	}

	return balance, nil
}

func (c *Client) Transfer(ctx context.Context, to common.Address, amount *big.Int) error {
	return c.transact(ctx, c.held, "transfer", to, amount)
}

func (c *Client) HasRole(ctx context.Context, account common.Address, role protocol.Role) (bool, error) {
	out, err := c.call(ctx, c.registry, "hasRole", account, [32]byte(role))
	if err != nil {
		return false, err
	}

	ok, valid := out[0].(bool)
	if !valid {
		return false, errors.New("unexpected has role output type")
	}

	return ok, nil
}
