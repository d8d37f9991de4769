package evm

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

func (c *Client) Wrap(ctx context.Context, amount *big.Int) error {
	return c.transact(ctx, c.wrapper, "wrap", c.operator, c.operator, amount)
}

func (c *Client) Unwrap(ctx context.Context, amount *big.Int) error {
	return c.transact(ctx, c.wrapper, "unwrap", c.operator, amount)
}

func (c *Client) UnderlyingAsset(ctx context.Context) (common.Address, error) {
	out, err := c.call(ctx, c.wrapper, "underlyingAsset")
	if err != nil {
		return common.Address{}, err
	}

	underlying, ok := out[0].(common.Address)
	if !ok {
		return common.Address{}, errors.New("unexpected underlying asset output type")
	}

	return underlying, nil
}
