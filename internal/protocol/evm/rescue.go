package evm

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

const nativeTransferGas = 21000

// RescueNative sweeps the operator account's native balance to the recipient,
// leaving just enough behind to cover the transfer gas.
func (c *Client) RescueNative(ctx context.Context, to common.Address) error {
	balance, err := c.chain.Rpc.BalanceAt(ctx, c.operator, nil)
	if err != nil {
		return errors.Wrap(err, "failed to get native balance")
	}
	gasPrice, err := c.chain.Rpc.SuggestGasPrice(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get gas price")
	}

	cost := new(big.Int).Mul(gasPrice, big.NewInt(nativeTransferGas))
	value := new(big.Int).Sub(balance, cost)
	if value.Sign() <= 0 {
		return ErrNothingToRescue
	}

	nonce, err := c.chain.Rpc.PendingNonceAt(ctx, c.operator)
	if err != nil {
		return errors.Wrap(err, "failed to get pending nonce")
	}

	tx := types.NewTransaction(nonce, to, value, nativeTransferGas, gasPrice, nil)
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainId), c.key)
	if err != nil {
		return errors.Wrap(err, "failed to sign rescue transaction")
	}

	if err = c.chain.Rpc.SendTransaction(ctx, signed); err != nil {
		return errors.Wrap(err, "failed to send rescue transaction")
	}

	c.logger.
		WithField("to", to.Hex()).
		WithField("value", value.String()).
		Info("native balance rescue submitted")

	return c.waitSettled(ctx, signed)
}
