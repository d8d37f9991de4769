package evm

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/hyle-team/staking-strategy-svc/internal/protocol/evm/contracts"
	"github.com/pkg/errors"
	"gitlab.com/distributed_lab/logan/v3"
)

var (
	ErrTxFailed          = errors.New("transaction execution reverted")
	ErrNothingToRescue   = errors.New("native balance does not cover the transfer cost")
	ErrTooFewBlocksAfter = errors.New("transaction is not yet confirmed")
)

const confirmationPollInterval = 3 * time.Second

// Client implements all collaborator interfaces of the strategy against live
// contracts on a single EVM chain, transacting from the operator account.
type Client struct {
	chain    Chain
	chainId  *big.Int
	operator common.Address
	key      *ecdsa.PrivateKey

	staking  *bind.BoundContract
	wrapper  *bind.BoundContract
	held     *bind.BoundContract
	registry *bind.BoundContract

	logger *logan.Entry
}

func NewClient(ctx context.Context, chain Chain, operatorKey *ecdsa.PrivateKey, logger *logan.Entry) (*Client, error) {
	chainId, err := chain.Rpc.ChainID(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get chain id")
	}

	client := &Client{
		chain:    chain,
		chainId:  chainId,
		operator: crypto.PubkeyToAddress(operatorKey.PublicKey),
		key:      operatorKey,
		logger:   logger,
	}

	for _, binding := range []struct {
		rawAbi  string
		address common.Address
		target  **bind.BoundContract
	}{
		{contracts.StakingPoolABI, chain.StakingPool, &client.staking},
		{contracts.WrapAdapterABI, chain.WrapAdapter, &client.wrapper},
		{contracts.ERC20ABI, chain.HeldAsset, &client.held},
		{contracts.ClusterRegistryABI, chain.ClusterRegistry, &client.registry},
	} {
		parsed, err := abi.JSON(strings.NewReader(binding.rawAbi))
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse contract ABI")
		}
		*binding.target = bind.NewBoundContract(binding.address, parsed, chain.Rpc, chain.Rpc, chain.Rpc)
	}

	return client, nil
}

// Operator is the custody account the strategy acts as.
func (c *Client) Operator() common.Address {
	return c.operator
}

func (c *Client) call(ctx context.Context, contract *bind.BoundContract, method string, args ...interface{}) ([]interface{}, error) {
	var out []interface{}
	if err := contract.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		return nil, errors.Wrapf(err, "failed to call %s", method)
	}

	return out, nil
}

func (c *Client) transact(ctx context.Context, contract *bind.BoundContract, method string, args ...interface{}) error {
	opts, err := bind.NewKeyedTransactorWithChainID(c.key, c.chainId)
	if err != nil {
		return errors.Wrap(err, "failed to create transactor")
	}
	opts.Context = ctx

	tx, err := contract.Transact(opts, method, args...)
	if err != nil {
		return errors.Wrapf(err, "failed to send %s transaction", method)
	}

	c.logger.
		WithField("method", method).
		WithField("tx", tx.Hash().Hex()).
		Debug("transaction submitted")

	return c.waitSettled(ctx, tx)
}

// waitSettled blocks until the transaction is mined, successful, and buried
// under the configured number of confirmations.
func (c *Client) waitSettled(ctx context.Context, tx *types.Transaction) error {
	receipt, err := bind.WaitMined(ctx, c.chain.Rpc, tx)
	if err != nil {
		return errors.Wrap(err, "failed to wait for transaction inclusion")
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return errors.Wrap(ErrTxFailed, tx.Hash().Hex())
	}

	for {
		confirmed, err := c.confirmed(ctx, receipt)
		if err != nil {
			return err
		}
		if confirmed {
			return nil
		}

		select {
		case <-ctx.Done():
			return errors.Wrap(ErrTooFewBlocksAfter, ctx.Err().Error())
		case <-time.After(confirmationPollInterval):
		}
	}
}

func (c *Client) confirmed(ctx context.Context, receipt *types.Receipt) (bool, error) {
	height, err := c.chain.Rpc.BlockNumber(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to get current block number")
	}

	return height >= receipt.BlockNumber.Uint64()+c.chain.Confirmations, nil
}
