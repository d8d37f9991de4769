package evm

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
)

const DefaultConfirmations = 2

// Chain carries the network handle and the collaborator contract addresses.
type Chain struct {
	Rpc             *ethclient.Client `fig:"rpc,required"`
	StakingPool     common.Address    `fig:"staking_pool,required"`
	WrapAdapter     common.Address    `fig:"wrap_adapter,required"`
	HeldAsset       common.Address    `fig:"held_asset,required"`
	ClusterRegistry common.Address    `fig:"cluster_registry,required"`
	Confirmations   uint64            `fig:"confirmations"`
}

func (c *Chain) ValidateE() error {
	zero := common.Address{}
	for name, addr := range map[string]common.Address{
		"staking_pool":     c.StakingPool,
		"wrap_adapter":     c.WrapAdapter,
		"held_asset":       c.HeldAsset,
		"cluster_registry": c.ClusterRegistry,
	} {
		if addr == zero {
			return errors.Errorf("%s address is required", name)
		}
	}

	if c.Confirmations == 0 {
		c.Confirmations = DefaultConfirmations
	}

	return nil
}
