package config

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/hyle-team/staking-strategy-svc/internal/protocol/evm"
	"github.com/pkg/errors"
	"gitlab.com/distributed_lab/figure/v3"
	"gitlab.com/distributed_lab/kit/comfig"
	"gitlab.com/distributed_lab/kit/kv"
)

type Strategier interface {
	StrategyConfig() StrategyConfig
}

type StrategyConfig struct {
	Name        string
	Description string

	Chain evm.Chain
	Owner common.Address

	DepositThreshold *big.Int

	// OperatorKey may stay nil in config; the service then loads it from
	// the secrets storage.
	OperatorKey *ecdsa.PrivateKey
}

type strategier struct {
	once   comfig.Once
	getter kv.Getter
}

func NewStrategier(getter kv.Getter) Strategier {
	return &strategier{getter: getter}
}

func (s *strategier) StrategyConfig() StrategyConfig {
	return s.once.Do(func() interface{} {
		var disk struct {
			Name        string `fig:"name,required"`
			Description string `fig:"description"`

			Rpc             *ethclient.Client `fig:"rpc,required"`
			StakingPool     common.Address    `fig:"staking_pool,required"`
			WrapAdapter     common.Address    `fig:"wrap_adapter,required"`
			HeldAsset       common.Address    `fig:"held_asset,required"`
			ClusterRegistry common.Address    `fig:"cluster_registry,required"`
			Confirmations   uint64            `fig:"confirmations"`

			Owner            common.Address    `fig:"owner,required"`
			DepositThreshold string            `fig:"deposit_threshold"`
			OperatorKey      *ecdsa.PrivateKey `fig:"operator_key"`
		}

		if err := figure.
			Out(&disk).
			From(kv.MustGetStringMap(s.getter, "strategy")).
			With(figure.BaseHooks, figure.EthereumHooks).
			Please(); err != nil {
			panic(errors.Wrap(err, "failed to figure out strategy config"))
		}

		if err := validation.Validate(disk.DepositThreshold, is.Digit); err != nil {
			panic(errors.Wrap(err, "invalid deposit threshold"))
		}
		threshold := new(big.Int)
		if disk.DepositThreshold != "" {
			// base-10 digits only, already validated
			threshold.SetString(disk.DepositThreshold, 10)
		}

		chain := evm.Chain{
			Rpc:             disk.Rpc,
			StakingPool:     disk.StakingPool,
			WrapAdapter:     disk.WrapAdapter,
			HeldAsset:       disk.HeldAsset,
			ClusterRegistry: disk.ClusterRegistry,
			Confirmations:   disk.Confirmations,
		}
		if err := chain.ValidateE(); err != nil {
			panic(errors.Wrap(err, "invalid strategy chain config"))
		}

		return StrategyConfig{
			Name:             disk.Name,
			Description:      disk.Description,
			Chain:            chain,
			Owner:            disk.Owner,
			DepositThreshold: threshold,
			OperatorKey:      disk.OperatorKey,
		}
	}).(StrategyConfig)
}
