package run

import (
	"context"
	"crypto/ecdsa"
	"os/signal"
	"syscall"

	"github.com/hyle-team/staking-strategy-svc/cmd/utils"
	"github.com/hyle-team/staking-strategy-svc/internal/api"
	"github.com/hyle-team/staking-strategy-svc/internal/config"
	"github.com/hyle-team/staking-strategy-svc/internal/db"
	pg "github.com/hyle-team/staking-strategy-svc/internal/db/postgres"
	"github.com/hyle-team/staking-strategy-svc/internal/protocol/evm"
	"github.com/hyle-team/staking-strategy-svc/internal/secrets/vault"
	vaultcfg "github.com/hyle-team/staking-strategy-svc/internal/secrets/vault/config"
	"github.com/hyle-team/staking-strategy-svc/internal/strategy"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Runs the strategy with its HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := utils.ConfigFromFlags(cmd)
		if err != nil {
			return errors.Wrap(err, "failed to get config from flags")
		}

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer cancel()

		logger := cfg.Log()
		strategyCfg := cfg.StrategyConfig()

		operatorKey, err := operatorKey(strategyCfg)
		if err != nil {
			return errors.Wrap(err, "failed to obtain operator key")
		}

		chainClient, err := evm.NewClient(ctx, strategyCfg.Chain, operatorKey, logger.WithField("component", "evm_client"))
		if err != nil {
			return errors.Wrap(err, "failed to create chain client")
		}

		movements := pg.NewMovementsQ(cfg.DB())

		strat, err := strategy.New(ctx, strategy.Opts{
			Name:             strategyCfg.Name,
			Description:      strategyCfg.Description,
			Self:             chainClient.Operator(),
			Owner:            strategyCfg.Owner,
			Pool:             chainClient,
			Adapter:          chainClient,
			Held:             chainClient,
			Registry:         chainClient,
			Rescuer:          chainClient,
			DepositThreshold: strategyCfg.DepositThreshold,
			Events:           db.NewJournalSink(movements),
			Logger:           logger.WithField("component", "strategy"),
		})
		if err != nil {
			return errors.Wrap(err, "failed to create strategy")
		}

		srv := api.NewServer(
			cfg.HttpListener(),
			strat,
			movements,
			logger.WithField("component", "api_server"),
		)

		return srv.Run(ctx)
	},
}

func operatorKey(cfg config.StrategyConfig) (*ecdsa.PrivateKey, error) {
	if cfg.OperatorKey != nil {
		return cfg.OperatorKey, nil
	}

	storage := vault.NewStorage(vaultcfg.NewVaulter().VaultClient())

	return storage.GetOperatorKey()
}
