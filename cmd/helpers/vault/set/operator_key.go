package set

import (
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/hyle-team/staking-strategy-svc/internal/secrets/vault"
	vaultcfg "github.com/hyle-team/staking-strategy-svc/internal/secrets/vault/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var operatorKeyCmd = &cobra.Command{
	Use:   "operator-key [hex-encoded-key]",
	Short: "Save the operator account key to the vault",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := crypto.HexToECDSA(args[0])
		if err != nil {
			return errors.Wrap(err, "failed to parse operator key")
		}

		storage := vault.NewStorage(vaultcfg.NewVaulter().VaultClient())
		if err := storage.SaveOperatorKey(key); err != nil {
			return errors.Wrap(err, "failed to save operator key")
		}

		return nil
	},
}
