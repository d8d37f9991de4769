package get

import (
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/hyle-team/staking-strategy-svc/internal/secrets/vault"
	vaultcfg "github.com/hyle-team/staking-strategy-svc/internal/secrets/vault/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var pubkeyCmd = &cobra.Command{
	Use:   "pubkey",
	Short: "Get the operator account address from the vault",
	RunE: func(cmd *cobra.Command, args []string) error {
		storage := vault.NewStorage(vaultcfg.NewVaulter().VaultClient())

		key, err := storage.GetOperatorKey()
		if err != nil {
			return errors.Wrap(err, "failed to get operator key from vault")
		}

		fmt.Println("Operator address:", crypto.PubkeyToAddress(key.PublicKey).Hex())

		return nil
	},
}
