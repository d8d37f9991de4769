package vault

import (
	"github.com/hyle-team/staking-strategy-svc/cmd/helpers/vault/get"
	"github.com/hyle-team/staking-strategy-svc/cmd/helpers/vault/set"
	"github.com/spf13/cobra"
)

func init() {
	registerVaultCommands(Cmd)
}

var Cmd = &cobra.Command{
	Use:   "vault",
	Short: "Command for running Vault operations",
}

func registerVaultCommands(cmd *cobra.Command) {
	cmd.AddCommand(set.Cmd, get.Cmd)
}
