package helpers

import (
	"github.com/hyle-team/staking-strategy-svc/cmd/helpers/parse"
	"github.com/hyle-team/staking-strategy-svc/cmd/helpers/vault"
	"github.com/spf13/cobra"
)

func init() {
	registerHelpersCommands(Cmd)
}

var Cmd = &cobra.Command{
	Use:   "helpers",
	Short: "Command for running helper operations",
}

func registerHelpersCommands(cmd *cobra.Command) {
	cmd.AddCommand(parse.Cmd, vault.Cmd)
}
