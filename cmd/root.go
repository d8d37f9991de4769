package cmd

import (
	"os"

	"github.com/hyle-team/staking-strategy-svc/cmd/helpers"
	"github.com/hyle-team/staking-strategy-svc/cmd/service"
	"github.com/spf13/cobra"
)

func Execute() {
	root := &cobra.Command{
		Use:   "staking-strategy-svc",
		Short: "Staking Strategy Service",
	}

	root.AddCommand(service.Cmd, helpers.Cmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
