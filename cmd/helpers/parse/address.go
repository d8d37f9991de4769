package parse

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var parseAddressCmd = &cobra.Command{
	Use:   "address [address]",
	Short: "Validate and checksum an EVM address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !common.IsHexAddress(args[0]) {
			return errors.New("invalid EVM address")
		}

		fmt.Println("Checksummed address:", common.HexToAddress(args[0]).Hex())

		return nil
	},
}
