package main

import "github.com/hyle-team/staking-strategy-svc/cmd"

func main() {
	cmd.Execute()
}
