package main

import (
	"os"

	cdkbridge "github.com/0xPolygon/cdk-bridge"
	"github.com/urfave/cli/v2"
)

func versionCmd(*cli.Context) error {
	cdkbridge.PrintVersion(os.Stdout)
	return nil
}
