package main

import (
	"os"
	"strings"

	"github.com/0xPolygon/cdk-bridge/config"
	"github.com/urfave/cli/v2"
)

func configCmd(cliCtx *cli.Context) error {
	if cliCtx.Bool(config.FlagSchema) {
		schema, err := config.Schema()
		if err != nil {
			return err
		}
		_, err = os.Stdout.WriteString(schema + "\n")
		return err
	}

	defaultConfig := strings.Builder{}
	defaultConfig.WriteString(config.DefaultMandatoryVars)
	if !cliCtx.Bool(config.FlagMinConfig) {
		defaultConfig.WriteString(config.DefaultVars)
		defaultConfig.WriteString(config.DefaultValues)
	}

	_, err := os.Stdout.WriteString(defaultConfig.String())
	return err
}
