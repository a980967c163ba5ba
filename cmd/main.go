package main

import (
	"os"

	cdkbridge "github.com/0xPolygon/cdk-bridge"
	"github.com/0xPolygon/cdk-bridge/common"
	"github.com/0xPolygon/cdk-bridge/config"
	"github.com/0xPolygon/cdk-bridge/log"
	"github.com/urfave/cli/v2"
)

const appName = "cdk-bridge"

var (
	configFileFlag = cli.StringSliceFlag{
		Name:     config.FlagCfg,
		Aliases:  []string{"c"},
		Usage:    "Configuration file(s)",
		Required: true,
	}
	componentsFlag = cli.StringSliceFlag{
		Name:     config.FlagComponents,
		Aliases:  []string{"co"},
		Usage:    "List of components to run",
		Required: false,
		Value:    cli.NewStringSlice(common.BRIDGE, common.RPC, common.EXIT_ROOT_SYNC),
	}
	saveConfigFlag = cli.StringFlag{
		Name:     config.FlagSaveConfigPath,
		Aliases:  []string{"s"},
		Usage:    "Save final configuration into to the indicated path (name: " + config.SaveConfigFileName + ")",
		Required: false,
	}
	minConfigFlag = cli.BoolFlag{
		Name:     config.FlagMinConfig,
		Usage:    "Only print the variables that must be defined",
		Required: false,
	}
	schemaFlag = cli.BoolFlag{
		Name:     config.FlagSchema,
		Usage:    "Print the JSON schema of the configuration instead of the default values",
		Required: false,
	}
)

func main() {
	app := cli.NewApp()
	app.Name = appName
	app.Version = cdkbridge.Version
	app.Commands = []*cli.Command{
		{
			Name:    "version",
			Aliases: []string{},
			Usage:   "Application version and build",
			Action:  versionCmd,
		},
		{
			Name:    "run",
			Aliases: []string{},
			Usage:   "Run the bridge node",
			Action:  start,
			Flags:   []cli.Flag{&configFileFlag, &componentsFlag, &saveConfigFlag},
		},
		{
			Name:    "config",
			Aliases: []string{},
			Usage:   "Print the default configuration",
			Action:  configCmd,
			Flags:   []cli.Flag{&minConfigFlag, &schemaFlag},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
		os.Exit(1)
	}
}
