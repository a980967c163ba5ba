package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/0xPolygon/cdk-bridge/bridge"
	"github.com/0xPolygon/cdk-bridge/common"
	"github.com/0xPolygon/cdk-bridge/exitrootsync"
	"github.com/0xPolygon/cdk-bridge/log"
	"github.com/0xPolygon/cdk-bridge/rollupexittree"
	"github.com/0xPolygon/cdk-bridge/vault"
	jRPC "github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/invopop/jsonschema"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

const (
	// FlagCfg is the flag for cfg.
	FlagCfg = "cfg"
	// FlagComponents is the flag for components.
	FlagComponents = "components"
	// FlagSaveConfigPath is the flag to save the final configuration file
	FlagSaveConfigPath = "save-config-path"
	// FlagMinConfig prints only the vars that have no default value
	FlagMinConfig = "min"
	// FlagSchema prints the JSON schema of the configuration
	FlagSchema = "schema"

	EnvVarPrefix       = "CDKBRIDGE"
	ConfigType         = "toml"
	SaveConfigFileName = "cdk_bridge_config.toml"

	DefaultCreationFilePermissions = os.FileMode(0600)
)

/*
Config represents the configuration of the bridge node
The file is [TOML format]

[TOML format]: https://en.wikipedia.org/wiki/TOML
*/
type Config struct {
	// Configure Log level for all the services, allow also to store the logs in a file
	Log log.Config
	// Common Config that affects all the services
	Common common.Config
	// Bridge is the config of the bridge of this network
	Bridge bridge.Config
	// Vault holds the tokens native to this network and the initial balances
	Vault vault.Config
	// RollupExitTree is the config of the tree that aggregates the local exit roots of the rollups.
	// Only used by the node running the rollup-exit-tree component
	RollupExitTree rollupexittree.Config
	// ExitRootSync is the config of the jobs that move exit roots between nodes
	ExitRootSync exitrootsync.Config
	// RPC is the config for the RPC server. The endpoints trust the depositor and updater identities sent
	// in the params, so Host must only be reachable by the operator's nodes
	RPC jRPC.Config
}

// Load loads the configuration
func Load(ctx *cli.Context) (*Config, error) {
	configFilePath := ctx.StringSlice(FlagCfg)
	filesData, err := readFiles(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading files:  Err:%w", err)
	}
	saveConfigPath := ctx.String(FlagSaveConfigPath)
	return LoadFile(filesData, saveConfigPath)
}

func readFiles(files []string) ([]FileData, error) {
	result := make([]FileData, 0, len(files))
	for _, file := range files {
		fileContent, err := readFileToString(file)
		if err != nil {
			return nil, fmt.Errorf("error reading file content: %s. Err:%w", file, err)
		}
		fileExtension := getFileExtension(file)
		if fileExtension != ConfigType {
			fileContent, err = convertFileToToml(fileContent, fileExtension)
			if err != nil {
				return nil, fmt.Errorf("error converting file: %s from %s to TOML. Err:%w", file, fileExtension, err)
			}
		}
		result = append(result, FileData{Name: file, Content: fileContent})
	}
	return result, nil
}

func getFileExtension(fileName string) string {
	return fileName[strings.LastIndex(fileName, ".")+1:]
}

// LoadFile renders the defaults with files on top and decodes the result
func LoadFile(files []FileData, saveConfigPath string) (*Config, error) {
	fileData := make([]FileData, 0, len(files)+2) //nolint:mnd
	fileData = append(fileData, FileData{Name: "default_vars", Content: DefaultVars})
	fileData = append(fileData, FileData{Name: "default_values", Content: DefaultValues})
	fileData = append(fileData, files...)

	renderedCfg, err := NewRenderer(fileData, EnvVarPrefix).Render()
	if err != nil {
		return nil, err
	}
	if saveConfigPath != "" {
		fullPath := filepath.Join(saveConfigPath, SaveConfigFileName)
		err = os.WriteFile(fullPath, []byte(renderedCfg), DefaultCreationFilePermissions)
		if err != nil {
			err = fmt.Errorf("error writing config file: %s. Err: %w", fullPath, err)
			log.Error(err)
			return nil, err
		}
	}
	return LoadFileFromString(renderedCfg, ConfigType)
}

// LoadFileFromString decodes an already rendered config. Any key can be overridden with the env var
// CDKBRIDGE_<Section>_<Key>
func LoadFileFromString(configFileData string, configType string) (*Config, error) {
	cfg := &Config{}
	v := viper.New()
	v.SetConfigType(configType)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix(EnvVarPrefix)
	v.AutomaticEnv()
	if err := v.ReadConfig(bytes.NewBufferString(configFileData)); err != nil {
		return nil, err
	}
	decodeHooks := []viper.DecoderConfigOption{
		// this allows arrays to be decoded from env var separated by ",", example: MY_VAR="value1,value2,value3"
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(), mapstructure.StringToSliceHookFunc(","))),
	}
	if err := v.Unmarshal(cfg, decodeHooks...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfigToString returns the config as TOML
func SaveConfigToString(cfg Config) (string, error) {
	b, err := toml.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Schema returns the JSON schema of Config
func Schema() (string, error) {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
	}
	b, err := json.MarshalIndent(r.Reflect(&Config{}), "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
