package config

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/0xPolygon/cdk-bridge/log"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/valyala/fasttemplate"
)

const (
	startTag = "{{"
	endTag   = "}}"
	// rawMark flags the vars that were written without quotes, so they can be restored after going
	// through the TOML parser
	rawMark = ":raw"
)

var (
	ErrCycleVars                 = fmt.Errorf("cycle vars")
	ErrMissingVars               = fmt.Errorf("missing vars")
	ErrUnsupportedConfigFileType = fmt.Errorf("unsupported config file type")

	unquotedVarRegexp = regexp.MustCompile(`=\s*\{\{([^}:]+)\}\}`)
	markedVarRegexp   = regexp.MustCompile(`"\{\{([^}:]+)` + rawMark + `\}\}"`)
)

type FileData struct {
	Name    string
	Content string
}

// Renderer merges config files (later files win) and resolves the {{var}} references between values.
// A var can be overridden with the env var <prefix>_<var>, replacing dots by underscores
type Renderer struct {
	filesData []FileData
	envPrefix string
	lookupEnv func(key string) (string, bool)
}

func NewRenderer(filesData []FileData, envPrefix string) *Renderer {
	return &Renderer{
		filesData: filesData,
		envPrefix: envPrefix,
		lookupEnv: os.LookupEnv,
	}
}

func (r *Renderer) Render() (string, error) {
	merged, err := r.Merge()
	if err != nil {
		return "", fmt.Errorf("fail to merge files. Err: %w", err)
	}
	return r.Resolve(merged)
}

func (r *Renderer) Merge() (string, error) {
	k := koanf.New(".")
	for _, data := range r.filesData {
		if err := k.Load(rawbytes.Provider([]byte(markUnquotedVars(data.Content))), toml.Parser()); err != nil {
			log.Errorf("error loading file %s. Err: %v", data.Name, err)
			return "", fmt.Errorf("fail to load %s as toml. Err: %w", data.Name, err)
		}
	}
	marshaled, err := k.Marshal(toml.Parser())
	if err != nil {
		return "", fmt.Errorf("fail to marshal to toml. Err: %w", err)
	}
	return unmarkVars(string(marshaled)), nil
}

// Resolve replaces the vars by their values until none is left. Each step only uses values that are
// already resolved, so a step that changes nothing means that the remaining vars are undefined or
// depend on each other
func (r *Renderer) Resolve(data string) (string, error) {
	for {
		tags, err := templateTags(data)
		if err != nil {
			return data, err
		}
		if len(tags) == 0 {
			return data, nil
		}
		values, err := r.values(data)
		if err != nil {
			return data, err
		}
		rendered, err := r.execute(data, values)
		if err != nil {
			return data, err
		}
		if rendered != data {
			data = rendered
			continue
		}
		missing := []string{}
		for _, tag := range tags {
			if _, ok := values[tag]; !ok {
				missing = append(missing, tag)
			}
		}
		if len(missing) > 0 {
			return data, fmt.Errorf("missing vars: %v. Err: %w", missing, ErrMissingVars)
		}
		return data, fmt.Errorf("not resolved cycle vars: %v. Err: %w", tags, ErrCycleVars)
	}
}

func (r *Renderer) values(data string) (map[string]interface{}, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider([]byte(markUnquotedVars(data))), toml.Parser()); err != nil {
		return nil, fmt.Errorf("error parsing config while resolving vars. Err: %w", err)
	}
	return k.All(), nil
}

func (r *Renderer) execute(data string, values map[string]interface{}) (string, error) {
	tpl, err := fasttemplate.NewTemplate(data, startTag, endTag)
	if err != nil {
		return "", fmt.Errorf("fail to load template. Err: %w", err)
	}
	return tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if v, ok := r.lookupEnv(r.envKey(tag)); ok {
			return w.Write([]byte(v))
		}
		if v, ok := values[tag]; ok {
			value := fmt.Sprintf("%v", v)
			if !strings.Contains(value, startTag) {
				return w.Write([]byte(value))
			}
		}
		return w.Write([]byte(startTag + tag + endTag))
	}), nil
}

func (r *Renderer) envKey(tag string) string {
	return r.envPrefix + "_" + strings.ReplaceAll(tag, ".", "_")
}

func templateTags(data string) ([]string, error) {
	tpl, err := fasttemplate.NewTemplate(data, startTag, endTag)
	if err != nil {
		return nil, fmt.Errorf("fail to load template. Err: %w", err)
	}
	found := map[string]struct{}{}
	tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		found[tag] = struct{}{}
		return 0, nil
	})
	tags := make([]string, 0, len(found))
	for tag := range found {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags, nil
}

// markUnquotedVars turns A = {{B}} into A = "{{B:raw}}" which is valid TOML
func markUnquotedVars(data string) string {
	return unquotedVarRegexp.ReplaceAllString(data, `= "{{${1}`+rawMark+`}}"`)
}

func unmarkVars(data string) string {
	return markedVarRegexp.ReplaceAllString(data, `{{${1}}}`)
}

func readFileToString(filename string) (string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func convertFileToToml(fileData string, fileType string) (string, error) {
	switch strings.ToLower(fileType) {
	case "json":
		k := koanf.New(".")
		err := k.Load(rawbytes.Provider([]byte(fileData)), json.Parser())
		if err != nil {
			return fileData, fmt.Errorf("error loading json file. Err: %w", err)
		}
		tomlData, err := toml.Parser().Marshal(k.Raw())
		if err != nil {
			return fileData, fmt.Errorf("error converting json to toml. Err: %w", err)
		}
		return string(tomlData), nil
	case "yml", "yaml", "ini":
		return fileData, fmt.Errorf("cant convert from %s to TOML. Err: %w", fileType, ErrUnsupportedConfigFileType)
	default:
		log.Warnf("filetype %s unknown, assuming is a TOML file", fileType)
		return fileData, nil
	}
}
