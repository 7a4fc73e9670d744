package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/sushichan044/docfill"
	"github.com/sushichan044/docfill/internal/xdg"
)

var (
	ErrConfigMissing = errors.New("config file not found")
	ErrConfigIsDir   = errors.New("config path is a directory")
)

// DefaultConfigYAML is written by "docfill init".
//
//go:embed default.yml
var DefaultConfigYAML []byte

// Config represents configuration file structure.
type Config struct {
	Syntax    string        `yaml:"syntax"`
	TabWidth  int           `yaml:"tab_width"`
	Unindent  *bool         `yaml:"unindent"`
	Fragments yaml.MapSlice `yaml:"fragments"` // Ordered as written in the file
	FilePath  string        `yaml:"-"`         // INTERNAL: path of the loaded config file
}

const (
	appName        = "docfill"
	configDirEnv   = "DOCFILL_CONFIG_DIR"
	configFileName = "config.yml"
)

// ProjectFileName is the config file looked up in the working directory.
const ProjectFileName = ".docfill.yml"

// ResolvePath returns the config path to load.
//
// Lookup order: explicit path, $DOCFILL_CONFIG_DIR/config.yml,
// <workDir>/.docfill.yml, $XDG_CONFIG_HOME/docfill/config.yml.
// Only the explicit path and the env directory are authoritative: when they
// are set, the file must exist there.
func ResolvePath(explicit, workDir string) (string, error) {
	if explicit != "" {
		return existingFile(filepath.Clean(explicit))
	}
	if dir := os.Getenv(configDirEnv); dir != "" {
		return existingFile(filepath.Join(filepath.Clean(dir), configFileName))
	}

	if workDir != "" {
		path := filepath.Join(filepath.Clean(workDir), ProjectFileName)
		if found, err := existingFile(path); err == nil {
			return found, nil
		} else if !errors.Is(err, ErrConfigMissing) {
			return "", err
		}
	}

	cfgDir, err := xdg.AppConfigDir(appName)
	if err != nil {
		return "", err
	}
	return existingFile(filepath.Join(cfgDir, configFileName))
}

func existingFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrConfigMissing, path)
		}
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrConfigIsDir, path)
	}
	return path, nil
}

// Load reads and validates config from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.FilePath = filepath.Clean(path)

	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes and validates config from YAML.
func Parse(data []byte) (*Config, error) {
	cfg, err := decode(data)
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate ensures config follows the schema.
func (c *Config) Validate() error {
	issues := ConfigSchema.Validate(c)
	if len(issues) == 0 {
		return nil
	}

	errs := make([]error, 0, len(issues))
	for _, issue := range issues {
		errs = append(errs, newValidationIssueError(issue))
	}
	return errors.Join(errs...)
}

// Dictionary returns the configured fragments in file order.
// Call it on a validated Config; non-string entries are skipped.
func (c *Config) Dictionary() *docfill.Dictionary {
	d := docfill.NewDictionary()
	for _, item := range c.Fragments {
		name, nameOK := item.Key.(string)
		text, textOK := item.Value.(string)
		if !nameOK || !textOK {
			continue
		}
		d.Set(name, text)
	}
	return d
}

// Options converts config settings into fill options.
func (c *Config) Options() ([]docfill.Option, error) {
	syntax, err := docfill.ParseSyntax(c.Syntax)
	if err != nil {
		return nil, err
	}

	opts := []docfill.Option{docfill.WithSyntax(syntax)}
	if c.TabWidth > 0 {
		opts = append(opts, docfill.WithTabWidth(c.TabWidth))
	}
	if c.Unindent != nil {
		opts = append(opts, docfill.WithUnindent(*c.Unindent))
	}
	return opts, nil
}

// NewFiller builds a Filler from the configured fragments and options.
func (c *Config) NewFiller() (*docfill.Filler, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return docfill.NewFiller(c.Dictionary(), opts...), nil
}
