// Package config loads shell settings from a TOML or YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds shell settings; zero fields take defaults.
type Config struct {
	Prompt     string                 `toml:"prompt" yaml:"prompt"`
	Columns    uint                   `toml:"columns" yaml:"columns"`
	CellFormat string                 `toml:"cell_format" yaml:"cell_format"`
	Color      string                 `toml:"color" yaml:"color"`
	MemLimit   uint                   `toml:"mem_limit" yaml:"mem_limit"`
	Dir        string                 `toml:"dir" yaml:"dir"`
	Vars       map[string]interface{} `toml:"vars" yaml:"vars"`

	path string
}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

const (
	DefaultPrompt   = "fmod> "
	DefaultColumns  = 16
	MaxColumns      = 64
	DefaultMemLimit = 1 << 30
)

// DefaultNames are the file names Find looks for, in order.
var DefaultNames = []string{"fmod.toml", "fmod.yaml", "fmod.yml"}

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Find returns the first of DefaultNames present in dir, or "" if none are.
func Find(dir string) string {
	for _, name := range DefaultNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// Load reads path as YAML if it ends in .yaml or .yml, or as TOML otherwise,
// then applies defaults and validates the result.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(content, formatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	cfg.path = path
	return cfg, nil
}

// Format is a configuration file syntax.
type Format uint8

const (
	TOML Format = iota
	YAML
)

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "toml"
}

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return TOML
}

// Parse decodes content in the given format, then applies defaults and
// validates the result.
func Parse(content []byte, format Format) (*Config, error) {
	var cfg Config
	switch format {
	case YAML:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse yaml config: %w", err)
		}
	default:
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse toml config: %w", err)
		}
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Path returns the file the configuration was loaded from, if any.
func (cfg *Config) Path() string { return cfg.path }

func (cfg *Config) applyDefaults() {
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	if cfg.Columns == 0 {
		cfg.Columns = DefaultColumns
	}
	if cfg.CellFormat == "" {
		cfg.CellFormat = "hex"
	}
	if cfg.Color == "" {
		cfg.Color = ColorAuto
	}
	if cfg.MemLimit == 0 {
		cfg.MemLimit = DefaultMemLimit
	}
}

// ErrInvalid is wrapped by every Validate error.
var ErrInvalid = errors.New("invalid config")

// Validate checks field ranges and enumerations.
func (cfg *Config) Validate() error {
	if cfg.Columns < 1 || cfg.Columns > MaxColumns {
		return fmt.Errorf("%w: columns must be within 1..%v, got %v", ErrInvalid, MaxColumns, cfg.Columns)
	}
	switch cfg.CellFormat {
	case "hex", "dec":
	default:
		return fmt.Errorf("%w: cell_format must be hex or dec, got %q", ErrInvalid, cfg.CellFormat)
	}
	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color must be auto, always, or never, got %q", ErrInvalid, cfg.Color)
	}
	for name, v := range cfg.Vars {
		switch v.(type) {
		case string, int, int64, uint64:
		default:
			return fmt.Errorf("%w: vars.%v must be a string or an integer, got %T", ErrInvalid, name, v)
		}
	}
	return nil
}

// Assignment is a "name=value" variable preset.
type Assignment struct {
	Name  string
	Value string
}

func (a Assignment) String() string { return a.Name + "=" + a.Value }

// Assignments returns the vars table as presets, sorted by name.
func (cfg *Config) Assignments() []Assignment {
	as := make([]Assignment, 0, len(cfg.Vars))
	for name, v := range cfg.Vars {
		as = append(as, Assignment{name, fmt.Sprint(v)})
	}
	sort.Slice(as, func(i, j int) bool { return as[i].Name < as[j].Name })
	return as
}

// ParseAssignment splits a "name=value" string.
func ParseAssignment(s string) (Assignment, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return Assignment{}, fmt.Errorf("invalid assignment %q, expected name=value", s)
	}
	return Assignment{name, value}, nil
}
