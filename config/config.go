// Package config loads the settings of the etfa command: a TOML or YAML
// file, overridden by environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/etnz/holdings"
	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the default values of the command line parameters.
type Config struct {
	DataDir  string   `toml:"data_dir" yaml:"data_dir"`
	Import   string   `toml:"import" yaml:"import"`
	Function string   `toml:"function" yaml:"function"` // subcommand run when none is given
	Output   string   `toml:"output" yaml:"output"`
	SortBy   string   `toml:"sort_by" yaml:"sort_by"`
	ETFs     []string `toml:"etfs" yaml:"etfs"`
	Force    bool     `toml:"force" yaml:"force"`
	Verbose  bool     `toml:"verbose" yaml:"verbose"`
	Workers  int      `toml:"workers" yaml:"workers"` // 0 is the hardware parallelism
	JSONRows string   `toml:"json_rows" yaml:"json_rows"`
	Columns  Columns  `toml:"columns" yaml:"columns"`

	// Path is the file the configuration was read from, if any.
	Path string `toml:"-" yaml:"-"`
}

// Columns overrides the column names of the holdings extracts.
type Columns struct {
	Symbol string `toml:"symbol_col" yaml:"symbol_col"`
	Name   string `toml:"name_col" yaml:"name_col"`
	Weight string `toml:"weight_col" yaml:"weight_col"`
	Shares string `toml:"shares_col" yaml:"shares_col"`
	Number string `toml:"number_col" yaml:"number_col"`
}

// Schema returns the extract schema, defaults filled in.
func (c Columns) Schema() holdings.Schema {
	return holdings.Schema{
		Symbol: c.Symbol,
		Name:   c.Name,
		Weight: c.Weight,
		Shares: c.Shares,
		Number: c.Number,
	}.WithDefaults()
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Function: "summary",
		SortBy:   "symbol",
		JSONRows: "$",
	}
}

// Candidates returns the configuration files searched by Load, in order.
func Candidates() []string {
	var dirs []string
	dirs = append(dirs, ".etf_analyzer")
	configHome := os.Getenv("XDG_CONFIG_HOME")
	home, _ := os.UserHomeDir()
	if configHome == "" && home != "" {
		configHome = filepath.Join(home, ".config")
	}
	if configHome != "" {
		dirs = append(dirs, filepath.Join(configHome, "etf_analyzer", "config"))
	}
	if home != "" {
		dirs = append(dirs, filepath.Join(home, ".etf_analyzer"))
	}

	var paths []string
	for _, d := range dirs {
		paths = append(paths, d+".toml", d+".yaml", d+".yml")
	}
	return paths
}

// Find returns the first existing file of Candidates, or "".
func Find() string {
	for _, p := range Candidates() {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// Load reads the configuration at 'path', or the first of Candidates when
// 'path' is empty, then applies the ETFA_* environment variables. A .env
// file in the working directory is loaded first, without overriding the
// environment.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()
	if path == "" {
		path = Find()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := Decode(path, data, cfg); err != nil {
			return nil, err
		}
		cfg.Path = path
	}
	cfg.ETFs = SplitList(strings.Join(cfg.ETFs, ","))

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// Decode parses 'data' into 'cfg', the decoder is chosen by the extension
// of 'path'.
func Decode(path string, data []byte, cfg *Config) error {
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("config file %s: unsupported extension %q (use .toml or .yaml)", path, ext)
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("ETFA_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("ETFA_IMPORT"); v != "" {
		cfg.Import = v
	}
	if v := os.Getenv("ETFA_ETFS"); v != "" {
		cfg.ETFs = SplitList(v)
	}
	if v := os.Getenv("ETFA_SORT_BY"); v != "" {
		cfg.SortBy = v
	}
	if v := os.Getenv("ETFA_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ETFA_WORKERS: %w", err)
		}
		cfg.Workers = n
	}
	if v := os.Getenv("ETFA_VERBOSE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("ETFA_VERBOSE: %w", err)
		}
		cfg.Verbose = b
	}
	return nil
}

// Validate checks the values that can be checked without loading data.
func (c *Config) Validate() error {
	if _, err := holdings.ParseSortOrder(c.SortBy); err != nil {
		return fmt.Errorf("sort_by: %w", err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	for _, f := range c.ETFs {
		if err := holdings.ValidateFund(f); err != nil {
			return fmt.Errorf("etfs: %w", err)
		}
	}
	return nil
}

// SplitList splits a comma separated list of funds, upper-cased, dropping
// empty entries.
func SplitList(s string) []string {
	var list []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToUpper(strings.TrimSpace(f)); f != "" {
			list = append(list, f)
		}
	}
	return list
}
