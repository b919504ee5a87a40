package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/holdings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty working directory with an empty home
// below it, so that no real configuration file is found.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", filepath.Join(dir, "home"))
	t.Setenv("XDG_CONFIG_HOME", "")
	for _, v := range []string{"ETFA_DATA_DIR", "ETFA_IMPORT", "ETFA_ETFS", "ETFA_SORT_BY", "ETFA_WORKERS", "ETFA_VERBOSE"} {
		t.Setenv(v, "")
	}
	return dir
}

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, holdings.DefaultSchema(), cfg.Columns.Schema())
}

func TestLoad_TOML(t *testing.T) {
	dir := isolate(t)
	write(t, filepath.Join(dir, ".etf_analyzer.toml"), `
data_dir = "data"
function = "overlap"
sort_by = "count"
etfs = ["ivw", "IWF"]
workers = 3

[columns]
weight_col = "Weight (%)"
number_col = "#"
`)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ".etf_analyzer.toml", cfg.Path)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "overlap", cfg.Function)
	assert.Equal(t, "count", cfg.SortBy)
	assert.Equal(t, []string{"IVW", "IWF"}, cfg.ETFs)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "$", cfg.JSONRows, "defaults survive a partial file")

	schema := cfg.Columns.Schema()
	assert.Equal(t, "Weight (%)", schema.Weight)
	assert.Equal(t, "#", schema.Number)
	assert.Equal(t, holdings.DefaultSymbolColumn, schema.Symbol)
}

func TestLoad_SearchOrder(t *testing.T) {
	dir := isolate(t)
	xdg := filepath.Join(dir, "xdg")
	t.Setenv("XDG_CONFIG_HOME", xdg)

	write(t, filepath.Join(dir, "home", ".etf_analyzer.yaml"), "data_dir: home\n")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "home", cfg.DataDir)

	write(t, filepath.Join(xdg, "etf_analyzer", "config.toml"), `data_dir = "xdg"`)
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "xdg", cfg.DataDir)

	write(t, filepath.Join(dir, ".etf_analyzer.toml"), `data_dir = "cwd"`)
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "cwd", cfg.DataDir)
}

func TestLoad_ExplicitYAML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "etfa.yml")
	write(t, path, "import: snapshot.parquet\nforce: true\ncolumns:\n  symbol_col: Ticker\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "snapshot.parquet", cfg.Import)
	assert.True(t, cfg.Force)
	assert.Equal(t, "Ticker", cfg.Columns.Schema().Symbol)
}

func TestLoad_Env(t *testing.T) {
	dir := isolate(t)
	write(t, filepath.Join(dir, ".etf_analyzer.toml"), `data_dir = "file"`)
	t.Setenv("ETFA_DATA_DIR", "env")
	t.Setenv("ETFA_ETFS", "ivw, vtv,,")
	t.Setenv("ETFA_WORKERS", "2")
	t.Setenv("ETFA_VERBOSE", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "env", cfg.DataDir)
	assert.Equal(t, []string{"IVW", "VTV"}, cfg.ETFs)
	assert.Equal(t, 2, cfg.Workers)
	assert.True(t, cfg.Verbose)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	write(t, filepath.Join(dir, ".env"), "ETFA_SORT_BY=count\n")
	t.Cleanup(func() { os.Unsetenv("ETFA_SORT_BY") })
	os.Unsetenv("ETFA_SORT_BY")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "count", cfg.SortBy)
}

func TestLoad_Errors(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	write(t, filepath.Join(dir, "etfa.ini"), "data_dir=x")
	_, err = Load(filepath.Join(dir, "etfa.ini"))
	assert.ErrorContains(t, err, "unsupported extension")

	write(t, filepath.Join(dir, "bad.toml"), `sort_by = "weight"`)
	_, err = Load(filepath.Join(dir, "bad.toml"))
	assert.ErrorContains(t, err, "sort_by")

	t.Setenv("ETFA_WORKERS", "many")
	_, err = Load("")
	assert.ErrorContains(t, err, "ETFA_WORKERS")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"IVW", "IWF"}, SplitList(" ivw ,IWF"))
	assert.Nil(t, SplitList(""))
}
