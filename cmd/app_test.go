package cmd

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnown(t *testing.T) {
	for _, name := range []string{"summary", "list", "assets", "unique", "overlap", "mapping", "compare", "correlation", "exposure", "export", "topic", "help"} {
		assert.True(t, Known(name), name)
	}
	assert.False(t, Known("hello"))
}

func TestCompletion(t *testing.T) {
	c := Completion()
	require.Contains(t, c.Sub, "mapping")
	assert.Contains(t, c.Sub["mapping"].Flags, "chart")
	assert.Contains(t, c.Sub["mapping"].Flags, "sort")
	assert.Contains(t, c.Sub["export"].Flags, "o")
	assert.NotContains(t, c.Sub["unique"].Flags, "sort")
	assert.Contains(t, c.Flags, "etfs")
	assert.Contains(t, c.Flags, "weight-col")
	for _, name := range []string{"compare", "correlation", "exposure"} {
		assert.NotNil(t, c.Sub[name].Args, name)
	}
	assert.Nil(t, c.Sub["summary"].Args)
}

// etfaRun runs the etfa binary in 'dir' and returns its combined output and
// exit code.
func etfaRun(t *testing.T, etfa, dir string, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(etfa, args...)
	cmd.Dir = dir
	cmd.Env = isolatedEnv(dir)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	if exitErr, ok := err.(*exec.ExitError); ok {
		return out.String(), exitErr.ExitCode()
	}
	require.NoError(t, err)
	return out.String(), 0
}

func TestCLI(t *testing.T) {
	bin := t.TempDir()
	etfa := buildEtfa(t, bin)

	dir := t.TempDir()
	data := filepath.Join(dir, "data")
	require.NoError(t, os.MkdirAll(data, 0755))
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(data, name), []byte(content), 0644))
	}
	write("ivw-etf-holdings.csv", "No.,Symbol,Name,% Weight\n1,AAPL,Apple Inc,11.28%\n2,NVDA,NVIDIA Corp,5%\n")
	write("iwf-etf-holdings.csv", "No.,Symbol,Name,% Weight\n1,AAPL,Apple Inc,5.66%\n")

	tests := []struct {
		name string
		args []string
		code int
		want []string
	}{
		{"no source", []string{"list"}, 2, []string{"Error: either -d or -i must be specified"}},
		{"both sources", []string{"-d", "data", "-i", "x.parquet", "list"}, 2, []string{"mutually exclusive"}},
		{"bad sort", []string{"-d", "data", "assets", "-sort", "weight"}, 2, []string{"unknown sort order"}},
		{"compare without funds", []string{"-d", "data", "compare"}, 2, []string{"at least one fund is required"}},
		{"export without output", []string{"-d", "data", "export"}, 2, []string{"export requires -o"}},
		{"missing dir", []string{"-d", "nowhere", "list"}, 1, []string{"Error loading portfolio"}},
		{"markdown", []string{"-d", "data", "overlap"}, 0, []string{
			"Found 1 overlapping assets (appear in multiple ETFs)",
			"# Overlapping Assets",
			"AAPL",
		}},
		{"default function", []string{"-d", "data"}, 0, []string{"Total ETFs: 2", "Largest: IVW (2 assets)"}},
		{"compare", []string{"-d", "data", "compare", "IWF", "ivw", "QQQ"}, 0, []string{
			"Warning: ETFs not found: QQQ",
			"Comparing 2 assets across 3 ETFs",
		}},
		{"correlation", []string{"-d", "data", "correlation"}, 0, []string{
			"Correlation of 2 ETFs over 2 assets",
			"# Weight Correlation",
		}},
		{"exposure", []string{"-d", "data", "exposure", "IVW=60%", "iwf=0.4"}, 0, []string{
			"Exposure to 2 assets through 2 ETFs, covering 12.03%",
			"# Weighted Exposure",
		}},
		{"exposure with partial shares", []string{"-d", "data", "exposure", "IVW=0.5", "IWF"}, 2, []string{"either every ETF has a share or none has"}},
		{"exposure not summing to 1", []string{"-d", "data", "exposure", "IVW=0.5,IWF=0.4"}, 2, []string{"shares must sum to 1"}},
		{"chart", []string{"-d", "data", "-force", "mapping", "-chart", "dist.svg"}, 0, []string{"Chart saved to: dist.svg"}},
		{"chart of an empty filter", []string{"-d", "data", "-etfs", "QQQ", "mapping", "-chart", "empty.png"}, 0, []string{
			"Warning: ETFs not found: QQQ",
			"Warning: no holdings match -etfs QQQ",
			"No asset to draw, skipped chart empty.png",
			"Found 0 assets across 0 ETFs",
		}},
		{"unknown topic", []string{"topic", "ledger"}, 2, []string{
			`topic "ledger" not found`,
			"Topics: compare, config, export, extracts, reports",
		}},
		{"bad chart", []string{"-d", "data", "mapping", "-chart", "dist.gif"}, 2, []string{"unsupported file format"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, code := etfaRun(t, etfa, dir, tc.args...)
			assert.Equal(t, tc.code, code, out)
			for _, w := range tc.want {
				assert.Contains(t, out, w)
			}
		})
	}
	assert.NoFileExists(t, filepath.Join(dir, "empty.png"))
}

func TestCLI_Overwrite(t *testing.T) {
	bin := t.TempDir()
	etfa := buildEtfa(t, bin)

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "data"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "ivw-etf-holdings.csv"), []byte("Symbol,Name,% Weight\nAAPL,Apple Inc,1%\n"), 0644))
	report := filepath.Join(dir, "list.csv")
	require.NoError(t, os.WriteFile(report, []byte("keep me"), 0644))

	// stdin is empty: the answer is no
	out, code := etfaRun(t, etfa, dir, "-d", "data", "list", "-o", "list.csv")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Skipped writing list.csv")
	content, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(content))

	out, code = etfaRun(t, etfa, dir, "-d", "data", "-force", "list", "-o", "list.csv")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Report saved to: list.csv")
	content, err = os.ReadFile(report)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "ETF\nIVW\n"))
}
