package holdings

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ivw-etf-holdings.csv"), "No.,Symbol,Name,% Weight\n1,AAPL,Apple Inc,11.28%\n2,n/a,Cash,0.10%\n")
	writeFile(t, filepath.Join(dir, "nested", "iwf-etf-holdings.json"), `[{"No.": 1, "Symbol": "AAPL", "Name": "Apple", "% Weight": "5.66%"}]`)
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	p, err := LoadDir(context.Background(), dir, LoadOptions{Workers: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"IVW", "IWF"}, p.Funds())
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, "IVW-2", p.At(1).Symbol)

	r := Overlap(p, Options{})
	assert.Equal(t, 1, r.Assets)
}

func TestLoadDir_FailFast(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ivw-etf-holdings.csv"), "No.,Symbol,Name,% Weight\n1,AAPL,Apple,11.28%\n")
	writeFile(t, filepath.Join(dir, "iwf-etf-holdings.csv"), "No.,Symbol,Name,% Weight\n1,AAPL,Apple,heavy\n")

	_, err := LoadDir(context.Background(), dir, LoadOptions{})
	var wpe *WeightParseError
	require.ErrorAs(t, err, &wpe)
	assert.Equal(t, "IWF", wpe.Fund)
}

func TestLoadDir_Empty(t *testing.T) {
	_, err := LoadDir(context.Background(), t.TempDir(), LoadOptions{})
	assert.ErrorContains(t, err, "no extract")
}

func TestLoadDir_DuplicateFund(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ivw-etf-holdings.csv"), "Symbol,Name,% Weight\n")
	writeFile(t, filepath.Join(dir, "IVW-etf-holdings.json"), "[]")

	_, err := LoadDir(context.Background(), dir, LoadOptions{})
	assert.ErrorIs(t, err, ErrInvalidFund)
}

func TestLoad_IndependentOfCompletionOrder(t *testing.T) {
	var extracts []Extract
	for _, fund := range []string{"VTV", "IVW", "IWF", "IVE", "SPY", "QQQ"} {
		extracts = append(extracts, Extract{Fund: fund, Table: extract(
			[4]string{"1", "AAPL", "Apple as seen by " + fund, "1%"},
			[4]string{"2", "", "Cash", "0.1%"},
			[4]string{"3", fund + "X", "Own", "2%"},
		)})
	}
	want, err := Load(context.Background(), extracts, LoadOptions{Workers: 1})
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		got, err := Load(context.Background(), extracts, LoadOptions{Workers: 6})
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	assets := Aggregate(want, 4)
	assert.Equal(t, "Apple as seen by IVE", assets[0].Name)
}

func TestLoad_MissingColumn(t *testing.T) {
	bad := NewTable("Symbol", "Name")
	_, err := Load(context.Background(), []Extract{
		{Fund: "IVW", Table: extract([4]string{"1", "AAPL", "Apple", "1%"})},
		{Fund: "IWF", Table: bad},
	}, LoadOptions{})
	var mce *MissingColumnError
	require.ErrorAs(t, err, &mce)
	assert.Equal(t, "IWF", mce.Fund)
	assert.Equal(t, "% Weight", mce.Column)
}
