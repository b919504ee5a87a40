package holdings

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonReader(s string) io.Reader { return strings.NewReader(s) }

func TestReadCSV(t *testing.T) {
	data := "\xEF\xBB\xBFNo., Symbol ,Name,% Weight,Shares\n" +
		"1,AAPL,\"Apple, Inc.\",11.28%,\"1,000\"\n" +
		"\n" +
		"2,,Cash\n"
	table, err := ReadCSV(strings.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, []string{"No.", "Symbol", "Name", "% Weight", "Shares"}, table.Columns)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"1", "AAPL", "Apple, Inc.", "11.28%", "1,000"}, table.Rows[0])

	v, ok := table.Cell(1, 3)
	assert.False(t, ok, "short row cell is null")
	assert.Empty(t, v)
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestReadJSON_Objects(t *testing.T) {
	doc := `{"fund": "IVW", "holdings": [
		{"Symbol": "AAPL", "Name": "Apple", "% Weight": 11.28, "No.": 1},
		{"Symbol": null, "Name": "Cash", "% Weight": "0.5%", "No.": 2, "Shares": 1000}
	]}`
	table, err := ReadJSON(jsonReader(doc), "$.holdings")
	require.NoError(t, err)

	assert.Equal(t, []string{"% Weight", "Name", "No.", "Shares", "Symbol"}, table.Columns)
	assert.Equal(t, []string{"11.28", "Apple", "1", "", "AAPL"}, table.Rows[0])
	_, ok := table.Cell(0, 3)
	assert.False(t, ok, "absent key is null")
	_, ok = table.Cell(1, 4)
	assert.False(t, ok, "null value is null")

	hs, err := Normalize(table, "IVW", DefaultSchema())
	require.NoError(t, err)
	assert.Equal(t, "IVW-2", hs[1].Symbol)
	assert.True(t, hs[1].Shares.Equal(Q(1000)))
}

func TestReadJSON_Arrays(t *testing.T) {
	doc := `[["Symbol", "Name", "% Weight"], ["MSFT", "Microsoft", "7.23"], ["AAPL", null, 5]]`
	table, err := ReadJSON(jsonReader(doc), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Symbol", "Name", "% Weight"}, table.Columns)
	assert.Equal(t, 2, table.Len())
	_, ok := table.Cell(1, 1)
	assert.False(t, ok)
}

func TestReadJSON_Errors(t *testing.T) {
	_, err := ReadJSON(jsonReader(`{"a": 1}`), "$")
	assert.Error(t, err, "not an array")
	_, err = ReadJSON(jsonReader(`{"a": [1, 2]}`), "$.a")
	assert.Error(t, err, "rows are not objects")
	_, err = ReadJSON(jsonReader(`{`), "$")
	assert.Error(t, err)
}

func TestFundFromFilename(t *testing.T) {
	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"data/ivw-etf-holdings.csv", "IVW", true},
		{"/tmp/x/VTV-etf-holdings.JSON", "VTV", true},
		{"brk.b-etf-holdings.csv", "BRK.B", true},
		{"ivw-holdings.csv", "", false},
		{"-etf-holdings.csv", "", false},
		{"ivw-etf-holdings.xlsx", "", false},
	}
	for _, tc := range tests {
		got, err := FundFromFilename(tc.path)
		if !tc.ok {
			assert.ErrorIs(t, err, ErrInvalidFund, tc.path)
			continue
		}
		require.NoError(t, err, tc.path)
		assert.Equal(t, tc.want, got)
	}
}
