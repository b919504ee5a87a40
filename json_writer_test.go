package holdings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, "{}", string(got))
	})

	t.Run("keeps field order", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("Symbol", "AAPL").Append("% Weight", 11.28).Append("ETF Count", "2")
		got, err := w.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, `{"Symbol":"AAPL","% Weight":11.28,"ETF Count":"2"}`, string(got))
	})

	t.Run("optional fields", func(t *testing.T) {
		var shares *float64
		var w jsonObjectWriter
		w.Append("Number", 0) // a zero value is actually added
		w.Optional("Shares", shares)
		w.Optional("Name", "")
		w.Optional("ETF", "IVW")
		got, err := w.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, `{"Number":0,"ETF":"IVW"}`, string(got))
	})

	t.Run("error is sticky", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("bad", make(chan int)).Append("ok", 1)
		_, err := w.MarshalJSON()
		assert.ErrorContains(t, err, `key "bad"`)
	})
}
