package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFloat64(t *testing.T) {
	tests := []struct {
		in   any
		want float64
		ok   bool
	}{
		{1.5, 1.5, true},
		{float32(2), 2, true},
		{3, 3, true},
		{int64(4), 4, true},
		{int32(5), 5, true},
		{uint64(6), 6, true},
		{true, 1, true},
		{"7", 0, false},
		{nil, 0, false},
	}
	for _, tt := range tests {
		got, ok := ToFloat64(tt.in)
		assert.Equal(t, tt.ok, ok, "%v", tt.in)
		assert.Equal(t, tt.want, got, "%v", tt.in)
	}
}

func TestSliceAnyToString(t *testing.T) {
	assert.Equal(t, []string{"POST", "85123", "7"}, SliceAnyToString([]any{"POST", 85123, 7.0, nil}))
	assert.Nil(t, SliceAnyToString(nil))
	assert.Nil(t, SliceAnyToString("POST"))
}

func TestConfigGet(t *testing.T) {
	cfg := map[string]any{
		"country":     "EIRE",
		"n":           3,
		"min_support": 0.05,
		"threshold":   1,
		"bad":         "x",
	}

	assert.Equal(t, "EIRE", ConfigGet(cfg, "country", "United Kingdom"))
	assert.Equal(t, "United Kingdom", ConfigGet(cfg, "missing", "United Kingdom"))
	assert.Equal(t, "United Kingdom", ConfigGet(cfg, "n", "United Kingdom"))
	assert.Equal(t, "d", ConfigGet[string](nil, "country", "d"))

	assert.Equal(t, int64(3), ConfigGetInt64(cfg, "n", 5))
	assert.Equal(t, int64(0), ConfigGetInt64(cfg, "min_support", 5))
	assert.Equal(t, int64(5), ConfigGetInt64(cfg, "bad", 5))
	assert.Equal(t, int64(5), ConfigGetInt64(nil, "n", 5))

	assert.Equal(t, 0.05, ConfigGetFloat64(cfg, "min_support", 0.02))
	assert.Equal(t, 1.0, ConfigGetFloat64(cfg, "threshold", 0.2))
	assert.Equal(t, 0.2, ConfigGetFloat64(cfg, "bad", 0.2))
	assert.Equal(t, 0.2, ConfigGetFloat64(nil, "threshold", 0.2))
}
