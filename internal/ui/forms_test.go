package ui

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain", in: "12.34", want: "12.34"},
		{name: "currency prefix", in: "$1,200.50", want: "1200.50"},
		{name: "whitespace", in: "  42 ", want: "42"},
		{name: "zero allowed", in: "0", want: "0"},
		{name: "negative rejected", in: "-5", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "garbage", in: "lots", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAmount(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestParsePositiveAmount_RejectsZero(t *testing.T) {
	_, err := parsePositiveAmount("0")
	assert.Error(t, err)

	got, err := parsePositiveAmount("0.01")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("0.01")))
}

func TestParseName(t *testing.T) {
	got, err := parseName("  Groceries ")
	require.NoError(t, err)
	assert.Equal(t, "Groceries", got)

	_, err = parseName("   ")
	assert.Error(t, err)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$1200.00", formatMoney(decimal.NewFromInt(1200)))
	assert.Equal(t, "-$200.00", formatMoney(decimal.NewFromInt(-200)))
	assert.Equal(t, "$0.00", formatMoney(decimal.Zero))
}

func TestBar_ClampsDisplayOnly(t *testing.T) {
	full := bar(150, 10)
	assert.NotContains(t, full, "░", "overshoot fills the bar, no overflow")

	empty := bar(0, 10)
	assert.NotContains(t, empty, "█")

	half := bar(50, 10)
	assert.Contains(t, half, "█")
	assert.Contains(t, half, "░")
}

func TestPaletteColor_Cycles(t *testing.T) {
	assert.Equal(t, palette[0], paletteColor(0))
	assert.Equal(t, palette[0], paletteColor(len(palette)))
	assert.Equal(t, palette[3], paletteColor(len(palette)+3))
}

func TestNormalizeHex(t *testing.T) {
	assert.Equal(t, "#ff5733", normalizeHex("#FF5733"))
	assert.Equal(t, defaultColor, normalizeHex("not-a-color"))
}
