package ui

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Category palette. Colors cycle when more categories exist than entries.
var palette = []string{
	"#FF5733", "#33FF57", "#3357FF", "#F1C40F", "#8E44AD",
	"#E74C3C", "#2ECC71", "#3498DB", "#1ABC9C", "#D35400",
}

const defaultColor = "#FFFFFF"

func paletteColor(i int) string {
	if i < 0 {
		i = -i
	}
	return palette[i%len(palette)]
}

// normalizeHex validates a hex color, falling back to the default for
// anything go-colorful cannot parse.
func normalizeHex(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return defaultColor
	}
	return c.Hex()
}

// dimHex blends the color toward black for de-emphasized rendering.
func dimHex(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	return c.BlendRgb(colorful.Color{}, 0.55).Hex()
}
