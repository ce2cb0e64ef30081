package render

import (
	"fmt"
	"strconv"

	"resume-builder/internal/model"
)

// Color is the resolved token for a color scheme.
type Color struct {
	ID   model.ColorSchemeID
	Hex  string // accent
	Tint string // light variant for rules and chip borders
}

// ResolveColor maps id to its token. Unknown ids resolve to the first
// scheme in the table instead of failing the render.
func ResolveColor(id model.ColorSchemeID) Color {
	cs := model.LookupColorScheme(id)
	return Color{ID: cs.ID, Hex: cs.Hex, Tint: mixWhite(cs.Hex, 0.7)}
}

// mixWhite blends hex toward white by ratio (0..1).
func mixWhite(hex string, ratio float64) string {
	if len(hex) != 7 || hex[0] != '#' {
		return hex
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return hex
	}
	mix := func(c uint64) uint64 {
		return c + uint64(float64(255-c)*ratio+0.5)
	}
	r, g, b := mix(v>>16&0xff), mix(v>>8&0xff), mix(v&0xff)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
