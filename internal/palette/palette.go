// Package palette maps semantic color roles to concrete colors.
package palette

import (
	"fmt"
	"strconv"
	"strings"

	"deckgen/internal/pptx"
)

// Roles every palette carries. Deck content refers to colors by role so
// a theme override restyles the whole deck consistently.
const (
	Primary     = "primary"
	PrimaryDark = "primary_dark"
	Secondary   = "secondary"
	Accent      = "accent"
	Warning     = "warning"
	Danger      = "danger"
	Purple      = "purple"
	White       = "white"
	LightGray   = "light_gray"
	Muted       = "muted"
	Border      = "border"
	DangerTint  = "danger_tint"
	PrimaryTint = "primary_tint"
)

// Palette is a mapping from role names to colors.
type Palette map[string]pptx.Color

// Default returns the corporate-safe palette the deck ships with.
func Default() Palette {
	return Palette{
		Primary:     pptx.RGB(0x00, 0x66, 0xCC),
		PrimaryDark: pptx.RGB(0x00, 0x52, 0xA3),
		Secondary:   pptx.RGB(0x1E, 0x29, 0x3B),
		Accent:      pptx.RGB(0x10, 0xB9, 0x81),
		Warning:     pptx.RGB(0xD9, 0x77, 0x06),
		Danger:      pptx.RGB(0xDC, 0x26, 0x26),
		Purple:      pptx.RGB(0x8B, 0x5C, 0xF6),
		White:       pptx.RGB(0xFF, 0xFF, 0xFF),
		LightGray:   pptx.RGB(0xF8, 0xFA, 0xFC),
		Muted:       pptx.RGB(0x64, 0x74, 0x8B),
		Border:      pptx.RGB(0xE2, 0xE8, 0xF0),
		DangerTint:  pptx.RGB(0xFE, 0xE2, 0xE2),
		PrimaryTint: pptx.RGB(0xA0, 0xC4, 0xE8),
	}
}

// Get resolves a role to its color.
func (p Palette) Get(role string) (pptx.Color, error) {
	c, ok := p[role]
	if !ok {
		return pptx.Color{}, fmt.Errorf("unknown color role %q", role)
	}
	return c, nil
}

// Apply overlays hex overrides onto the palette. Only existing roles may
// be overridden; a typo'd role is an error rather than a silently unused
// entry.
func (p Palette) Apply(overrides map[string]string) error {
	for role, hex := range overrides {
		if _, ok := p[role]; !ok {
			return fmt.Errorf("unknown color role %q", role)
		}
		c, err := ParseHex(hex)
		if err != nil {
			return fmt.Errorf("color role %q: %w", role, err)
		}
		p[role] = c
	}
	return nil
}

// ParseHex parses "#RRGGBB" or "RRGGBB".
func ParseHex(s string) (pptx.Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return pptx.Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return pptx.Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	return pptx.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
