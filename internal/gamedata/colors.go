package gamedata

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrBadColor is wrapped by every color parsing error.
var ErrBadColor = errors.New("bad color")

// ParseHexColor converts "#RRGGBB" (the '#' is optional) to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	c, err := parseHex(hex)
	if err != nil {
		return tcell.ColorDefault, err
	}
	return toTCell(c), nil
}

// MustParseHexColor converts a hex color string to tcell.Color, panicking on error.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}

func parseHex(hex string) (colorful.Color, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	// colorful also accepts "#RGB"; data files spell out all six digits.
	if len(digits) != 6 {
		return colorful.Color{}, fmt.Errorf("%w: %q needs six hex digits", ErrBadColor, hex)
	}
	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q: %w", ErrBadColor, hex, err)
	}
	return c, nil
}

func toTCell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
