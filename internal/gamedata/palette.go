package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Palette holds the hex colors used to draw map tiles.
type Palette struct {
	DarkWall    string `json:"darkWall"`    // Explored wall out of view
	LightWall   string `json:"lightWall"`   // Wall in view
	DarkGround  string `json:"darkGround"`  // Explored floor out of view
	LightGround string `json:"lightGround"` // Floor in view
}

// Colors is a parsed Palette.
type Colors struct {
	DarkWall    tcell.Color
	LightWall   tcell.Color
	DarkGround  tcell.Color
	LightGround tcell.Color
}

// DefaultColors returns the built-in tile colors.
func DefaultColors() Colors {
	return Colors{
		DarkWall:    tcell.NewRGBColor(0, 0, 100),
		LightWall:   tcell.NewRGBColor(130, 110, 50),
		DarkGround:  tcell.NewRGBColor(50, 50, 150),
		LightGround: tcell.NewRGBColor(200, 180, 50),
	}
}

// Parse converts every palette entry to a tcell.Color.
func (p Palette) Parse() (Colors, error) {
	var c Colors
	entries := []struct {
		name string
		hex  string
		dst  *tcell.Color
	}{
		{"darkWall", p.DarkWall, &c.DarkWall},
		{"lightWall", p.LightWall, &c.LightWall},
		{"darkGround", p.DarkGround, &c.DarkGround},
		{"lightGround", p.LightGround, &c.LightGround},
	}
	for _, e := range entries {
		color, err := ParseHexColor(e.hex)
		if err != nil {
			return Colors{}, fmt.Errorf("palette %s: %w", e.name, err)
		}
		*e.dst = color
	}
	return c, nil
}

// LoadColors loads and parses palette.json from the source.
func (s Source) LoadColors() (Colors, error) {
	p, err := LoadFS[Palette](s.fsys, "palette.json")
	if err != nil {
		return Colors{}, err
	}
	return p.Parse()
}
