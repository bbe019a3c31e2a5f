package gamedata

import "github.com/gdamore/tcell/v2"

// PlayerID is the template ID used for the player object.
const PlayerID = "player"

// ObjectDef defines a map object (player or NPC) loaded from JSON.
type ObjectDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "villager")
	Name        string `json:"name"`        // Display name (e.g., "Villager")
	Glyph       string `json:"glyph"`       // Single character for rendering (e.g., "@")
	Color       string `json:"color"`       // Hex color code (e.g., "#FFFF00")
	SpawnWeight int    `json:"spawnWeight"` // Relative NPC spawn frequency; 0 never spawns
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *ObjectDef) GlyphRune() rune {
	for _, r := range d.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the color as a tcell.Color.
func (d *ObjectDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(d.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// ObjectsFile represents the structure of objects.json.
type ObjectsFile struct {
	Objects []ObjectDef `json:"objects"`
}

// LoadObjects loads object definitions from the source.
func (s Source) LoadObjects() ([]ObjectDef, error) {
	file, err := LoadFS[ObjectsFile](s.fsys, "objects.json")
	if err != nil {
		return nil, err
	}
	return file.Objects, nil
}

// LoadObjects loads object definitions from the embedded objects.json file.
func LoadObjects() ([]ObjectDef, error) {
	return Embedded().LoadObjects()
}
