package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/torchcrawl/internal/entity"
	"github.com/samdwyer/torchcrawl/internal/gamedata"
	"github.com/samdwyer/torchcrawl/internal/world"
)

// Visibility answers whether a tile is currently in view.
type Visibility interface {
	Visible(x, y int) bool
}

// Renderer draws the map and objects onto a canvas.
type Renderer struct {
	canvas Canvas
	colors gamedata.Colors
}

// NewRenderer creates a renderer for the given canvas and tile colors.
func NewRenderer(canvas Canvas, colors gamedata.Colors) *Renderer {
	return &Renderer{canvas: canvas, colors: colors}
}

// Render draws explored tiles and the objects currently in view.
// Unexplored tiles are left blank.
func (r *Renderer) Render(grid *world.Grid, vis Visibility, objects []*entity.Object) {
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			tile := grid.Tile(x, y)
			visible := vis.Visible(x, y)
			if !visible && !tile.Explored {
				r.canvas.SetContent(x, y, ' ', tcell.StyleDefault)
				continue
			}
			r.canvas.SetContent(x, y, ' ', r.tileStyle(tile.BlockSight, visible))
		}
	}

	for _, obj := range objects {
		if !vis.Visible(obj.X, obj.Y) {
			continue
		}
		style := r.tileStyle(grid.BlocksSight(obj.X, obj.Y), true).Foreground(obj.Color)
		r.canvas.SetContent(obj.X, obj.Y, obj.Glyph, style)
	}
}

// tileStyle returns the background style for a wall or floor tile.
func (r *Renderer) tileStyle(wall, visible bool) tcell.Style {
	var bg tcell.Color
	switch {
	case wall && visible:
		bg = r.colors.LightWall
	case wall:
		bg = r.colors.DarkWall
	case visible:
		bg = r.colors.LightGround
	default:
		bg = r.colors.DarkGround
	}
	return tcell.StyleDefault.Background(bg)
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.canvas.SetContent(i, y, ch, style)
	}
}
