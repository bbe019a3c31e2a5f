// Command mapgen prints a generated dungeon map without starting the game.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/samdwyer/torchcrawl/internal/config"
	"github.com/samdwyer/torchcrawl/internal/game"
	"github.com/samdwyer/torchcrawl/internal/world"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "mapgen: %v\n", err)
		os.Exit(2)
	}

	gc := game.ConfigFrom(cfg)
	rng, seed := gc.NewRNG()
	grid, start, err := world.BuildMap(context.Background(), gc.Map, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mapgen: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(render(grid, start))
	fmt.Printf("seed %d start (%d,%d) floors %d\n", seed, start.X, start.Y, len(grid.FloorTiles()))
}

// render draws the grid with the start position marked '@'.
func render(grid *world.Grid, start world.Point) string {
	out := []byte(grid.String())
	if grid.InBounds(start.X, start.Y) {
		out[start.Y*(grid.Width()+1)+start.X] = '@'
	}
	return string(out)
}

