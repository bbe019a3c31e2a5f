package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/torchcrawl/internal/gamedata"
	"github.com/samdwyer/torchcrawl/internal/input"
	"github.com/samdwyer/torchcrawl/internal/ui"
)

// Game owns the terminal and drives a Session frame by frame.
type Game struct {
	cfg      Config
	objects  *gamedata.ObjectRegistry
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	log      logrus.FieldLogger
}

// New creates a new game instance and takes over the terminal.
func New(cfg Config, objects *gamedata.ObjectRegistry, colors gamedata.Colors, log logrus.FieldLogger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		objects:  objects,
		screen:   screen,
		renderer: ui.NewRenderer(screen, colors),
		log:      log,
	}, nil
}

// Run executes the main game loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	session, err := NewSession(ctx, g.cfg, g.objects, g.log)
	if err != nil {
		return err
	}
	g.session = session
	g.checkFit()

	// PollEvent blocks; wake it when ctx is cancelled.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			g.screen.Interrupt()
		case <-done:
		}
	}()

	interval := g.cfg.FrameInterval()
	for g.session.Running() {
		if ctx.Err() != nil {
			g.log.WithError(ctx.Err()).Info("context done, stopping")
			return nil
		}
		frameStart := time.Now()

		g.draw()

		// Handle input (blocking)
		g.handleEvent(ctx, g.screen.PollEvent())

		if wait := interval - time.Since(frameStart); wait > 0 {
			time.Sleep(wait)
		}
	}

	return nil
}

// draw renders the current session state.
func (g *Game) draw() {
	s := g.session
	p := s.Player()
	g.screen.Frame(func(ui.Canvas) {
		g.renderer.Render(s.Grid(), s.Tracker(), s.Entities().All())
		g.renderer.RenderMessage(fmt.Sprintf("seed %d  @ %d,%d", s.Seed(), p.X, p.Y), s.Grid().Height())
	})
}

// checkFit warns when the terminal is too small to show the whole map.
func (g *Game) checkFit() {
	grid := g.session.Grid()
	if !g.screen.Fits(grid.Width(), grid.Height()) {
		g.log.WithFields(logrus.Fields{
			"map_width":  grid.Width(),
			"map_height": grid.Height(),
		}).Warn("terminal smaller than map, edges are clipped")
	}
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := input.ActionFor(ev)
		if action == input.ActionToggleFullscreen {
			// A terminal has no fullscreen mode; repaint everything instead.
			g.screen.Sync()
			return
		}
		g.session.Apply(ctx, action)
	case *tcell.EventInterrupt:
		// Woken for cancellation; Run checks ctx.
	case *tcell.EventResize:
		g.screen.Sync()
		g.checkFit()
	case nil:
		// Screen finalized underneath us.
		g.session.Apply(ctx, input.ActionQuit)
	}
}
