// Package ui provides terminal rendering using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Canvas is the drawing surface the renderer writes to.
type Canvas interface {
	SetContent(x, y int, r rune, style tcell.Style)
}

// Screen owns the terminal for the lifetime of a game.
type Screen struct {
	screen tcell.Screen
}

// NewScreen takes over the controlling terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newScreen(s)
}

// newScreen initializes an existing tcell screen, real or simulated.
func newScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent waits for and returns the next terminal event.
// It returns nil once the screen has been closed.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Interrupt wakes a goroutine blocked in PollEvent with an *tcell.EventInterrupt.
func (s *Screen) Interrupt() {
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Frame clears the back buffer, lets draw fill it and flushes it to the terminal.
func (s *Screen) Frame(draw func(Canvas)) {
	s.screen.Clear()
	draw(s)
	s.screen.Show()
}

// SetContent sets a single cell. Cells outside the terminal are dropped.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Fits reports whether a map of the given size is fully on screen.
func (s *Screen) Fits(width, height int) bool {
	w, h := s.screen.Size()
	return width <= w && height <= h
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}
