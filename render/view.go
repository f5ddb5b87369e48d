package render

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/patrol/geom"
	"github.com/katalvlaran/patrol/patrol"
)

// ErrAborted indicates the user stopped playback.
var ErrAborted = errors.New("render: aborted")

// Styles selects how each kind of cell is drawn.
type Styles struct {
	Empty       tcell.Style
	Obstruction tcell.Style
	Visited     tcell.Style
	Guard       tcell.Style
	Status      tcell.Style
}

// DefaultStyles returns the palette used by NewView.
func DefaultStyles() Styles {
	return Styles{
		Empty:       tcell.StyleDefault.Foreground(tcell.ColorGray),
		Obstruction: tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
		Visited:     tcell.StyleDefault.Foreground(tcell.ColorYellow),
		Guard:       tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true),
		Status:      tcell.StyleDefault.Foreground(tcell.ColorGreen),
	}
}

// ViewOption configures a View.
type ViewOption func(*View)

// WithDelay sets the pause between frames in Play. Default 20ms.
func WithDelay(d time.Duration) ViewOption {
	return func(v *View) {
		if d >= 0 {
			v.delay = d
		}
	}
}

// WithStyles replaces the default palette.
func WithStyles(s Styles) ViewOption {
	return func(v *View) {
		v.styles = s
	}
}

// View draws patrols on a screen.
type View struct {
	screen tcell.Screen
	delay  time.Duration
	styles Styles
}

// NewView returns a View over an initialised screen.
func NewView(screen tcell.Screen, opts ...ViewOption) *View {
	v := &View{
		screen: screen,
		delay:  20 * time.Millisecond,
		styles: DefaultStyles(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Draw paints the patrol's grid, the guard and the status line, clipped
// to the screen size, and shows the frame.
func (v *View) Draw(p *patrol.Patrol) {
	v.screen.Clear()
	g := p.Grid()
	sw, sh := v.screen.Size()
	rows := min(g.Height(), sh-1)
	cols := min(g.Width(), sw)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c, _ := g.Get(geom.Point{X: x, Y: y})
			v.screen.SetContent(x, y, c.Glyph(), nil, v.style(c))
		}
	}
	if pos := p.Position(); pos.X < cols && pos.Y < rows {
		c, _ := g.Get(pos)
		v.screen.SetContent(pos.X, pos.Y, c.Glyph(), nil, v.styles.Guard)
	}
	if rows >= 0 {
		status := fmt.Sprintf("steps=%d visited=%d", p.Steps(), p.VisitedCount())
		v.print(0, rows, status, v.styles.Status)
	}
	v.screen.Show()
}

func (v *View) style(c patrol.Cell) tcell.Style {
	switch c.Status {
	case patrol.Obstruction:
		return v.styles.Obstruction
	case patrol.Visited:
		return v.styles.Visited
	}
	return v.styles.Empty
}

func (v *View) print(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Play draws p, then runs it to completion with a redraw and a pause
// after every step. opts are passed to patrol.Run; the context option
// and the OnStep hook are set by Play. When Play returns its key watcher
// has stopped, so later events on the screen reach the caller.
func (v *View) Play(ctx context.Context, p *patrol.Patrol, opts ...patrol.Option) (patrol.Result, error) {
	done := make(chan struct{})
	quit := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		v.watchKeys(done, quit)
	}()
	defer v.stopWatcher(done, exited)

	v.Draw(p)
	frame := func(patrol.Snapshot) error {
		v.Draw(p)
		timer := time.NewTimer(v.delay)
		defer timer.Stop()
		select {
		case <-quit:
			return ErrAborted
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		}
	}
	opts = append(opts[:len(opts):len(opts)], patrol.WithContext(ctx), patrol.WithOnStep(frame))
	res, err := patrol.Run(p, opts...)
	v.Draw(p)
	return res, err
}

// stopWatcher wakes watchKeys with an interrupt and waits for it to exit.
// PostEvent fails only while the event queue is full; the watcher keeps
// draining it, so the post is retried until it lands or the watcher is
// gone (a quit key, or Fini making PollEvent return nil).
func (v *View) stopWatcher(done chan<- struct{}, exited <-chan struct{}) {
	close(done)
	retry := time.NewTicker(time.Millisecond)
	defer retry.Stop()
	for {
		select {
		case <-exited:
			return
		default:
		}
		if err := v.screen.PostEvent(tcell.NewEventInterrupt(nil)); err == nil {
			<-exited
			return
		}
		select {
		case <-exited:
			return
		case <-retry.C:
		}
	}
}

// watchKeys forwards a quit key press to quit until done is closed.
func (v *View) watchKeys(done <-chan struct{}, quit chan<- struct{}) {
	for {
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventInterrupt:
			select {
			case <-done:
				return
			default:
			}
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if isQuit(ev) {
				close(quit)
				return
			}
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
