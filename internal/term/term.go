// Package term runs the Life controller inside a terminal using tcell.
// Each cell is drawn two columns wide so the board keeps its aspect ratio;
// the Start/Stop control, key help and status line sit below the board.
package term

import (
	"context"
	"log/slog"
	"time"

	"lifegrid/internal/app"
	"lifegrid/internal/core"
	"lifegrid/internal/ui"

	"github.com/gdamore/tcell/v2"
)

// DefaultFrame is the redraw interval of the terminal loop.
const DefaultFrame = 33 * time.Millisecond

const (
	cellColumns = 2
	buttonWidth = 10
	helpText    = "ctrl+s save | ctrl+l load | space pause | n step | q quit"
)

var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleAlive   = styleDefault.Background(tcell.ColorWhite)
	styleGrid    = styleDefault.Foreground(tcell.ColorDarkGray)
	styleButton  = styleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
	styleHelp    = styleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue)
	styleStatus  = styleDefault.Foreground(tcell.ColorGray)
)

// Options maps cfg onto terminal geometry: one row and two columns per cell.
func Options(cfg *app.Config, logger *slog.Logger, start time.Time) app.Options {
	opts := app.OptionsFromConfig(cfg, logger, start)
	opts.Layout = core.Layout{
		ScreenW: cfg.CellsX * cellColumns,
		ScreenH: cfg.CellsY,
		Cells:   core.Size{W: cfg.CellsX, H: cfg.CellsY},
	}
	opts.Button = core.Rect{X: 0, Y: cfg.CellsY + 1, W: buttonWidth, H: 1}
	return opts
}

// Run drives ctrl from screen until a quit event or ctx is done. Input is
// collected between frames and handed to the controller once per frame.
func Run(ctx context.Context, screen tcell.Screen, ctrl *app.Controller, frame time.Duration) error {
	if frame <= 0 {
		frame = DefaultFrame
	}
	screen.EnableMouse()
	screen.HideCursor()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	var in translator
	var pending []app.Event
	draw(screen, ctrl)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
			}
			pending = append(pending, in.translate(ev)...)
		case now := <-ticker.C:
			if !ctrl.Frame(now, pending) {
				return nil
			}
			pending = pending[:0]
			draw(screen, ctrl)
		}
	}
}

// translator converts tcell events into controller events, turning mouse
// button state into press edges.
type translator struct {
	buttons tcell.ButtonMask
}

func (t *translator) translate(ev tcell.Event) []app.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if e, ok := keyEvent(ev); ok {
			return []app.Event{e}
		}
	case *tcell.EventMouse:
		prev := t.buttons
		t.buttons = ev.Buttons()
		if t.buttons&tcell.Button1 != 0 && prev&tcell.Button1 == 0 {
			x, y := ev.Position()
			return []app.Event{app.PressEvent(x, y)}
		}
	}
	return nil
}

var runeKeys = map[rune]app.Key{
	' ': app.KeySpace,
	'n': app.KeyN,
	'r': app.KeyR,
	'c': app.KeyC,
	'g': app.KeyG,
	'q': app.KeyQ,
	'+': app.KeyPlus,
	'=': app.KeyPlus,
	'-': app.KeyMinus,
}

func keyEvent(ev *tcell.EventKey) (app.Event, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlS:
		return app.KeyEvent(app.KeyS, app.ModCtrl), true
	case tcell.KeyCtrlL:
		return app.KeyEvent(app.KeyL, app.ModCtrl), true
	case tcell.KeyCtrlC:
		return app.QuitEvent(), true
	case tcell.KeyEscape:
		return app.KeyEvent(app.KeyEscape, 0), true
	case tcell.KeyRune:
	default:
		return app.Event{}, false
	}
	k, ok := runeKeys[ev.Rune()]
	if !ok {
		return app.Event{}, false
	}
	return app.KeyEvent(k, 0), true
}

func draw(s tcell.Screen, ctrl *app.Controller) {
	s.Clear()
	g := ctrl.Snapshot()
	grid := ctrl.GridLines()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			style, glyph := styleDefault, ' '
			if g.At(x, y).IsAlive() {
				style = styleAlive
			} else if grid {
				style, glyph = styleGrid, '·'
			}
			s.SetContent(x*cellColumns, y, glyph, nil, style)
			s.SetContent(x*cellColumns+1, y, ' ', nil, style)
		}
	}

	btn := ctrl.Button()
	label := "[ " + ui.ButtonLabel(ctrl.Paused()) + " ]"
	drawText(s, btn.X, btn.Y, label, styleButton)
	drawText(s, btn.X+btn.W+1, btn.Y, helpText, styleHelp)
	drawText(s, 0, btn.Y+1, ui.StatusLine(ctrl), styleStatus)
	s.Show()
}

func drawText(s tcell.Screen, x, y int, msg string, style tcell.Style) {
	for _, r := range msg {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
