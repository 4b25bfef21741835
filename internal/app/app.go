//go:build ebiten

package app

import (
	"image/color"
	"time"

	"lifegrid/internal/render"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *Controller
	painter *render.GridPainter
	hud     *ui.HUD

	onColor   color.Color
	offColor  color.Color
	lineColor color.Color
}

// New constructs a Game for the provided controller.
func New(ctrl *Controller) *Game {
	layout := ctrl.Layout()
	return &Game{
		ctrl:      ctrl,
		painter:   render.NewGridPainter(layout),
		hud:       ui.NewHUD(ctrl, layout.ScreenW, layout.ScreenH),
		onColor:   color.Black,
		offColor:  color.White,
		lineColor: color.RGBA{R: 128, G: 128, B: 128, A: 255},
	}
}

// Update polls input and lets the controller advance the simulation.
func (g *Game) Update() error {
	if !g.ctrl.Frame(time.Now(), pollEvents()) {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the latest snapshot and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.offColor)
	g.painter.Blit(screen, g.ctrl.Snapshot(), g.onColor, g.offColor)
	if g.ctrl.GridLines() {
		g.painter.DrawGridLines(screen, g.lineColor)
	}
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	l := g.ctrl.Layout()
	return l.ScreenW, l.ScreenH
}

var keymap = map[ebiten.Key]Key{
	ebiten.KeyS:              KeyS,
	ebiten.KeyL:              KeyL,
	ebiten.KeySpace:          KeySpace,
	ebiten.KeyN:              KeyN,
	ebiten.KeyR:              KeyR,
	ebiten.KeyC:              KeyC,
	ebiten.KeyG:              KeyG,
	ebiten.KeyQ:              KeyQ,
	ebiten.KeyEscape:         KeyEscape,
	ebiten.KeyEqual:          KeyPlus,
	ebiten.KeyNumpadAdd:      KeyPlus,
	ebiten.KeyMinus:          KeyMinus,
	ebiten.KeyNumpadSubtract: KeyMinus,
}

func pollEvents() []Event {
	var events []Event
	if ebiten.IsWindowBeingClosed() {
		events = append(events, QuitEvent())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		events = append(events, PressEvent(x, y))
	}

	var mods Modifier
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModCtrl
	}
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if key, ok := keymap[k]; ok {
			events = append(events, KeyEvent(key, mods))
		}
	}
	return events
}
