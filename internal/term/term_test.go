package term

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"lifegrid/internal/app"
	"lifegrid/internal/sims/life"

	"github.com/gdamore/tcell/v2"
)

func newController(t *testing.T) (*app.Controller, *life.Life) {
	t.Helper()
	cfg := app.NewConfig()
	cfg.CellsX, cfg.CellsY = 10, 6
	cfg.SavePath = filepath.Join(t.TempDir(), "state")
	sim := life.NewWithConfig(cfg.LifeConfig())
	sim.Reset(5)
	return app.NewController(sim, Options(cfg, nil, time.Now())), sim
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(80, 12)
	t.Cleanup(s.Fini)
	return s
}

func TestOptionsGeometry(t *testing.T) {
	ctrl, _ := newController(t)
	l := ctrl.Layout()
	if cw, ch := l.CellSize(); cw != 2 || ch != 1 {
		t.Fatalf("CellSize = (%d,%d), want (2,1)", cw, ch)
	}
	if b := ctrl.Button(); b.Y != 7 || l.GridRect().Contains(b.X, b.Y) {
		t.Fatalf("button %+v must sit below the grid", b)
	}
}

func TestTranslateKeys(t *testing.T) {
	var in translator
	tests := []struct {
		ev   *tcell.EventKey
		want app.Event
	}{
		{tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), app.KeyEvent(app.KeyS, app.ModCtrl)},
		{tcell.NewEventKey(tcell.KeyCtrlL, 0, tcell.ModCtrl), app.KeyEvent(app.KeyL, app.ModCtrl)},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), app.QuitEvent()},
		{tcell.NewEventKey(tcell.KeyRune, ' ', 0), app.KeyEvent(app.KeySpace, 0)},
		{tcell.NewEventKey(tcell.KeyRune, 'q', 0), app.KeyEvent(app.KeyQ, 0)},
	}
	for _, tt := range tests {
		got := in.translate(tt.ev)
		if len(got) != 1 || got[0] != tt.want {
			t.Fatalf("translate(%v) = %+v, want %+v", tt.ev.Name(), got, tt.want)
		}
	}
	if got := in.translate(tcell.NewEventKey(tcell.KeyRune, 's', 0)); len(got) != 0 {
		t.Fatalf("plain s must not map to an event, got %+v", got)
	}
}

func TestTranslateMousePressEdge(t *testing.T) {
	var in translator
	if got := in.translate(tcell.NewEventMouse(4, 2, tcell.Button1, 0)); len(got) != 1 || got[0] != app.PressEvent(4, 2) {
		t.Fatalf("press = %+v", got)
	}
	if got := in.translate(tcell.NewEventMouse(5, 2, tcell.Button1, 0)); len(got) != 0 {
		t.Fatal("drag while held must not repeat the press")
	}
	in.translate(tcell.NewEventMouse(5, 2, tcell.ButtonNone, 0))
	if got := in.translate(tcell.NewEventMouse(6, 3, tcell.Button1, 0)); len(got) != 1 {
		t.Fatal("press after release must register")
	}
}

func TestMouseTogglesCell(t *testing.T) {
	ctrl, sim := newController(t)
	var in translator
	before := sim.Snapshot().At(3, 2)
	ctrl.Frame(time.Now(), in.translate(tcell.NewEventMouse(7, 2, tcell.Button1, 0)))
	if sim.Snapshot().At(3, 2) != before.Flip() {
		t.Fatal("click on column 7, row 2 must toggle cell (3,2)")
	}
}

func TestDrawShowsControls(t *testing.T) {
	ctrl, _ := newController(t)
	s := newScreen(t)
	draw(s, ctrl)
	cells, w, _ := s.GetContents()
	var row strings.Builder
	for x := 0; x < w; x++ {
		c := cells[7*w+x]
		if len(c.Runes) > 0 {
			row.WriteRune(c.Runes[0])
		}
	}
	if !strings.HasPrefix(row.String(), "[ Stop ]") {
		t.Fatalf("button row = %q", row.String())
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	ctrl, _ := newController(t)
	s := newScreen(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- Run(ctx, s, ctrl, time.Millisecond) }()
	s.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}
	if !ctrl.Quit() || !ctrl.Paused() {
		t.Fatal("space and q were not delivered to the controller")
	}
}
