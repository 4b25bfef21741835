package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/persist"
	"lifegrid/internal/sims/life"
)

var t0 = time.Unix(1_700_000_000, 0)

func newTestController(t *testing.T) (*Controller, *life.Life) {
	t.Helper()
	cfg := NewConfig()
	cfg.SavePath = filepath.Join(t.TempDir(), persist.DefaultPath)
	sim := life.NewWithConfig(cfg.LifeConfig())
	sim.Reset(1)
	opts := OptionsFromConfig(cfg, nil, t0)
	opts.Seed = func() int64 { return 99 }
	return NewController(sim, opts), sim
}

func at(d time.Duration) time.Time { return t0.Add(d) }

func TestFrameAdvancesOnInterval(t *testing.T) {
	c, sim := newTestController(t)
	if !c.Frame(at(100*time.Millisecond), nil) {
		t.Fatal("Frame reported quit")
	}
	if sim.Generation() != 0 {
		t.Fatal("advanced before the tick interval")
	}
	c.Frame(at(500*time.Millisecond), nil)
	if sim.Generation() != 1 {
		t.Fatalf("generation = %d after one interval, want 1", sim.Generation())
	}
	c.Frame(at(30*time.Second), nil)
	if sim.Generation() != 2 {
		t.Fatalf("generation = %d after a long stall, want 2 (no catch-up)", sim.Generation())
	}
}

func TestPausedFramesNeverChangeGrid(t *testing.T) {
	c, sim := newTestController(t)
	c.Frame(at(0), []Event{KeyEvent(KeySpace, 0)})
	if !c.Paused() {
		t.Fatal("space must pause")
	}
	before := sim.Snapshot()
	for i := 1; i <= 50; i++ {
		c.Frame(at(time.Duration(i)*time.Second), nil)
	}
	if !before.Equal(sim.Snapshot()) {
		t.Fatal("grid changed while paused")
	}
	c.Frame(at(51*time.Second), []Event{KeyEvent(KeySpace, 0)})
	if c.Paused() {
		t.Fatal("toggling pause twice must restore the running state")
	}
}

func TestButtonTogglesPause(t *testing.T) {
	c, sim := newTestController(t)
	b := c.Button()
	before := sim.Snapshot()
	c.Frame(at(0), []Event{PressEvent(b.X+1, b.Y+1)})
	if !c.Paused() {
		t.Fatal("pressing the control must pause")
	}
	if !before.Equal(sim.Snapshot()) {
		t.Fatal("pressing the control must not toggle the cell beneath it")
	}
	c.Frame(at(0), []Event{PressEvent(b.X+b.W-1, b.Y+b.H-1)})
	if c.Paused() {
		t.Fatal("second press must resume")
	}
}

func TestPointerTogglesCell(t *testing.T) {
	c, sim := newTestController(t)
	before := sim.Snapshot().At(3, 2)
	c.Frame(at(0), []Event{PressEvent(65, 47)})
	if got := sim.Snapshot().At(3, 2); got != before.Flip() {
		t.Fatalf("cell (3,2) = %v, want %v", got, before.Flip())
	}
	c.Frame(at(0), []Event{PressEvent(79, 59)})
	if got := sim.Snapshot().At(3, 2); got != before {
		t.Fatal("second press on the same cell must restore it")
	}
}

func TestPressOutsideGridIgnored(t *testing.T) {
	cfg := NewConfig()
	cfg.ScreenWidth = 810
	sim := life.NewWithConfig(cfg.LifeConfig())
	sim.Reset(2)
	c := NewController(sim, OptionsFromConfig(cfg, nil, t0))
	before := sim.Snapshot()
	c.Frame(at(0), []Event{PressEvent(805, 10), PressEvent(-3, 10), PressEvent(10, 700)})
	if !before.Equal(sim.Snapshot()) {
		t.Fatal("presses outside the grid must not change it")
	}
}

func TestSaveLoadKeys(t *testing.T) {
	c, sim := newTestController(t)
	c.Frame(at(0), []Event{KeyEvent(KeySpace, 0)})
	saved := sim.Snapshot()

	c.Frame(at(0), []Event{KeyEvent(KeyS, ModCtrl)})
	if _, err := os.Stat(c.SavePath()); err != nil {
		t.Fatalf("ctrl+s did not write the snapshot: %v", err)
	}
	if !strings.HasPrefix(c.Status(), "saved") {
		t.Fatalf("status = %q", c.Status())
	}

	c.Frame(at(0), []Event{KeyEvent(KeyR, 0)})
	if saved.Equal(sim.Snapshot()) {
		t.Fatal("reseed should produce a different board")
	}

	c.Frame(at(0), []Event{KeyEvent(KeyL, ModCtrl)})
	if !saved.Equal(sim.Snapshot()) {
		t.Fatal("ctrl+l must restore the saved board")
	}
}

func TestPlainSAndLDoNothing(t *testing.T) {
	c, sim := newTestController(t)
	c.Frame(at(0), []Event{KeyEvent(KeySpace, 0)})
	before := sim.Snapshot()
	c.Frame(at(0), []Event{KeyEvent(KeyS, 0), KeyEvent(KeyL, 0)})
	if _, err := os.Stat(c.SavePath()); !os.IsNotExist(err) {
		t.Fatal("plain s must not save")
	}
	if !before.Equal(sim.Snapshot()) {
		t.Fatal("plain keys changed the grid")
	}
}

func TestLoadFailuresAreRecoverable(t *testing.T) {
	c, sim := newTestController(t)
	c.Frame(at(0), []Event{KeyEvent(KeySpace, 0)})
	before := sim.Snapshot()

	err := c.Load()
	if !errors.Is(err, persist.ErrFileNotFound) {
		t.Fatalf("Load() error = %v, want ErrFileNotFound", err)
	}
	if c.Status() != "load failed: no saved game" {
		t.Fatalf("status = %q", c.Status())
	}

	small := life.New(10, 10)
	small.Reset(4)
	if err := persist.Save(c.SavePath(), small.Snapshot()); err != nil {
		t.Fatal(err)
	}
	err = c.Load()
	if !errors.Is(err, core.ErrShapeMismatch) {
		t.Fatalf("Load() error = %v, want ErrShapeMismatch", err)
	}
	if !strings.Contains(c.Status(), "10x10") {
		t.Fatalf("status = %q", c.Status())
	}

	if err := os.WriteFile(c.SavePath(), []byte("garbage"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := c.Load(); !errors.Is(err, persist.ErrDecode) {
		t.Fatalf("Load() error = %v, want ErrDecode", err)
	}

	if !before.Equal(sim.Snapshot()) {
		t.Fatal("failed loads modified the grid")
	}
	if !c.Frame(at(time.Second), nil) {
		t.Fatal("loop must keep running after load failures")
	}
}

func TestSaveFailureIsRecoverable(t *testing.T) {
	cfg := NewConfig()
	cfg.SavePath = filepath.Join(t.TempDir(), "missing", "state")
	sim := life.NewWithConfig(cfg.LifeConfig())
	c := NewController(sim, OptionsFromConfig(cfg, nil, t0))
	if err := c.Save(); !errors.Is(err, persist.ErrIO) {
		t.Fatalf("Save() error = %v, want ErrIO", err)
	}
	if !strings.HasPrefix(c.Status(), "save failed") {
		t.Fatalf("status = %q", c.Status())
	}
	if !c.Frame(at(time.Second), nil) {
		t.Fatal("loop must keep running after a save failure")
	}
}

func TestQuit(t *testing.T) {
	for _, ev := range []Event{QuitEvent(), KeyEvent(KeyQ, 0), KeyEvent(KeyEscape, 0)} {
		c, sim := newTestController(t)
		if c.Frame(at(time.Second), []Event{ev}) {
			t.Fatalf("event %+v did not stop the loop", ev)
		}
		if sim.Generation() != 0 {
			t.Fatal("no generation may advance in the quitting frame")
		}
	}
}

func TestStepOnceWhilePaused(t *testing.T) {
	c, sim := newTestController(t)
	c.Frame(at(0), []Event{KeyEvent(KeySpace, 0)})
	c.Frame(at(0), []Event{KeyEvent(KeyN, 0)})
	if sim.Generation() != 1 {
		t.Fatalf("generation = %d after single step, want 1", sim.Generation())
	}
	c.Frame(at(10*time.Second), nil)
	if sim.Generation() != 1 {
		t.Fatal("single step must not resume the simulation")
	}
}

func TestClearAndGridLines(t *testing.T) {
	c, sim := newTestController(t)
	sim.Step()
	c.Frame(at(0), []Event{KeyEvent(KeyC, 0)})
	if sim.Snapshot().Alive() != 0 {
		t.Fatal("clear must kill every cell")
	}
	if sim.Generation() != 0 || c.Status() != "cleared" {
		t.Fatalf("after clear: generation %d, status %q", sim.Generation(), c.Status())
	}
	if !c.GridLines() {
		t.Fatal("grid lines default on")
	}
	c.Frame(at(0), []Event{KeyEvent(KeyG, 0)})
	if c.GridLines() {
		t.Fatal("g must toggle grid lines")
	}
}

func TestTickIntervalAdjustment(t *testing.T) {
	c, _ := newTestController(t)
	c.Frame(at(0), []Event{KeyEvent(KeyMinus, 0)})
	if c.TickInterval() != 450*time.Millisecond {
		t.Fatalf("interval = %v after minus", c.TickInterval())
	}
	for i := 0; i < 20; i++ {
		c.Handle(KeyEvent(KeyMinus, 0))
	}
	if c.TickInterval() != minTickInterval {
		t.Fatalf("interval = %v, want clamp at %v", c.TickInterval(), minTickInterval)
	}
	c.SetTickInterval(250 * time.Millisecond)
	p, ok := c.Parameters().Lookup("tick_interval")
	if !ok || p.Value != "0.25" {
		t.Fatalf("tick_interval parameter = %+v", p)
	}
	if _, ok := c.Parameters().Lookup("generation"); !ok {
		t.Fatal("simulation parameters missing from the merged snapshot")
	}
}
