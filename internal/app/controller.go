package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/logging"
	"lifegrid/internal/persist"
)

const (
	tickIntervalStep = 50 * time.Millisecond
	minTickInterval  = 50 * time.Millisecond
	maxTickInterval  = 2 * time.Second
)

// Options configures a Controller.
type Options struct {
	Layout       core.Layout
	Button       core.Rect
	SavePath     string
	TickInterval time.Duration
	Start        time.Time
	Logger       *slog.Logger
	// Seed supplies seeds for interactive reseeding; defaults to the clock.
	Seed func() int64
}

// OptionsFromConfig derives controller options from cfg.
func OptionsFromConfig(cfg *Config, logger *slog.Logger, start time.Time) Options {
	return Options{
		Layout:       cfg.Layout(),
		Button:       cfg.ButtonRect(),
		SavePath:     cfg.SavePath,
		TickInterval: cfg.TickInterval,
		Start:        start,
		Logger:       logger,
	}
}

// Controller turns input events into simulation commands and owns the pause
// flag and tick scheduler. It is driven from a single loop: Frame handles the
// pending events and then lets the scheduler advance the simulation.
type Controller struct {
	sim      core.Sim
	sched    *core.Scheduler
	layout   core.Layout
	button   core.Rect
	savePath string
	seed     func() int64
	log      *slog.Logger

	paused    bool
	stepOnce  bool
	quit      bool
	gridLines bool
	status    string
}

// NewController wires sim to a scheduler and the input mapping in opts.
func NewController(sim core.Sim, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	seed := opts.Seed
	if seed == nil {
		seed = func() int64 { return time.Now().UnixNano() }
	}
	savePath := opts.SavePath
	if savePath == "" {
		savePath = persist.DefaultPath
	}
	return &Controller{
		sim:       sim,
		sched:     core.NewScheduler(sim, opts.TickInterval, opts.Start),
		layout:    opts.Layout,
		button:    opts.Button,
		savePath:  savePath,
		seed:      seed,
		log:       logger,
		gridLines: true,
	}
}

// Frame processes events, then advances the simulation if a tick is due.
// It returns false once a quit was requested.
func (c *Controller) Frame(now time.Time, events []Event) bool {
	for _, ev := range events {
		c.Handle(ev)
	}
	if c.quit {
		return false
	}
	if c.stepOnce {
		c.stepOnce = false
		if c.paused {
			c.sim.Step()
			c.log.Debug("single step", "generation", c.sim.Generation())
		}
	}
	if c.sched.Update(now, c.paused) {
		c.log.Log(context.Background(), logging.LevelTrace, "tick", "generation", c.sim.Generation())
	}
	return true
}

// Handle applies a single input event.
func (c *Controller) Handle(ev Event) {
	switch ev.Kind {
	case EventQuit:
		c.quit = true
	case EventPointerPress:
		c.press(ev.X, ev.Y)
	case EventKeyPress:
		c.key(ev.Key, ev.Mods)
	}
}

func (c *Controller) press(px, py int) {
	if c.button.Contains(px, py) {
		c.TogglePause()
		return
	}
	if !c.layout.GridRect().Contains(px, py) {
		return
	}
	cx, cy := c.layout.PixelToCell(px, py)
	if err := c.sim.Toggle(cx, cy); err != nil {
		c.log.Debug("ignoring toggle", "x", cx, "y", cy, "error", err)
	}
}

func (c *Controller) key(k Key, mods Modifier) {
	ctrl := mods&ModCtrl != 0
	switch {
	case k == KeyS && ctrl:
		_ = c.Save()
	case k == KeyL && ctrl:
		_ = c.Load()
	case ctrl:
		// other Control chords are not bound
	case k == KeySpace:
		c.TogglePause()
	case k == KeyN:
		c.stepOnce = true
	case k == KeyR:
		c.Reseed(c.seed())
	case k == KeyC:
		c.Clear()
	case k == KeyG:
		c.gridLines = !c.gridLines
	case k == KeyPlus:
		c.SetTickInterval(c.sched.Interval() + tickIntervalStep)
	case k == KeyMinus:
		c.SetTickInterval(c.sched.Interval() - tickIntervalStep)
	case k == KeyQ || k == KeyEscape:
		c.quit = true
	}
}

// TogglePause flips the pause flag.
func (c *Controller) TogglePause() {
	c.paused = !c.paused
	c.log.Info("pause toggled", "paused", c.paused, "generation", c.sim.Generation())
}

// Paused reports whether the scheduler is gated.
func (c *Controller) Paused() bool { return c.paused }

// Quit reports whether a quit was requested.
func (c *Controller) Quit() bool { return c.quit }

// GridLines reports whether frontends should outline cells.
func (c *Controller) GridLines() bool { return c.gridLines }

// Snapshot returns the latest completed generation.
func (c *Controller) Snapshot() *core.Grid { return c.sim.Snapshot() }

// Layout returns the pixel/cell geometry used for input mapping.
func (c *Controller) Layout() core.Layout { return c.layout }

// Button returns the Start/Stop control rectangle.
func (c *Controller) Button() core.Rect { return c.button }

// Status returns the most recent user-facing message.
func (c *Controller) Status() string { return c.status }

// SavePath returns the snapshot file used by Save and Load.
func (c *Controller) SavePath() string { return c.savePath }

// Save writes the current grid to the snapshot file.
func (c *Controller) Save() error {
	if err := persist.Save(c.savePath, c.sim.Snapshot()); err != nil {
		c.report("save failed", err)
		return err
	}
	c.status = "saved to " + c.savePath
	c.log.Info("grid saved", "path", c.savePath, "generation", c.sim.Generation())
	return nil
}

// Load replaces the grid with the snapshot file. On failure the grid is unchanged.
func (c *Controller) Load() error {
	header, err := persist.Load(c.savePath, c.sim)
	if err != nil {
		c.report("load failed", err)
		return err
	}
	c.status = "loaded " + c.savePath
	c.log.Info("grid loaded", "path", c.savePath, "alive", header.Alive, "saved_at", header.CreatedAt)
	return nil
}

// Reseed randomizes the grid.
func (c *Controller) Reseed(seed int64) {
	c.sim.Reset(seed)
	c.status = "reseeded"
	c.log.Info("grid reseeded", "seed", seed)
}

// Clear kills every cell.
func (c *Controller) Clear() {
	c.sim.Clear()
	c.status = "cleared"
	c.log.Info("grid cleared")
}

// SetTickInterval clamps and applies a new tick interval.
func (c *Controller) SetTickInterval(d time.Duration) {
	if d < minTickInterval {
		d = minTickInterval
	}
	if d > maxTickInterval {
		d = maxTickInterval
	}
	c.sched.SetInterval(d)
	c.status = "tick " + d.String()
	c.log.Debug("tick interval changed", "interval", d)
}

// TickInterval returns the scheduler interval.
func (c *Controller) TickInterval() time.Duration { return c.sched.Interval() }

// Parameters merges the simulation's values with the controller's run state.
func (c *Controller) Parameters() core.ParameterSnapshot {
	var snap core.ParameterSnapshot
	if provider, ok := c.sim.(core.ParameterProvider); ok {
		snap = provider.Parameters()
	}
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Control",
		Params: []core.Parameter{
			{Key: "paused", Label: "Paused", Type: core.ParamTypeBool, Value: strconv.FormatBool(c.paused)},
			{Key: "tick_interval", Label: "Tick", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(c.sched.Interval().Seconds(), 'f', -1, 64)},
		},
	})
	return snap
}

func (c *Controller) report(what string, err error) {
	c.status = what + ": " + describe(err)
	switch {
	case errors.Is(err, persist.ErrIO):
		c.log.Error(what, "path", c.savePath, "error", err)
	default:
		c.log.Warn(what, "path", c.savePath, "error", err)
	}
}

func describe(err error) string {
	switch {
	case errors.Is(err, persist.ErrFileNotFound):
		return "no saved game"
	case errors.Is(err, core.ErrShapeMismatch):
		var sm *core.ShapeMismatchError
		if errors.As(err, &sm) {
			return fmt.Sprintf("saved grid is %s, need %s", sm.Got, sm.Want)
		}
		return "saved grid has a different size"
	case errors.Is(err, persist.ErrDecode):
		return "file is corrupt or not a saved game"
	case errors.Is(err, persist.ErrIO):
		return "file i/o failed"
	default:
		return err.Error()
	}
}
