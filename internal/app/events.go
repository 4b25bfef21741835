package app

// EventKind classifies input events fed to the Controller.
type EventKind int

const (
	// EventQuit asks the loop to stop.
	EventQuit EventKind = iota + 1
	// EventPointerPress is a primary pointer press at X, Y (pixels).
	EventPointerPress
	// EventKeyPress is a key press with modifier flags.
	EventKeyPress
)

// Key identifies the keys the Controller reacts to.
type Key int

const (
	// KeyUnknown is any key without a binding.
	KeyUnknown Key = iota
	// KeyS saves when combined with ModCtrl.
	KeyS
	// KeyL loads when combined with ModCtrl.
	KeyL
	// KeySpace toggles pause.
	KeySpace
	// KeyN advances one generation while paused.
	KeyN
	// KeyR reseeds the grid.
	KeyR
	// KeyC clears the grid.
	KeyC
	// KeyG toggles grid lines.
	KeyG
	// KeyQ quits.
	KeyQ
	// KeyEscape quits.
	KeyEscape
	// KeyPlus lengthens the tick interval.
	KeyPlus
	// KeyMinus shortens the tick interval.
	KeyMinus
)

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	// ModCtrl is set while Control (or Command on macOS) is held.
	ModCtrl Modifier = 1 << iota
)

// Event is a single frontend-neutral input event.
type Event struct {
	Kind EventKind
	X, Y int
	Key  Key
	Mods Modifier
}

// QuitEvent builds a quit event.
func QuitEvent() Event { return Event{Kind: EventQuit} }

// PressEvent builds a pointer press at pixel (x, y).
func PressEvent(x, y int) Event { return Event{Kind: EventPointerPress, X: x, Y: y} }

// KeyEvent builds a key press.
func KeyEvent(k Key, mods Modifier) Event { return Event{Kind: EventKeyPress, Key: k, Mods: mods} }
