package edit

// Key is a normalized, platform-independent keystroke tag.
type Key int

const (
	// KeyChar indicates a printable character; the caller decodes it via
	// ParseChar from the byte(s) that produced the event.
	KeyChar Key = iota
	// KeyUnknown indicates an unparsable or unrecognized sequence.
	KeyUnknown
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyEnd
	KeyHome
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyTab
	KeyInterrupt
)

// String returns a human-readable name for k.
func (k Key) String() string {
	switch k {
	case KeyChar:
		return "Char"
	case KeyUnknown:
		return "Unknown"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyRight:
		return "Right"
	case KeyLeft:
		return "Left"
	case KeyEnd:
		return "End"
	case KeyHome:
		return "Home"
	case KeyEnter:
		return "Enter"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyTab:
		return "Tab"
	case KeyInterrupt:
		return "Interrupt"
	default:
		return "Unknown"
	}
}

// Modifier is a bitmask of active modifier keys. Multiple modifiers can
// be combined with bitwise OR.
type Modifier int

const (
	ModNone Modifier = 0
	ModCtrl Modifier = 1 << iota
	ModShift
	ModAlt
)

// iota above starts at 1 for ModCtrl since ModNone consumes iota 0,
// giving ModCtrl=2, ModShift=4, ModAlt=8 — all distinct bits.

// Has reports whether m includes mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// KeyEvent is a normalized keystroke: exactly one Key tag plus zero or
// more modifiers.
type KeyEvent struct {
	Key       Key
	Modifiers Modifier
}

// charEvent is a convenience constructor for a plain character event.
func charEvent(mod Modifier) KeyEvent {
	return KeyEvent{Key: KeyChar, Modifiers: mod}
}

func keyEvent(k Key, mod Modifier) KeyEvent {
	return KeyEvent{Key: k, Modifiers: mod}
}
