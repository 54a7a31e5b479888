package linenoise

// KeyType is the closed set of logical key events the decoder emits,
// per spec §4.2.
type KeyType int

const (
	KeyUnknown KeyType = iota
	// KeyPrintable carries a single grapheme cluster's raw UTF-8 bytes
	// in Event.Bytes (possibly a base codepoint plus coalesced
	// grapheme-extenders, per §4.2 step 2).
	KeyPrintable
	KeyEnter
	KeyBackspace
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlH
	KeyCtrlK
	KeyCtrlL
	KeyCtrlN
	KeyCtrlP
	KeyCtrlT
	KeyCtrlU
	KeyCtrlW
	KeyTab
	KeyBackTab
	KeyEscape
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyDelete
)

// String returns a short human-readable name, useful for the
// DebugKeyCodes diagnostic mode.
func (k KeyType) String() string {
	switch k {
	case KeyPrintable:
		return "Printable"
	case KeyEnter:
		return "Enter"
	case KeyBackspace:
		return "Backspace"
	case KeyCtrlA:
		return "Ctrl-A"
	case KeyCtrlB:
		return "Ctrl-B"
	case KeyCtrlC:
		return "Ctrl-C"
	case KeyCtrlD:
		return "Ctrl-D"
	case KeyCtrlE:
		return "Ctrl-E"
	case KeyCtrlF:
		return "Ctrl-F"
	case KeyCtrlH:
		return "Ctrl-H"
	case KeyCtrlK:
		return "Ctrl-K"
	case KeyCtrlL:
		return "Ctrl-L"
	case KeyCtrlN:
		return "Ctrl-N"
	case KeyCtrlP:
		return "Ctrl-P"
	case KeyCtrlT:
		return "Ctrl-T"
	case KeyCtrlU:
		return "Ctrl-U"
	case KeyCtrlW:
		return "Ctrl-W"
	case KeyTab:
		return "Tab"
	case KeyBackTab:
		return "BackTab"
	case KeyEscape:
		return "Escape"
	case KeyArrowUp:
		return "Up"
	case KeyArrowDown:
		return "Down"
	case KeyArrowLeft:
		return "Left"
	case KeyArrowRight:
		return "Right"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyDelete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// Event is a single decoded key event.
type Event struct {
	Type  KeyType
	Bytes []byte // populated for KeyPrintable only
}
