package linenoise

// This file implements the Key Decoder of spec §4.2: a byte-stream to
// logical-Key-event state machine with mandatory escape-sequence
// timeout discipline. Grounded on
// _examples/flynn-flynn/vendor/github.com/tiborvass/uniline/keymap.go
// and core.go's "assemble bytes, look up, reset on match or timeout"
// shape, and on
// _examples/joeycumines-go-utilpkg/prompt/termtest/key.go's
// sequence-to-name table (used here in reverse).

// DefaultEscapeTimeoutMs is the recommended escape-sequence timeout
// from spec §4.2 (100ms).
const DefaultEscapeTimeoutMs = 100

// Decoder turns a byte stream from a Reader into logical Key events.
type Decoder struct {
	r               Reader
	escapeTimeoutMs int
	pending         []byte // pushback queue of bytes read ahead but not consumed
}

// NewDecoder returns a Decoder reading from r. A non-positive
// escapeTimeoutMs falls back to DefaultEscapeTimeoutMs.
func NewDecoder(r Reader, escapeTimeoutMs int) *Decoder {
	if escapeTimeoutMs <= 0 {
		escapeTimeoutMs = DefaultEscapeTimeoutMs
	}
	return &Decoder{r: r, escapeTimeoutMs: escapeTimeoutMs}
}

func (d *Decoder) readByte(timeoutMs int) (byte, bool, error) {
	if len(d.pending) > 0 {
		b := d.pending[0]
		d.pending = d.pending[1:]
		return b, true, nil
	}
	return d.r.ReadByte(timeoutMs)
}

func (d *Decoder) unreadByte(b byte) {
	d.pending = append(d.pending, 0)
	copy(d.pending[1:], d.pending)
	d.pending[0] = b
}

// Next blocks (indefinitely) until one complete key event has been
// decoded, or returns an error from the underlying Reader.
func (d *Decoder) Next() (Event, error) {
	b, ok, err := d.readByte(-1)
	if err != nil {
		return Event{}, err
	}
	if !ok {
		// Blocking reads never time out; treat as a spurious wakeup.
		return d.Next()
	}
	return d.decode(b)
}

func (d *Decoder) decode(b byte) (Event, error) {
	switch {
	case b == 0x1B:
		return d.decodeEscape()
	case b < 0x20 || b == 0x7F:
		return Event{Type: decodeControl(b)}, nil
	case b&0x80 != 0:
		return d.decodeUTF8(b)
	default:
		return d.decodeUTF8(b)
	}
}

func decodeControl(b byte) KeyType {
	switch b {
	case 0x01:
		return KeyCtrlA
	case 0x02:
		return KeyCtrlB
	case 0x03:
		return KeyCtrlC
	case 0x04:
		return KeyCtrlD
	case 0x05:
		return KeyCtrlE
	case 0x06:
		return KeyCtrlF
	case 0x08:
		return KeyCtrlH
	case 0x09:
		return KeyTab
	case 0x0B:
		return KeyCtrlK
	case 0x0C:
		return KeyCtrlL
	case 0x0D:
		return KeyEnter
	case 0x0E:
		return KeyCtrlN
	case 0x10:
		return KeyCtrlP
	case 0x14:
		return KeyCtrlT
	case 0x15:
		return KeyCtrlU
	case 0x17:
		return KeyCtrlW
	case 0x7F:
		return KeyBackspace
	default:
		return KeyUnknown
	}
}

// decodeEscape implements spec §4.2 step 3: a lone ESC with no
// follow-up byte within the timeout is a standalone Escape; a "["
// follow-up reads a CSI sequence to its final byte; an "O" follow-up
// reads one SS3 byte.
func (d *Decoder) decodeEscape() (Event, error) {
	b, ok, err := d.readByte(d.escapeTimeoutMs)
	if err != nil {
		return Event{}, err
	}
	if !ok {
		return Event{Type: KeyEscape}, nil
	}

	switch b {
	case '[':
		return d.decodeCSI()
	case 'O':
		return d.decodeSS3()
	default:
		// Unrecognized escape lead byte: discard silently (spec §4.2).
		return Event{Type: KeyUnknown}, nil
	}
}

func (d *Decoder) decodeCSI() (Event, error) {
	var digits []byte
	for {
		b, ok, err := d.readByte(d.escapeTimeoutMs)
		if err != nil {
			return Event{}, err
		}
		if !ok {
			// Incomplete sequence: discard silently.
			return Event{Type: KeyUnknown}, nil
		}
		switch {
		case b >= '0' && b <= '9' || b == ';':
			digits = append(digits, b)
			continue
		case b == '~':
			return Event{Type: csiTildeKey(digits)}, nil
		case b == 'A':
			return Event{Type: KeyArrowUp}, nil
		case b == 'B':
			return Event{Type: KeyArrowDown}, nil
		case b == 'C':
			return Event{Type: KeyArrowRight}, nil
		case b == 'D':
			return Event{Type: KeyArrowLeft}, nil
		case b == 'H':
			return Event{Type: KeyHome}, nil
		case b == 'F':
			return Event{Type: KeyEnd}, nil
		case b == 'Z':
			return Event{Type: KeyBackTab}, nil
		default:
			// Any other final byte: discard silently.
			return Event{Type: KeyUnknown}, nil
		}
	}
}

func csiTildeKey(digits []byte) KeyType {
	switch string(digits) {
	case "1", "7":
		return KeyHome
	case "4", "8":
		return KeyEnd
	case "3":
		return KeyDelete
	default:
		return KeyUnknown
	}
}

func (d *Decoder) decodeSS3() (Event, error) {
	b, ok, err := d.readByte(d.escapeTimeoutMs)
	if err != nil {
		return Event{}, err
	}
	if !ok {
		return Event{Type: KeyUnknown}, nil
	}
	switch b {
	case 'H':
		return Event{Type: KeyHome}, nil
	case 'F':
		return Event{Type: KeyEnd}, nil
	default:
		return Event{Type: KeyUnknown}, nil
	}
}

// decodeUTF8 assembles one printable grapheme cluster: the leading
// codepoint (blocking on its continuation bytes, since they should
// already be in flight from the same keystroke or paste), then zero
// or more additional grapheme-extending codepoints coalesced in using
// the same short timeout as escape sequences (spec §4.2 step 2), so
// paste of pre-composed diacritics coalesces without stalling
// interactive typing of a lone base character.
func (d *Decoder) decodeUTF8(lead byte) (Event, error) {
	n := byteLenOfLeader(lead)
	buf := make([]byte, 1, n+4)
	buf[0] = lead
	for i := 1; i < n; i++ {
		b, ok, err := d.readByte(-1)
		if err != nil {
			return Event{}, err
		}
		if !ok {
			break
		}
		buf = append(buf, b)
	}

	lastWasZWJ := false
	for {
		lead2, ok, err := d.readByte(d.escapeTimeoutMs)
		if err != nil {
			return Event{}, err
		}
		if !ok {
			break
		}
		if lead2 < 0x80 && !lastWasZWJ {
			// Plain ASCII never extends a cluster; push it back.
			d.unreadByte(lead2)
			break
		}
		n2 := byteLenOfLeader(lead2)
		cbuf := make([]byte, 1, n2)
		cbuf[0] = lead2
		for i := 1; i < n2; i++ {
			b, ok, err := d.readByte(-1)
			if err != nil {
				return Event{}, err
			}
			if !ok {
				break
			}
			cbuf = append(cbuf, b)
		}
		cp, size := decodeAt(cbuf, 0)
		if size == 0 {
			d.unreadAll(cbuf)
			break
		}
		if isGraphemeExtender(cp) || lastWasZWJ {
			buf = append(buf, cbuf...)
			lastWasZWJ = isZWJ(cp)
			continue
		}
		if isZWJ(cp) {
			buf = append(buf, cbuf...)
			lastWasZWJ = true
			continue
		}
		// Not an extender and no preceding ZWJ: this codepoint starts
		// a new cluster; push its bytes back for the next call.
		d.unreadAll(cbuf)
		break
	}

	return Event{Type: KeyPrintable, Bytes: buf}, nil
}

func (d *Decoder) unreadAll(b []byte) {
	for i := len(b) - 1; i >= 0; i-- {
		d.unreadByte(b[i])
	}
}
