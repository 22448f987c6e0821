package selector

import (
	"bufio"
)

// Key is a decoded keystroke the prompt reacts to.
type Key int

const (
	// KeyOther is any input the prompt ignores.
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyToggle
	KeyToggleAll
	KeyConfirm
	KeyInterrupt
)

const (
	esc    = 0x1b
	ctrlC  = 0x03
	space  = ' '
	cr     = '\r'
	lf     = '\n'
	csiCmd = '['
)

// String returns a short name for the key, used in debug output.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyToggle:
		return "toggle"
	case KeyToggleAll:
		return "toggle-all"
	case KeyConfirm:
		return "confirm"
	case KeyInterrupt:
		return "interrupt"
	default:
		return "other"
	}
}

// readKey reads one keystroke from r.
//
// Arrow keys arrive as the three byte sequence ESC [ A/B. A terminal in raw
// mode delivers the whole sequence in a single read, so the remaining bytes
// are already buffered when ESC is seen. A lone ESC (nothing buffered behind
// it) decodes to KeyOther instead of blocking for more input.
func readKey(r *bufio.Reader) (Key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return KeyOther, err
	}

	switch b {
	case 'k':
		return KeyUp, nil
	case 'j':
		return KeyDown, nil
	case space:
		return KeyToggle, nil
	case 'a':
		return KeyToggleAll, nil
	case cr, lf:
		return KeyConfirm, nil
	case ctrlC:
		return KeyInterrupt, nil
	case esc:
		return readEscape(r), nil
	}
	return KeyOther, nil
}

// readEscape decodes the bytes after ESC from what is already buffered. A
// sequence split across reads (a slow remote link) is not reassembled: its
// bytes decode as KeyOther one by one, so the arrow is dropped but no other
// key fires. Waiting for the rest would make a lone ESC block the prompt.
func readEscape(r *bufio.Reader) Key {
	if r.Buffered() < 2 {
		return KeyOther
	}
	seq, err := r.Peek(2)
	if err != nil || seq[0] != csiCmd {
		return KeyOther
	}

	var key Key
	switch seq[1] {
	case 'A':
		key = KeyUp
	case 'B':
		key = KeyDown
	default:
		// Other CSI sequences (right/left arrows, function keys) are consumed
		// up to their final byte so they do not leak into later reads.
		_, _ = r.Discard(1)
		discardCSI(r)
		return KeyOther
	}
	_, _ = r.Discard(2)
	return key
}

// discardCSI drops parameter bytes up to and including the final byte of a
// control sequence, stopping early if nothing more is buffered.
func discardCSI(r *bufio.Reader) {
	for r.Buffered() > 0 {
		b, err := r.ReadByte()
		if err != nil {
			return
		}
		if b >= 0x40 && b <= 0x7e {
			return
		}
	}
}
