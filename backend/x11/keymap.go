package x11

import (
	"slices"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/Alia5/VISE/key"
)

const (
	keysymNoSymbol  xproto.Keysym = 0
	keysymShiftL    xproto.Keysym = 0xffe1
	keysymReturn    xproto.Keysym = 0xff0d
	keysymTab       xproto.Keysym = 0xff09
	keysymBackSpace xproto.Keysym = 0xff08
)

// keymap is a snapshot of the server's keycode to keysym table.
type keymap struct {
	min  xproto.Keycode
	per  int
	syms []xproto.Keysym
}

func (m keymap) count() int {
	if m.per == 0 {
		return 0
	}
	return len(m.syms) / m.per
}

func (m keymap) keysym(kc xproto.Keycode, col int) xproto.Keysym {
	i := (int(kc)-int(m.min))*m.per + col
	if kc < m.min || col >= m.per || i >= len(m.syms) {
		return keysymNoSymbol
	}
	return m.syms[i]
}

// lookup finds the lowest keycode producing sym, preferring column 0 (no
// modifier) over column 1 (Shift). Higher columns need modifiers XTEST
// callers cannot portably reach and are ignored.
func (m keymap) lookup(sym xproto.Keysym) (kc xproto.Keycode, shift bool, ok bool) {
	for col := 0; col < min(2, m.per); col++ {
		for i := 0; i < m.count(); i++ {
			c := m.min + xproto.Keycode(i)
			if m.keysym(c, col) == sym {
				return c, col == 1, true
			}
		}
	}
	return 0, false, false
}

// spare returns the highest keycode with no keysyms bound, for temporary
// remapping.
func (m keymap) spare() (xproto.Keycode, bool) {
	for i := m.count() - 1; i >= 0; i-- {
		c := m.min + xproto.Keycode(i)
		empty := true
		for col := 0; col < m.per; col++ {
			if m.keysym(c, col) != keysymNoSymbol {
				empty = false
				break
			}
		}
		if empty {
			return c, true
		}
	}
	return 0, false
}

// held converts a QueryKeymap bit vector into the column-0 keysyms of the
// pressed keycodes, sorted and without duplicates.
func (m keymap) held(bits []byte) []key.Code {
	var out []key.Code
	for i, b := range bits {
		for bit := 0; bit < 8; bit++ {
			if b&(1<<bit) == 0 {
				continue
			}
			sym := m.keysym(xproto.Keycode(i*8+bit), 0)
			if sym == keysymNoSymbol {
				continue
			}
			out = append(out, key.Code(sym))
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// runeKeysym maps a character to its keysym: Latin-1 keysyms equal the code
// point, everything else uses the 0x01000000 Unicode range.
func runeKeysym(r rune) xproto.Keysym {
	switch r {
	case '\n', '\r':
		return keysymReturn
	case '\t':
		return keysymTab
	case '\b':
		return keysymBackSpace
	}
	if (r >= 0x20 && r <= 0x7e) || (r >= 0xa0 && r <= 0xff) {
		return xproto.Keysym(r)
	}
	return xproto.Keysym(0x01000000 | uint32(r))
}
