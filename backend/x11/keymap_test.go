package x11

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"

	"github.com/Alia5/VISE/key"
)

// testKeymap builds a 2-column map starting at keycode 8:
//
//	8:  a A
//	9:  1 !
//	10: Shift_L
//	11: (empty)
//	12: Return
//	13: (empty)
func testKeymap() keymap {
	return keymap{
		min: 8,
		per: 2,
		syms: []xproto.Keysym{
			'a', 'A',
			'1', '!',
			keysymShiftL, 0,
			0, 0,
			keysymReturn, 0,
			0, 0,
		},
	}
}

func TestKeymapLookup(t *testing.T) {
	m := testKeymap()
	tests := []struct {
		name  string
		sym   xproto.Keysym
		kc    xproto.Keycode
		shift bool
		ok    bool
	}{
		{name: "column 0", sym: 'a', kc: 8, ok: true},
		{name: "column 1 needs shift", sym: 'A', kc: 8, shift: true, ok: true},
		{name: "shifted digit", sym: '!', kc: 9, shift: true, ok: true},
		{name: "modifier", sym: keysymShiftL, kc: 10, ok: true},
		{name: "missing", sym: 'z', ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kc, shift, ok := m.lookup(tt.sym)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.kc, kc)
			assert.Equal(t, tt.shift, shift)
		})
	}
}

func TestKeymapSpare(t *testing.T) {
	kc, ok := testKeymap().spare()
	assert.True(t, ok)
	assert.Equal(t, xproto.Keycode(13), kc)

	_, ok = keymap{min: 8, per: 1, syms: []xproto.Keysym{'a'}}.spare()
	assert.False(t, ok)
}

func TestKeymapHeld(t *testing.T) {
	m := testKeymap()
	bits := make([]byte, 32)
	bits[1] = 1<<0 | 1<<2 | 1<<3 | 1<<4 // keycodes 8, 10, 11, 12
	assert.Equal(t, []key.Code{key.Code('a'), key.Code(keysymReturn), key.Code(keysymShiftL)}, m.held(bits))

	assert.Empty(t, m.held(make([]byte, 32)))
}

func TestKeymapOutOfRange(t *testing.T) {
	m := testKeymap()
	assert.Equal(t, keysymNoSymbol, m.keysym(7, 0))
	assert.Equal(t, keysymNoSymbol, m.keysym(200, 0))
	assert.Equal(t, keysymNoSymbol, m.keysym(8, 5))
	assert.Zero(t, keymap{}.count())
}

func TestRuneKeysym(t *testing.T) {
	tests := []struct {
		r    rune
		want xproto.Keysym
	}{
		{'a', 0x61},
		{'~', 0x7e},
		{'é', 0xe9},
		{'\n', keysymReturn},
		{'\t', keysymTab},
		{'€', 0x010020ac},
		{'😀', 0x0101f600},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, runeKeysym(tt.r), "%q", tt.r)
	}
}

func TestCatalogLettersAreColumnZeroKeysyms(t *testing.T) {
	for k := key.A; k <= key.Z; k++ {
		assert.Equal(t, key.Code(runeKeysym(rune('a'+(k-key.A)))), key.X11.Resolve(k))
	}
}
