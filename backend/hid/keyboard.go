package hid

import (
	"io"
	"slices"
)

// KeyboardState is the keyboard report state: a modifier byte plus a 256-bit
// bitmap of held usages for N-key rollover.
type KeyboardState struct {
	Modifiers uint8     // bit 0-7: LCtrl, LShift, LAlt, LGui, RCtrl, RShift, RAlt, RGui
	KeyBitmap [32]uint8 // 256 bits for HID usage codes 0x00-0xFF
}

// Set marks usage as held or released. Modifier usages toggle their bit.
func (st *KeyboardState) Set(usage uint8, down bool) {
	if bit, ok := modifierBit(usage); ok {
		if down {
			st.Modifiers |= bit
		} else {
			st.Modifiers &^= bit
		}
		return
	}
	if down {
		st.KeyBitmap[usage/8] |= 1 << (usage % 8)
	} else {
		st.KeyBitmap[usage/8] &^= 1 << (usage % 8)
	}
}

// Held returns every held usage in ascending order, modifiers included as
// their 0xE0-0xE7 usages.
func (st *KeyboardState) Held() []uint8 {
	var out []uint8
	for i := 0; i < 256; i++ {
		if st.KeyBitmap[i/8]&(1<<uint(i%8)) != 0 {
			out = append(out, uint8(i))
		}
	}
	for i := 0; i < 8; i++ {
		if st.Modifiers&(1<<uint(i)) != 0 {
			out = append(out, UsageLeftCtrl+uint8(i))
		}
	}
	slices.Sort(out)
	return out
}

// pressed lists the held non-modifier usages in ascending order.
func (st *KeyboardState) pressed() []uint8 {
	var keys []uint8
	for i := 0; i < 256; i++ {
		if st.KeyBitmap[i/8]&(1<<uint(i%8)) != 0 {
			keys = append(keys, uint8(i))
		}
	}
	return keys
}

// BootReport encodes the state into the 8-byte boot protocol report. With
// more than six keys held every slot carries ErrorRollOver.
//
//	Byte 0: Modifiers
//	Byte 1: Reserved (0x00)
//	Bytes 2-7: Up to six key usages, lowest first
func (st KeyboardState) BootReport() []byte {
	b := make([]byte, 8)
	b[0] = st.Modifiers
	keys := st.pressed()
	if len(keys) > 6 {
		for i := 2; i < 8; i++ {
			b[i] = UsageErrorRollOver
		}
		return b
	}
	copy(b[2:], keys)
	return b
}

// BuildReport encodes the state into the 34-byte keyboard report.
//
// Report layout (34 bytes):
//
//	Byte 0: Modifiers (8 bits)
//	Byte 1: Reserved (0x00)
//	Bytes 2-33: Key bitmap (256 bits, 32 bytes)
func (st KeyboardState) BuildReport() []byte {
	b := make([]byte, 34)
	b[0] = st.Modifiers
	copy(b[2:34], st.KeyBitmap[:])
	return b
}

// MarshalBinary encodes the state to the variable-length stream format.
//
// Wire format:
//
//	Byte 0: Modifiers
//	Byte 1: Key count
//	Bytes 2+: Key codes (HID usage codes of pressed keys)
func (st *KeyboardState) MarshalBinary() ([]byte, error) {
	keys := st.pressed()
	b := make([]byte, 2+len(keys))
	b[0] = st.Modifiers
	b[1] = uint8(len(keys))
	copy(b[2:], keys)
	return b, nil
}

// UnmarshalBinary decodes the stream format produced by MarshalBinary.
func (st *KeyboardState) UnmarshalBinary(data []byte) error {
	if len(data) < 2 {
		return io.ErrUnexpectedEOF
	}
	n := int(data[1])
	if len(data) < 2+n {
		return io.ErrUnexpectedEOF
	}
	st.Modifiers = data[0]
	st.KeyBitmap = [32]uint8{}
	for _, usage := range data[2 : 2+n] {
		st.KeyBitmap[usage/8] |= 1 << (usage % 8)
	}
	return nil
}
