package hid

import (
	"io"
)

// MouseState is the mouse report state.
type MouseState struct {
	// Button bitfield: bit 0=Left, 1=Right, 2=Middle, 3=Back, 4=Forward
	Buttons uint8
	// Relative movement
	DX, DY int16
	// Vertical wheel, positive is away from the user (scroll up)
	Wheel int16
	// Horizontal wheel, positive is right
	Pan int16
}

// BuildReport encodes the state into the 9-byte mouse report.
//
// Report layout (9 bytes):
//
//	Byte 0: Button bitfield (bits 5-7 padding)
//	Bytes 1-2: DX (int16 little-endian)
//	Bytes 3-4: DY (int16 little-endian)
//	Bytes 5-6: Wheel (int16 little-endian)
//	Bytes 7-8: Pan (int16 little-endian)
func (m *MouseState) BuildReport() []byte {
	b, _ := m.MarshalBinary()
	b[0] &= 0x1F
	return b
}

// BootReport encodes the state into the 4-byte boot mouse report with a
// wheel byte. Only the first three buttons exist; deltas saturate at the
// int8 range.
//
//	Byte 0: Button bitfield (bits 3-7 padding)
//	Byte 1: DX (int8)
//	Byte 2: DY (int8)
//	Byte 3: Wheel (int8)
func (m *MouseState) BootReport() []byte {
	return []byte{m.Buttons & 0x07, saturate8(m.DX), saturate8(m.DY), saturate8(m.Wheel)}
}

func saturate8(v int16) byte {
	return byte(int8(max(min(v, 127), -127)))
}

// MarshalBinary encodes the state to the 9-byte stream format.
func (m *MouseState) MarshalBinary() ([]byte, error) {
	b := make([]byte, 9)
	b[0] = m.Buttons
	b[1] = byte(m.DX)
	b[2] = byte(m.DX >> 8)
	b[3] = byte(m.DY)
	b[4] = byte(m.DY >> 8)
	b[5] = byte(m.Wheel)
	b[6] = byte(m.Wheel >> 8)
	b[7] = byte(m.Pan)
	b[8] = byte(m.Pan >> 8)
	return b, nil
}

// UnmarshalBinary decodes 9 bytes into the state.
func (m *MouseState) UnmarshalBinary(data []byte) error {
	if len(data) < 9 {
		return io.ErrUnexpectedEOF
	}
	m.Buttons = data[0]
	m.DX = int16(data[1]) | int16(data[2])<<8
	m.DY = int16(data[3]) | int16(data[4])<<8
	m.Wheel = int16(data[5]) | int16(data[6])<<8
	m.Pan = int16(data[7]) | int16(data[8])<<8
	return nil
}
