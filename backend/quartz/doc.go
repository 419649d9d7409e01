// Package quartz posts CoreGraphics events on macOS. The process needs the
// Accessibility permission, and the package needs cgo.
package quartz

// Modifier flags carried on every posted keyboard event, keyed by CGKeyCode.
var modifierFlags = map[uint16]uint64{
	0x38: 0x00020000, // Shift, kCGEventFlagMaskShift
	0x3b: 0x00040000, // Control
	0x3a: 0x00080000, // Option
	0x37: 0x00100000, // Command
}

// flagsAfter returns the modifier mask after code goes down or up.
func flagsAfter(flags uint64, code uint16, down bool) uint64 {
	m, ok := modifierFlags[code]
	if !ok {
		return flags
	}
	if down {
		return flags | m
	}
	return flags &^ m
}

// scrollChunks splits length into int32-sized wheel deltas. Quartz counts
// positive deltas as up and left, so the result is negated.
func scrollChunks(length int) []int32 {
	const limit = 1<<31 - 1
	var out []int32
	for length != 0 {
		c := max(min(length, limit), -limit)
		length -= c
		out = append(out, int32(-c))
	}
	return out
}

// maxUnicodeChunk is how many UTF-16 units CGEventKeyboardSetUnicodeString
// reliably delivers per event.
const maxUnicodeChunk = 20

// chunkUnits splits UTF-16 text without separating surrogate pairs.
func chunkUnits(units []uint16) [][]uint16 {
	var out [][]uint16
	for len(units) > 0 {
		n := min(len(units), maxUnicodeChunk)
		if n < len(units) && units[n-1] >= 0xd800 && units[n-1] < 0xdc00 {
			n--
		}
		out = append(out, units[:n])
		units = units[n:]
	}
	return out
}
