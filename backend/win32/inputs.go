// Package win32 injects input with the Win32 SendInput API.
package win32

import (
	"unicode/utf16"
	"unsafe"

	"github.com/Alia5/VISE/backend"
	"github.com/Alia5/VISE/key"
)

const (
	inputMouse    = 0
	inputKeyboard = 1

	keyeventfExtendedKey = 0x0001
	keyeventfKeyUp       = 0x0002
	keyeventfUnicode     = 0x0004

	mouseeventfLeftDown   = 0x0002
	mouseeventfLeftUp     = 0x0004
	mouseeventfRightDown  = 0x0008
	mouseeventfRightUp    = 0x0010
	mouseeventfMiddleDown = 0x0020
	mouseeventfMiddleUp   = 0x0040
	mouseeventfWheel      = 0x0800
	mouseeventfHWheel     = 0x1000

	wheelDelta = 120

	vkReturn = 0x0d
	vkTab    = 0x09
)

type keyboardInput struct {
	wVk         uint16
	wScan       uint16
	dwFlags     uint32
	time        uint32
	dwExtraInfo uintptr
}

type mouseInput struct {
	dx          int32
	dy          int32
	mouseData   uint32
	dwFlags     uint32
	time        uint32
	dwExtraInfo uintptr
}

// input mirrors INPUT. MOUSEINPUT is the largest union member, so it sizes
// the union; keyboard input is written over it.
type input struct {
	inputType uint32
	mi        mouseInput
}

func keyboardEvent(ki keyboardInput) input {
	in := input{inputType: inputKeyboard}
	*(*keyboardInput)(unsafe.Pointer(&in.mi)) = ki
	return in
}

func (in *input) keyboard() keyboardInput {
	return *(*keyboardInput)(unsafe.Pointer(&in.mi))
}

// Keys that need KEYEVENTF_EXTENDEDKEY to not be read as their numpad twin.
var extendedKeys = map[uint16]bool{
	0x21: true, 0x22: true, 0x23: true, 0x24: true, // PageUp PageDown End Home
	0x25: true, 0x26: true, 0x27: true, 0x28: true, // arrows
	0x2d: true, 0x2e: true, // Insert Delete
	0x5b: true, 0x5c: true, // LWin RWin
	0x6f: true, // Divide
	0xa3: true, 0xa5: true, // RControl RMenu
}

func vkEvent(vk, scan uint16, dir backend.Direction) input {
	var flags uint32
	if extendedKeys[vk] {
		flags |= keyeventfExtendedKey
	}
	if dir == backend.Release {
		flags |= keyeventfKeyUp
	}
	return keyboardEvent(keyboardInput{wVk: vk, wScan: scan, dwFlags: flags})
}

var buttonFlags = map[key.Button][2]uint32{
	key.Left:   {mouseeventfLeftDown, mouseeventfLeftUp},
	key.Middle: {mouseeventfMiddleDown, mouseeventfMiddleUp},
	key.Right:  {mouseeventfRightDown, mouseeventfRightUp},
}

func buttonEvent(btn key.Button, dir backend.Direction) (input, bool) {
	f, ok := buttonFlags[btn]
	if !ok {
		return input{}, false
	}
	return input{inputType: inputMouse, mi: mouseInput{dwFlags: f[dir]}}, true
}

// scrollEvents converts detents into wheel inputs. A positive vertical
// wheel delta rotates away from the user, so the vertical length is negated.
func scrollEvents(length int, axis backend.Axis) []input {
	flags := uint32(mouseeventfHWheel)
	if axis == backend.Vertical {
		flags = mouseeventfWheel
		length = -length
	}
	const maxDetents = (1<<31 - 1) / wheelDelta
	var out []input
	for length != 0 {
		chunk := max(min(length, maxDetents), -maxDetents)
		length -= chunk
		out = append(out, input{inputType: inputMouse, mi: mouseInput{
			mouseData: uint32(int32(chunk * wheelDelta)),
			dwFlags:   flags,
		}})
	}
	return out
}

// textEvents types s as UTF-16 units. Line breaks and tabs are sent as
// their virtual keys; most controls ignore them as unicode packets.
func textEvents(s string) []input {
	out := make([]input, 0, len(s)*2)
	for _, r := range s {
		switch r {
		case '\n', '\r':
			out = append(out, vkEvent(vkReturn, 0, backend.Press), vkEvent(vkReturn, 0, backend.Release))
			continue
		case '\t':
			out = append(out, vkEvent(vkTab, 0, backend.Press), vkEvent(vkTab, 0, backend.Release))
			continue
		}
		for _, u := range utf16.Encode([]rune{r}) {
			out = append(out,
				keyboardEvent(keyboardInput{wScan: u, dwFlags: keyeventfUnicode}),
				keyboardEvent(keyboardInput{wScan: u, dwFlags: keyeventfUnicode | keyeventfKeyUp}),
			)
		}
	}
	return out
}
