package win32

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/Alia5/VISE/backend"
	"github.com/Alia5/VISE/internal/log"
	"github.com/Alia5/VISE/key"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procSendInput        = user32.NewProc("SendInput")
	procSetCursorPos     = user32.NewProc("SetCursorPos")
	procGetCursorPos     = user32.NewProc("GetCursorPos")
	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
	procMapVirtualKeyW   = user32.NewProc("MapVirtualKeyW")
)

const mapvkVKToVSC = 0

type point struct {
	x, y int32
}

// Backend injects into the interactive desktop of the calling session.
type Backend struct {
	logger *slog.Logger
}

// Open checks that the user32 entry points resolve.
func Open(logger *slog.Logger) (*Backend, error) {
	for _, p := range []*windows.LazyProc{procSendInput, procSetCursorPos, procGetCursorPos, procGetAsyncKeyState, procMapVirtualKeyW} {
		if err := p.Find(); err != nil {
			return nil, fmt.Errorf("win32: %w", err)
		}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Backend{logger: logger}, nil
}

func (b *Backend) Platform() key.Platform { return key.PlatformWindows }

func (b *Backend) Key(code key.Code, dir backend.Direction) error {
	if code == 0 || code > 0xfe {
		return fmt.Errorf("win32: virtual-key code %#x out of range", uint32(code))
	}
	vk := uint16(code)
	scan, _, _ := procMapVirtualKeyW.Call(uintptr(vk), mapvkVKToVSC)
	return b.send(vkEvent(vk, uint16(scan), dir))
}

func (b *Backend) Button(btn key.Button, dir backend.Direction) error {
	in, ok := buttonEvent(btn, dir)
	if !ok {
		return backend.Unsupported("button "+btn.String(), key.PlatformWindows, "")
	}
	return b.send(in)
}

func (b *Backend) Scroll(length int, axis backend.Axis) error {
	return b.send(scrollEvents(length, axis)...)
}

func (b *Backend) MoveTo(x, y int) error {
	r, _, err := procSetCursorPos.Call(uintptr(int32(x)), uintptr(int32(y)))
	if r == 0 {
		return fmt.Errorf("win32: SetCursorPos: %w", err)
	}
	return nil
}

func (b *Backend) Location() (int, int, error) {
	var p point
	r, _, err := procGetCursorPos.Call(uintptr(unsafe.Pointer(&p)))
	if r == 0 {
		return 0, 0, fmt.Errorf("win32: GetCursorPos: %w", err)
	}
	return int(p.x), int(p.y), nil
}

func (b *Backend) Text(s string) error {
	return b.send(textEvents(s)...)
}

// Held polls GetAsyncKeyState for every virtual key except the mouse
// buttons (0x01-0x06).
func (b *Backend) Held() ([]key.Code, error) {
	var held []key.Code
	for vk := uintptr(0x07); vk <= 0xfe; vk++ {
		r, _, _ := procGetAsyncKeyState.Call(vk)
		if uint16(r)&0x8000 != 0 {
			held = append(held, key.Code(vk))
		}
	}
	slices.Sort(held)
	return held, nil
}

func (b *Backend) Close() error { return nil }

func (b *Backend) send(inputs ...input) error {
	if len(inputs) == 0 {
		return nil
	}
	n := uintptr(len(inputs))
	sent, _, err := procSendInput.Call(n, uintptr(unsafe.Pointer(&inputs[0])), unsafe.Sizeof(inputs[0]))
	b.logger.Log(context.Background(), log.LevelTrace, "SendInput", "inputs", n, "sent", sent)
	if sent != n {
		// UIPI blocks injection into higher-integrity windows without setting an error.
		return fmt.Errorf("win32: SendInput injected %d of %d inputs: %w", sent, n, err)
	}
	return nil
}
