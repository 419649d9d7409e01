//go:build darwin && cgo

package quartz

/*
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation
#include <ApplicationServices/ApplicationServices.h>

static int vise_post_key(CGKeyCode code, bool down, CGEventFlags flags) {
	CGEventRef ev = CGEventCreateKeyboardEvent(NULL, code, down);
	if (ev == NULL) return 0;
	CGEventSetFlags(ev, flags);
	CGEventPost(kCGHIDEventTap, ev);
	CFRelease(ev);
	return 1;
}

static int vise_location(double *x, double *y) {
	CGEventRef ev = CGEventCreate(NULL);
	if (ev == NULL) return 0;
	CGPoint p = CGEventGetLocation(ev);
	CFRelease(ev);
	*x = p.x;
	*y = p.y;
	return 1;
}

static int vise_post_mouse(CGEventType type, CGMouseButton button, double x, double y) {
	CGEventRef ev = CGEventCreateMouseEvent(NULL, type, CGPointMake(x, y), button);
	if (ev == NULL) return 0;
	CGEventPost(kCGHIDEventTap, ev);
	CFRelease(ev);
	return 1;
}

static int vise_post_scroll(int32_t vertical, int32_t horizontal) {
	CGEventRef ev = CGEventCreateScrollWheelEvent(NULL, kCGScrollEventUnitLine, 2, vertical, horizontal);
	if (ev == NULL) return 0;
	CGEventPost(kCGHIDEventTap, ev);
	CFRelease(ev);
	return 1;
}

static int vise_post_text(const UniChar *units, UniCharCount n) {
	bool downs[2] = {true, false};
	for (int i = 0; i < 2; i++) {
		CGEventRef ev = CGEventCreateKeyboardEvent(NULL, 0, downs[i]);
		if (ev == NULL) return 0;
		CGEventKeyboardSetUnicodeString(ev, n, units);
		CGEventPost(kCGHIDEventTap, ev);
		CFRelease(ev);
	}
	return 1;
}

static bool vise_key_state(CGKeyCode code) {
	return CGEventSourceKeyState(kCGEventSourceStateCombinedSessionState, code);
}
*/
import "C"

import (
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf16"
	"unsafe"

	"github.com/Alia5/VISE/backend"
	"github.com/Alia5/VISE/key"
)

type Backend struct {
	logger *slog.Logger
	flags  uint64
}

// Open fails unless the process is trusted for Accessibility; without it
// macOS drops posted events silently.
func Open(logger *slog.Logger) (*Backend, error) {
	if !bool(C.AXIsProcessTrusted()) {
		return nil, errors.New("quartz: accessibility permission not granted (System Settings > Privacy & Security > Accessibility)")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Backend{logger: logger}, nil
}

func (b *Backend) Platform() key.Platform { return key.PlatformDarwin }

func (b *Backend) Key(code key.Code, dir backend.Direction) error {
	if code > 0x7f {
		return fmt.Errorf("quartz: key code %#x out of range", uint32(code))
	}
	down := dir == backend.Press
	flags := flagsAfter(b.flags, uint16(code), down)
	if C.vise_post_key(C.CGKeyCode(code), C.bool(down), C.CGEventFlags(flags)) == 0 {
		return errors.New("quartz: CGEventCreateKeyboardEvent failed")
	}
	b.flags = flags
	return nil
}

var buttonEvents = map[key.Button]struct {
	button   C.CGMouseButton
	down, up C.CGEventType
}{
	key.Left:   {C.kCGMouseButtonLeft, C.kCGEventLeftMouseDown, C.kCGEventLeftMouseUp},
	key.Right:  {C.kCGMouseButtonRight, C.kCGEventRightMouseDown, C.kCGEventRightMouseUp},
	key.Middle: {C.kCGMouseButtonCenter, C.kCGEventOtherMouseDown, C.kCGEventOtherMouseUp},
}

func (b *Backend) Button(btn key.Button, dir backend.Direction) error {
	ev, ok := buttonEvents[btn]
	if !ok {
		return backend.Unsupported("button "+btn.String(), key.PlatformDarwin, "")
	}
	x, y, err := b.Location()
	if err != nil {
		return err
	}
	t := ev.down
	if dir == backend.Release {
		t = ev.up
	}
	if C.vise_post_mouse(t, ev.button, C.double(x), C.double(y)) == 0 {
		return errors.New("quartz: CGEventCreateMouseEvent failed")
	}
	return nil
}

func (b *Backend) Scroll(length int, axis backend.Axis) error {
	for _, d := range scrollChunks(length) {
		var v, h C.int32_t
		if axis == backend.Vertical {
			v = C.int32_t(d)
		} else {
			h = C.int32_t(d)
		}
		if C.vise_post_scroll(v, h) == 0 {
			return errors.New("quartz: CGEventCreateScrollWheelEvent failed")
		}
	}
	return nil
}

func (b *Backend) MoveTo(x, y int) error {
	if C.vise_post_mouse(C.kCGEventMouseMoved, C.kCGMouseButtonLeft, C.double(x), C.double(y)) == 0 {
		return errors.New("quartz: CGEventCreateMouseEvent failed")
	}
	return nil
}

func (b *Backend) Location() (int, int, error) {
	var x, y C.double
	if C.vise_location(&x, &y) == 0 {
		return 0, 0, errors.New("quartz: CGEventCreate failed")
	}
	return int(x), int(y), nil
}

func (b *Backend) Text(s string) error {
	for _, chunk := range chunkUnits(utf16.Encode([]rune(s))) {
		if C.vise_post_text((*C.UniChar)(unsafe.Pointer(&chunk[0])), C.UniCharCount(len(chunk))) == 0 {
			return errors.New("quartz: CGEventCreateKeyboardEvent failed")
		}
	}
	return nil
}

// Held asks the combined session state for every virtual key code.
func (b *Backend) Held() ([]key.Code, error) {
	var held []key.Code
	for code := 0; code <= 0x7f; code++ {
		if bool(C.vise_key_state(C.CGKeyCode(code))) {
			held = append(held, key.Code(code))
		}
	}
	return held, nil
}

func (b *Backend) Close() error { return nil }
