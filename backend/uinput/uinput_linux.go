//go:build linux

package uinput

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"

	evdev "github.com/holoplot/go-evdev"
	"golang.org/x/sys/unix"

	"github.com/Alia5/VISE/backend"
	"github.com/Alia5/VISE/internal/log"
	"github.com/Alia5/VISE/key"
)

const uinputNode = "/dev/uinput"

type eventWriter interface {
	WriteOne(ev *evdev.InputEvent) error
	Close() error
}

// Backend implements backend.Backend over a uinput device.
type Backend struct {
	dev    eventWriter
	logger *slog.Logger
}

var buttonCodes = map[key.Button]evdev.EvCode{
	key.Left:   evdev.BTN_LEFT,
	key.Middle: evdev.BTN_MIDDLE,
	key.Right:  evdev.BTN_RIGHT,
}

// Open creates the virtual device. It fails when /dev/uinput is not
// writable by this process.
func Open(cfg Config, logger *slog.Logger) (*Backend, error) {
	if err := unix.Access(uinputNode, unix.W_OK); err != nil {
		return nil, fmt.Errorf("uinput: %s not writable: %w", uinputNode, err)
	}
	id := evdev.InputID{
		BusType: uint16(evdev.BUS_VIRTUAL),
		Vendor:  0x1,
		Product: 0x1,
		Version: 1,
	}
	dev, err := evdev.CreateDevice(cfg.Name, id, capabilities())
	if err != nil {
		return nil, fmt.Errorf("uinput: create device: %w", err)
	}
	logger.Debug("uinput device created", "name", cfg.Name)
	return newBackend(dev, logger), nil
}

func newBackend(dev eventWriter, logger *slog.Logger) *Backend {
	return &Backend{dev: dev, logger: logger}
}

// capabilities advertises every catalog key, the three buttons, relative
// motion (so the device classifies as a pointer) and both wheels.
func capabilities() map[evdev.EvType][]evdev.EvCode {
	keys := make(map[evdev.EvCode]struct{}, key.Count()+len(buttonCodes))
	for _, k := range key.All() {
		keys[evdev.EvCode(key.Evdev.Resolve(k))] = struct{}{}
	}
	for _, c := range buttonCodes {
		keys[c] = struct{}{}
	}
	codes := make([]evdev.EvCode, 0, len(keys))
	for c := range keys {
		codes = append(codes, c)
	}
	slices.Sort(codes)
	return map[evdev.EvType][]evdev.EvCode{
		evdev.EV_KEY: codes,
		evdev.EV_REL: {evdev.REL_X, evdev.REL_Y, evdev.REL_HWHEEL, evdev.REL_WHEEL},
	}
}

func (b *Backend) Platform() key.Platform { return key.PlatformEvdev }

func (b *Backend) Key(code key.Code, dir backend.Direction) error {
	if code > math.MaxUint16 {
		return fmt.Errorf("uinput: key code %#x out of range", uint32(code))
	}
	return b.emit(evdev.EV_KEY, evdev.EvCode(code), keyValue(dir))
}

func (b *Backend) Button(btn key.Button, dir backend.Direction) error {
	code, ok := buttonCodes[btn]
	if !ok {
		return fmt.Errorf("uinput: unknown button %d", uint8(btn))
	}
	return b.emit(evdev.EV_KEY, code, keyValue(dir))
}

// Scroll writes wheel detents. REL_WHEEL counts positive away from the user,
// so the vertical length is negated.
func (b *Backend) Scroll(length int, axis backend.Axis) error {
	code := evdev.EvCode(evdev.REL_HWHEEL)
	if axis == backend.Vertical {
		code = evdev.REL_WHEEL
		length = -length
	}
	for length != 0 {
		chunk := max(min(length, math.MaxInt32), -math.MaxInt32)
		length -= chunk
		if err := b.emit(evdev.EV_REL, code, int32(chunk)); err != nil {
			return err
		}
	}
	return nil
}

func (b *Backend) Close() error {
	return b.dev.Close()
}

// emit writes one event followed by SYN_REPORT.
func (b *Backend) emit(t evdev.EvType, code evdev.EvCode, value int32) error {
	for _, ev := range []evdev.InputEvent{
		{Type: t, Code: code, Value: value},
		{Type: evdev.EV_SYN, Code: evdev.SYN_REPORT},
	} {
		if err := b.dev.WriteOne(&ev); err != nil {
			return fmt.Errorf("uinput: write %s: %w", evdev.CodeName(t, code), err)
		}
	}
	b.logger.Log(context.Background(), log.LevelTrace, "uinput event", "code", evdev.CodeName(t, code), "value", value)
	return nil
}

func keyValue(dir backend.Direction) int32 {
	if dir == backend.Press {
		return 1
	}
	return 0
}
