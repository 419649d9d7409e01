//go:build linux

package x11

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"unicode/utf8"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgb/xtest"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"

	"github.com/Alia5/VISE/backend"
	"github.com/Alia5/VISE/internal/log"
	"github.com/Alia5/VISE/key"
)

// Wheel buttons of the core protocol.
const (
	buttonWheelUp    = 4
	buttonWheelDown  = 5
	buttonWheelLeft  = 6
	buttonWheelRight = 7
)

var buttonIndex = map[key.Button]byte{
	key.Left:   xproto.ButtonIndex1,
	key.Middle: xproto.ButtonIndex2,
	key.Right:  xproto.ButtonIndex3,
}

// Backend implements backend.Backend plus every optional capability.
type Backend struct {
	xu     *xgbutil.XUtil
	conn   *xgb.Conn
	root   xproto.Window
	logger *slog.Logger
}

// Open connects to the X server and initialises XTEST.
func Open(cfg Config, logger *slog.Logger) (*Backend, error) {
	var (
		xu  *xgbutil.XUtil
		err error
	)
	if cfg.Display != "" {
		xu, err = xgbutil.NewConnDisplay(cfg.Display)
	} else {
		xu, err = xgbutil.NewConn()
	}
	if err != nil {
		return nil, fmt.Errorf("x11: connect: %w", err)
	}
	conn := xu.Conn()
	if conn == nil {
		return nil, errors.New("x11: failed to open X11 connection")
	}
	if err := xtest.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("x11: XTEST unavailable: %w", err)
	}
	keybind.Initialize(xu)

	logger.Debug("x11 backend ready", "display", cfg.Display)
	return &Backend{
		xu:     xu,
		conn:   conn,
		root:   xu.RootWin(),
		logger: logger,
	}, nil
}

func (b *Backend) Platform() key.Platform { return key.PlatformX11 }

func (b *Backend) keymap() keymap {
	km := keybind.KeyMapGet(b.xu)
	return keymap{
		min:  b.xu.Setup().MinKeycode,
		per:  int(km.KeysymsPerKeycode),
		syms: km.Keysyms,
	}
}

// Key presses the first keycode bound to the keysym code.
func (b *Backend) Key(code key.Code, dir backend.Direction) error {
	kc, _, ok := b.keymap().lookup(xproto.Keysym(code))
	if !ok {
		return fmt.Errorf("x11: no keycode bound to keysym %#x", uint32(code))
	}
	if err := b.fakeKey(kc, dir); err != nil {
		return err
	}
	b.conn.Sync()
	return nil
}

func (b *Backend) Button(btn key.Button, dir backend.Direction) error {
	idx, ok := buttonIndex[btn]
	if !ok {
		return fmt.Errorf("x11: unknown button %d", uint8(btn))
	}
	if err := b.fake(buttonEvent(dir), idx); err != nil {
		return err
	}
	b.conn.Sync()
	return nil
}

// wheelBatch is how many wheel clicks are queued before a checked request
// waits for the server.
const wheelBatch = 64

// Scroll clicks the wheel buttons once per detent, in batches of one round
// trip each.
func (b *Backend) Scroll(length int, axis backend.Axis) error {
	btn := byte(buttonWheelDown)
	switch {
	case axis == backend.Vertical && length < 0:
		btn = buttonWheelUp
	case axis == backend.Horizontal && length < 0:
		btn = buttonWheelLeft
	case axis == backend.Horizontal:
		btn = buttonWheelRight
	}
	n := uint(length)
	if length < 0 {
		n = -n
	}
	for n > 0 {
		batch := min(n, wheelBatch)
		n -= batch
		for range batch - 1 {
			xtest.FakeInput(b.conn, xproto.ButtonPress, btn, xproto.TimeCurrentTime, b.root, 0, 0, 0)
			xtest.FakeInput(b.conn, xproto.ButtonRelease, btn, xproto.TimeCurrentTime, b.root, 0, 0, 0)
		}
		xtest.FakeInput(b.conn, xproto.ButtonPress, btn, xproto.TimeCurrentTime, b.root, 0, 0, 0)
		if err := b.fake(xproto.ButtonRelease, btn); err != nil {
			return err
		}
	}
	b.conn.Sync()
	return nil
}

func (b *Backend) MoveTo(x, y int) error {
	if err := xproto.WarpPointerChecked(
		b.conn,
		xproto.WindowNone,
		b.root,
		0,
		0,
		0,
		0,
		clampInt16(x),
		clampInt16(y),
	).Check(); err != nil {
		return fmt.Errorf("x11: warp pointer: %w", err)
	}
	b.conn.Sync()
	return nil
}

func (b *Backend) Location() (int, int, error) {
	reply, err := xproto.QueryPointer(b.conn, b.root).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("x11: query pointer: %w", err)
	}
	return int(reply.RootX), int(reply.RootY), nil
}

// Held reports the column-0 keysyms of every keycode the server considers
// down, whoever pressed it.
func (b *Backend) Held() ([]key.Code, error) {
	reply, err := xproto.QueryKeymap(b.conn).Reply()
	if err != nil {
		return nil, fmt.Errorf("x11: query keymap: %w", err)
	}
	return b.keymap().held(reply.Keys), nil
}

// Text types s rune by rune. Keysyms missing from the keyboard map are
// bound to a spare keycode for the duration of the keystroke.
func (b *Backend) Text(s string) error {
	if !utf8.ValidString(s) {
		return errors.New("x11: text is not valid UTF-8")
	}
	for _, r := range s {
		if err := b.typeKeysym(runeKeysym(r)); err != nil {
			return fmt.Errorf("x11: type %q: %w", r, err)
		}
	}
	b.conn.Sync()
	return nil
}

func (b *Backend) typeKeysym(sym xproto.Keysym) error {
	km := b.keymap()
	kc, shift, ok := km.lookup(sym)
	if !ok {
		spare, found := km.spare()
		if !found {
			return errors.New("no spare keycode to bind keysym")
		}
		if err := b.bind(spare, km.per, sym); err != nil {
			return err
		}
		defer func() {
			if err := b.bind(spare, km.per, keysymNoSymbol); err != nil {
				b.logger.Warn("x11: failed to restore spare keycode", "keycode", spare, "error", err)
			}
		}()
		kc, shift = spare, false
	}

	var shiftKC xproto.Keycode
	if shift {
		if shiftKC, _, ok = km.lookup(keysymShiftL); !ok {
			return errors.New("no keycode bound to Shift_L")
		}
		if err := b.fakeKey(shiftKC, backend.Press); err != nil {
			return err
		}
	}
	err := b.fakeKey(kc, backend.Press)
	if err == nil {
		err = b.fakeKey(kc, backend.Release)
	}
	if shift {
		if rerr := b.fakeKey(shiftKC, backend.Release); err == nil {
			err = rerr
		}
	}
	return err
}

// bind sets every column of kc to sym and refreshes the cached keymap.
func (b *Backend) bind(kc xproto.Keycode, per int, sym xproto.Keysym) error {
	syms := make([]xproto.Keysym, per)
	for i := range syms {
		syms[i] = sym
	}
	if err := xproto.ChangeKeyboardMappingChecked(b.conn, 1, kc, byte(per), syms).Check(); err != nil {
		return fmt.Errorf("change keyboard mapping: %w", err)
	}
	b.conn.Sync()
	keyMap, modMap := keybind.MapsGet(b.xu)
	keybind.KeyMapSet(b.xu, keyMap)
	keybind.ModMapSet(b.xu, modMap)
	return nil
}

func (b *Backend) fakeKey(kc xproto.Keycode, dir backend.Direction) error {
	t := byte(xproto.KeyPress)
	if dir == backend.Release {
		t = xproto.KeyRelease
	}
	return b.fake(t, byte(kc))
}

func (b *Backend) fake(eventType, detail byte) error {
	if err := xtest.FakeInputChecked(
		b.conn,
		eventType,
		detail,
		xproto.TimeCurrentTime,
		b.root,
		0,
		0,
		0,
	).Check(); err != nil {
		return fmt.Errorf("x11: fake input: %w", err)
	}
	b.logger.Log(context.Background(), log.LevelTrace, "x11 fake input", "type", eventType, "detail", detail)
	return nil
}

func (b *Backend) Close() error {
	b.conn.Close()
	return nil
}

func buttonEvent(dir backend.Direction) byte {
	if dir == backend.Press {
		return xproto.ButtonPress
	}
	return xproto.ButtonRelease
}

func clampInt16(v int) int16 {
	return int16(max(min(v, math.MaxInt16), math.MinInt16))
}
