// Package engine turns logical input requests into backend primitives and
// keeps the set of keys it holds down.
//
// An Engine is not safe for concurrent use; callers serialise access.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"math"
	"slices"
	"unicode/utf8"

	"github.com/Alia5/VISE/backend"
	"github.com/Alia5/VISE/backend/platform"
	"github.com/Alia5/VISE/internal/log"
	"github.com/Alia5/VISE/key"
)

type Point = backend.Point

type Engine struct {
	b       backend.Backend
	catalog *key.Catalog
	held    map[key.Code]struct{}
	logger  *slog.Logger
	closed  bool
}

type options struct {
	logger    *slog.Logger
	rawLogger log.RawLogger
}

type Option func(*options)

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRawLogger receives raw reports from backends that produce them.
func WithRawLogger(r log.RawLogger) Option {
	return func(o *options) { o.rawLogger = r }
}

func buildOptions(opts []Option) options {
	o := options{logger: slog.Default(), rawLogger: log.NewRaw(nil)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New wraps an already opened backend. The engine owns b from here on.
func New(b backend.Backend, opts ...Option) (*Engine, error) {
	o := buildOptions(opts)
	if b == nil {
		return nil, &ConstructionError{Backend: "nil", Err: errors.New("no backend")}
	}
	c, ok := key.Lookup(b.Platform())
	if !ok {
		_ = b.Close()
		return nil, &ConstructionError{Backend: string(b.Platform()), Err: fmt.Errorf("no key catalog for platform %q", b.Platform())}
	}
	e := &Engine{
		b:       b,
		catalog: c,
		held:    map[key.Code]struct{}{},
		logger:  o.logger,
	}
	e.logger.Debug("engine ready", "platform", c.Platform(), "capabilities", backend.Capabilities(b))
	return e, nil
}

// Open acquires the backend selected by cfg for the running OS.
func Open(ctx context.Context, cfg platform.Config, opts ...Option) (*Engine, error) {
	o := buildOptions(opts)
	b, name, err := platform.Open(ctx, cfg, o.logger, o.rawLogger)
	if err != nil {
		return nil, &ConstructionError{Backend: name, Err: err}
	}
	return New(b, opts...)
}

// Close releases the backend. Keys still held stay held.
func (e *Engine) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	if err := e.b.Close(); err != nil {
		return e.fail("close", err)
	}
	return nil
}

func (e *Engine) Platform() key.Platform { return e.catalog.Platform() }

func (e *Engine) Catalog() *key.Catalog { return e.catalog }

func (e *Engine) Capabilities() backend.CapabilitySet { return backend.Capabilities(e.b) }

// HeldKeys returns the native codes currently held, ascending. A backend
// that can query the OS is authoritative; otherwise the engine's own record
// of unreleased presses is returned.
func (e *Engine) HeldKeys() ([]key.Code, error) {
	if e.closed {
		return nil, ErrClosed
	}
	if hr, ok := e.b.(backend.HeldReporter); ok {
		codes, err := hr.Held()
		if err != nil {
			return nil, e.fail("held keys", err)
		}
		slices.Sort(codes)
		return slices.Compact(codes), nil
	}
	return slices.Sorted(maps.Keys(e.held)), nil
}

func (e *Engine) PointerPosition() (Point, error) {
	if e.closed {
		return Point{}, ErrClosed
	}
	pl, ok := e.b.(backend.PointerLocator)
	if !ok {
		return Point{}, backend.Unsupported("pointer position", e.Platform(), "")
	}
	x, y, err := pl.Location()
	if err != nil {
		return Point{}, e.fail("pointer position", err)
	}
	return Point{X: x, Y: y}, nil
}

// SetPointerPosition moves the pointer to x, y without range checks.
func (e *Engine) SetPointerPosition(x, y int) error {
	if e.closed {
		return ErrClosed
	}
	pm, ok := e.b.(backend.PointerMover)
	if !ok {
		return backend.Unsupported("set pointer position", e.Platform(), "")
	}
	e.trace("move", "x", x, "y", y)
	if err := pm.MoveTo(x, y); err != nil {
		return e.fail("set pointer position", err)
	}
	return nil
}

// ClickButton presses and releases b.
func (e *Engine) ClickButton(b key.Button) error {
	if err := e.checkButton(b); err != nil {
		return err
	}
	if err := e.button(b, backend.Press); err != nil {
		return err
	}
	return e.button(b, backend.Release)
}

// SetButtonState forwards a single press or release. Nothing pairs them.
func (e *Engine) SetButtonState(b key.Button, down bool) error {
	if err := e.checkButton(b); err != nil {
		return err
	}
	dir := backend.Release
	if down {
		dir = backend.Press
	}
	return e.button(b, dir)
}

func (e *Engine) checkButton(b key.Button) error {
	if e.closed {
		return ErrClosed
	}
	if !b.Valid() {
		return invalid("button %d", uint8(b))
	}
	return nil
}

func (e *Engine) button(b key.Button, dir backend.Direction) error {
	e.trace("button", "button", b, "dir", dir)
	if err := e.b.Button(b, dir); err != nil {
		return e.fail("button "+b.String()+" "+dir.String(), err)
	}
	return nil
}

// Scroll issues one vertical scroll of amount detents. Down is positive.
// The amount is not clamped, but an Up amount whose negation overflows is
// rejected.
func (e *Engine) Scroll(dir key.Direction, amount int) error {
	if e.closed {
		return ErrClosed
	}
	if !dir.Valid() {
		return invalid("scroll direction %d", uint8(dir))
	}
	if dir == key.Up && amount == math.MinInt {
		return invalid("scroll amount %d cannot be negated", amount)
	}
	length := amount
	if dir == key.Up {
		length = -amount
	}
	e.trace("scroll", "length", length)
	if err := e.b.Scroll(length, backend.Vertical); err != nil {
		return e.fail("scroll", err)
	}
	return nil
}

// TypeText injects s. Backends with direct text injection receive the
// whole string; others get one keystroke per rune, and every rune is
// checked before the first one is sent. A Shift held through PressKeys
// stays held afterwards; keystrokes that need it unshifted lift it
// briefly. A failure part way through leaves the already typed prefix in
// place.
func (e *Engine) TypeText(s string) error {
	if e.closed {
		return ErrClosed
	}
	if s == "" {
		return nil
	}
	if !utf8.ValidString(s) {
		return invalid("text is not valid UTF-8")
	}
	if tt, ok := e.b.(backend.TextTyper); ok {
		e.trace("text", "runes", utf8.RuneCountInString(s))
		if err := tt.Text(s); err != nil {
			return e.fail("type text", err)
		}
		return nil
	}

	strokes, bad := key.Strokes(s)
	if bad >= 0 {
		r, _ := utf8.DecodeRuneInString(s[bad:])
		return backend.Unsupported("type text", e.Platform(), fmt.Sprintf("no keystroke for %q at byte %d", r, bad))
	}
	shift := e.catalog.Resolve(key.Shift)
	for _, st := range strokes {
		code := e.catalog.Resolve(st.Key)
		tap := []keyEvent{{code, backend.Press}, {code, backend.Release}}
		_, shifted := e.held[shift]
		seq := tap
		switch {
		case st.Shift && !shifted:
			seq = slices.Concat([]keyEvent{{shift, backend.Press}}, tap, []keyEvent{{shift, backend.Release}})
		case !st.Shift && shifted:
			// Shift is held by the caller: lift it for this rune only.
			seq = slices.Concat([]keyEvent{{shift, backend.Release}}, tap, []keyEvent{{shift, backend.Press}})
		}
		for _, ev := range seq {
			e.trace("key", "code", ev.code, "dir", ev.dir)
			if err := e.b.Key(ev.code, ev.dir); err != nil {
				return e.fail("type text", err)
			}
			if ev.code == shift {
				e.track(shift, ev.dir)
			}
		}
	}
	return nil
}

type keyEvent struct {
	code key.Code
	dir  backend.Direction
}

// PressKeys presses keys in order. The held set is updated after each
// press; on failure the keys already pressed stay held.
func (e *Engine) PressKeys(keys []key.Key) error {
	return e.keys(keys, backend.Press)
}

// ReleaseKeys releases keys in order with the same failure behaviour as
// PressKeys.
func (e *Engine) ReleaseKeys(keys []key.Key) error {
	return e.keys(keys, backend.Release)
}

func (e *Engine) keys(keys []key.Key, dir backend.Direction) error {
	if e.closed {
		return ErrClosed
	}
	if err := checkKeys(keys); err != nil {
		return err
	}
	for _, k := range keys {
		if err := e.key(k, dir); err != nil {
			return err
		}
	}
	return nil
}

// PressThenReleaseKeys presses every key in order, then releases every key
// in order. The Down flag of each toggle is not consulted; see ToggleKeys.
func (e *Engine) PressThenReleaseKeys(toggles []key.Toggle) error {
	if e.closed {
		return ErrClosed
	}
	keys := make([]key.Key, len(toggles))
	for i, t := range toggles {
		keys[i] = t.Key
	}
	if err := checkKeys(keys); err != nil {
		return err
	}
	for _, dir := range []backend.Direction{backend.Press, backend.Release} {
		for _, k := range keys {
			if err := e.key(k, dir); err != nil {
				return err
			}
		}
	}
	return nil
}

// ToggleKeys walks toggles in order, pressing keys marked Down and
// releasing the others.
func (e *Engine) ToggleKeys(toggles []key.Toggle) error {
	if e.closed {
		return ErrClosed
	}
	for i, t := range toggles {
		if !t.Key.Valid() {
			return invalid("key %d at index %d", uint16(t.Key), i)
		}
	}
	for _, t := range toggles {
		dir := backend.Release
		if t.Down {
			dir = backend.Press
		}
		if err := e.key(t.Key, dir); err != nil {
			return err
		}
	}
	return nil
}

func checkKeys(keys []key.Key) error {
	for i, k := range keys {
		if !k.Valid() {
			return invalid("key %d at index %d", uint16(k), i)
		}
	}
	return nil
}

func (e *Engine) key(k key.Key, dir backend.Direction) error {
	code := e.catalog.Resolve(k)
	e.trace("key", "key", k, "code", code, "dir", dir)
	if err := e.b.Key(code, dir); err != nil {
		return e.fail(dir.String()+" "+k.String(), err)
	}
	e.track(code, dir)
	return nil
}

// track records a successful press or release in the held set.
func (e *Engine) track(code key.Code, dir backend.Direction) {
	if dir == backend.Press {
		e.held[code] = struct{}{}
	} else {
		delete(e.held, code)
	}
}

// fail passes unsupported operations through and wraps everything else
// in a BackendError.
func (e *Engine) fail(op string, err error) error {
	if errors.Is(err, backend.ErrUnsupported) {
		return err
	}
	e.logger.Debug("backend call failed", "op", op, "error", err)
	return &BackendError{Op: op, Cause: err.Error(), Err: err}
}

func (e *Engine) trace(op string, args ...any) {
	e.logger.Log(context.Background(), log.LevelTrace, "backend "+op, args...)
}
