// Package testing holds test doubles shared across package tests.
package testing

import (
	"fmt"
	"slices"

	"github.com/Alia5/VISE/backend"
	"github.com/Alia5/VISE/key"
)

// Call is one primitive received by a RecordingBackend.
type Call struct {
	Op     string // key, button, scroll, move, text, close
	Code   key.Code
	Button key.Button
	Dir    backend.Direction
	Length int
	Axis   backend.Axis
	X, Y   int
	Text   string
}

func (c Call) String() string {
	switch c.Op {
	case "key":
		return fmt.Sprintf("key %#x %s", uint32(c.Code), c.Dir)
	case "button":
		return fmt.Sprintf("button %s %s", c.Button, c.Dir)
	case "scroll":
		return fmt.Sprintf("scroll %d %s", c.Length, c.Axis)
	case "move":
		return fmt.Sprintf("move %d,%d", c.X, c.Y)
	case "text":
		return fmt.Sprintf("text %q", c.Text)
	}
	return c.Op
}

// KeyCall is shorthand for a recorded key primitive.
func KeyCall(code key.Code, dir backend.Direction) Call {
	return Call{Op: "key", Code: code, Dir: dir}
}

// ButtonCall is shorthand for a recorded button primitive.
func ButtonCall(b key.Button, dir backend.Direction) Call {
	return Call{Op: "button", Button: b, Dir: dir}
}

// RecordingBackend implements only the mandatory primitives and records
// every successful call. Fail, when set, is consulted before each call; a
// non-nil result is returned and the call is not recorded.
type RecordingBackend struct {
	Plat   key.Platform
	Calls  []Call
	Fail   func(c Call) error
	Closed int
}

func NewRecordingBackend(p key.Platform) *RecordingBackend {
	return &RecordingBackend{Plat: p}
}

// FailOnCall makes the n-th call (1-based) fail with err.
func (r *RecordingBackend) FailOnCall(n int, err error) {
	seen := 0
	r.Fail = func(Call) error {
		seen++
		if seen == n {
			return err
		}
		return nil
	}
}

func (r *RecordingBackend) record(c Call) error {
	if r.Fail != nil {
		if err := r.Fail(c); err != nil {
			return err
		}
	}
	r.Calls = append(r.Calls, c)
	return nil
}

func (r *RecordingBackend) Platform() key.Platform { return r.Plat }

func (r *RecordingBackend) Key(code key.Code, dir backend.Direction) error {
	return r.record(KeyCall(code, dir))
}

func (r *RecordingBackend) Button(b key.Button, dir backend.Direction) error {
	return r.record(ButtonCall(b, dir))
}

func (r *RecordingBackend) Scroll(length int, axis backend.Axis) error {
	return r.record(Call{Op: "scroll", Length: length, Axis: axis})
}

func (r *RecordingBackend) Close() error {
	r.Closed++
	return nil
}

// Ops returns the recorded calls as strings, for compact assertions.
func (r *RecordingBackend) Ops() []string {
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.String()
	}
	return out
}

// LiveBackend adds every optional capability. Held reports the key state
// it has seen, like an OS that can be queried.
type LiveBackend struct {
	*RecordingBackend
	X, Y    int
	HeldErr error
	down    map[key.Code]bool
}

func NewLiveBackend(p key.Platform) *LiveBackend {
	return &LiveBackend{RecordingBackend: NewRecordingBackend(p), down: map[key.Code]bool{}}
}

func (l *LiveBackend) Key(code key.Code, dir backend.Direction) error {
	if err := l.RecordingBackend.Key(code, dir); err != nil {
		return err
	}
	l.down[code] = dir == backend.Press
	return nil
}

// SetHeld marks code as held outside of the engine.
func (l *LiveBackend) SetHeld(code key.Code, down bool) { l.down[code] = down }

func (l *LiveBackend) Held() ([]key.Code, error) {
	if l.HeldErr != nil {
		return nil, l.HeldErr
	}
	var out []key.Code
	for c, d := range l.down {
		if d {
			out = append(out, c)
		}
	}
	slices.Sort(out)
	return out, nil
}

func (l *LiveBackend) MoveTo(x, y int) error {
	if err := l.record(Call{Op: "move", X: x, Y: y}); err != nil {
		return err
	}
	l.X, l.Y = x, y
	return nil
}

func (l *LiveBackend) Location() (int, int, error) { return l.X, l.Y, nil }

func (l *LiveBackend) Text(s string) error {
	return l.record(Call{Op: "text", Text: s})
}
