// Package backend defines the contract between the input engine and an OS
// injection facility.
//
// A Backend provides the mandatory primitives (keys, buttons, scroll). The
// optional interfaces are discovered by type assertion; a backend that cannot
// do something simply does not implement the interface.
package backend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Alia5/VISE/key"
)

// Direction is the state transition of a key or button.
type Direction uint8

const (
	Press Direction = iota
	Release
)

func (d Direction) String() string {
	if d == Press {
		return "press"
	}
	return "release"
}

// Axis selects the scroll wheel.
type Axis uint8

const (
	Vertical Axis = iota
	Horizontal
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Backend injects input events into the OS.
//
// Scroll lengths are in wheel detents. A positive length scrolls down on the
// vertical axis and right on the horizontal axis.
type Backend interface {
	Platform() key.Platform
	Key(code key.Code, dir Direction) error
	Button(b key.Button, dir Direction) error
	Scroll(length int, axis Axis) error
	Close() error
}

// Point is a pointer position in screen coordinates. Coordinates are not
// range checked.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// PointerMover warps the pointer to absolute screen coordinates.
type PointerMover interface {
	MoveTo(x, y int) error
}

// PointerLocator reports the pointer position in screen coordinates.
type PointerLocator interface {
	Location() (x, y int, err error)
}

// TextTyper injects text directly, independent of the keyboard layout.
type TextTyper interface {
	Text(s string) error
}

// HeldReporter queries which keys the OS currently considers held, as
// native codes of the backend's platform.
type HeldReporter interface {
	Held() ([]key.Code, error)
}

// CapabilitySet lists the optional interfaces a backend implements.
type CapabilitySet struct {
	MoveTo   bool `json:"moveTo"`
	Location bool `json:"location"`
	Text     bool `json:"text"`
	Held     bool `json:"held"`
}

func (c CapabilitySet) String() string {
	var s []string
	for _, v := range []struct {
		ok   bool
		name string
	}{{c.MoveTo, "move"}, {c.Location, "location"}, {c.Text, "text"}, {c.Held, "held"}} {
		if v.ok {
			s = append(s, v.name)
		}
	}
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s, ",")
}

// Capabilities inspects b for the optional interfaces.
func Capabilities(b Backend) CapabilitySet {
	var c CapabilitySet
	_, c.MoveTo = b.(PointerMover)
	_, c.Location = b.(PointerLocator)
	_, c.Text = b.(TextTyper)
	_, c.Held = b.(HeldReporter)
	return c
}

// ErrUnsupported is matched by every UnsupportedError.
var ErrUnsupported = errors.New("operation not supported")

// UnsupportedError reports an operation the platform cannot perform.
type UnsupportedError struct {
	Op       string
	Platform key.Platform
	Detail   string
}

func (e *UnsupportedError) Error() string {
	msg := fmt.Sprintf("%s: not supported on %s", e.Op, e.Platform)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *UnsupportedError) Is(target error) bool { return target == ErrUnsupported }

// Unsupported is a shorthand for &UnsupportedError{...}.
func Unsupported(op string, p key.Platform, detail string) error {
	return &UnsupportedError{Op: op, Platform: p, Detail: detail}
}
