package key

import (
	"fmt"
	"strconv"
	"strings"
)

// Button is a logical pointer button.
type Button uint8

const (
	Left Button = iota
	Middle
	Right

	buttonCount
)

var buttonNames = [buttonCount]string{Left: "left", Middle: "middle", Right: "right"}

func (b Button) Valid() bool { return b < buttonCount }

func (b Button) String() string {
	if !b.Valid() {
		return "Button(" + strconv.Itoa(int(b)) + ")"
	}
	return buttonNames[b]
}

func (b Button) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("invalid button %d", uint8(b))
	}
	return []byte(buttonNames[b]), nil
}

func (b *Button) UnmarshalText(text []byte) error {
	v, err := ParseButton(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// ParseButton accepts "left", "middle", "right" (case-insensitive) or the
// numeric identity.
func ParseButton(s string) (Button, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range buttonNames {
		if n == s {
			return Button(i), nil
		}
	}
	if n, err := strconv.ParseUint(s, 10, 8); err == nil && Button(n).Valid() {
		return Button(n), nil
	}
	return 0, fmt.Errorf("unknown button %q", s)
}

// Direction is a scroll direction.
type Direction uint8

const (
	Down Direction = iota
	Up

	directionCount
)

var directionNames = [directionCount]string{Down: "down", Up: "up"}

func (d Direction) Valid() bool { return d < directionCount }

func (d Direction) String() string {
	if !d.Valid() {
		return "Direction(" + strconv.Itoa(int(d)) + ")"
	}
	return directionNames[d]
}

func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid direction %d", uint8(d))
	}
	return []byte(directionNames[d]), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// ParseDirection accepts "down" or "up" (case-insensitive) or the numeric
// identity.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range directionNames {
		if n == s {
			return Direction(i), nil
		}
	}
	if n, err := strconv.ParseUint(s, 10, 8); err == nil && Direction(n).Valid() {
		return Direction(n), nil
	}
	return 0, fmt.Errorf("unknown scroll direction %q", s)
}

// Toggle pairs a key with a desired state.
type Toggle struct {
	Key  Key  `json:"key"`
	Down bool `json:"down"`
}

// ParseToggle parses "name" (down) or "name:up" / "name:down".
func ParseToggle(s string) (Toggle, error) {
	name, state, found := strings.Cut(s, ":")
	k, err := Parse(name)
	if err != nil {
		return Toggle{}, err
	}
	t := Toggle{Key: k, Down: true}
	if found {
		switch strings.ToLower(state) {
		case "down", "press":
			t.Down = true
		case "up", "release":
			t.Down = false
		default:
			return Toggle{}, fmt.Errorf("invalid key state %q", state)
		}
	}
	return t, nil
}
