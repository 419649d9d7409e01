// Package key defines the portable key, button and scroll vocabulary and the
// catalogs that map it onto each platform's native code space.
//
// The integer identities of Key, Button and Direction cross process and
// network boundaries. They form a closed, versioned contract: new values are
// only ever appended, existing values are never renumbered.
package key

import (
	"fmt"
	"strconv"
	"strings"
)

// Key is a logical keyboard key, independent of OS and keyboard layout.
type Key uint16

const (
	Num0 Key = iota
	Num1
	Num2
	Num3
	Num4
	Num5
	Num6
	Num7
	Num8
	Num9
	A
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z
	Add
	Subtract
	Multiply
	Divide
	// OEM2 is the placeholder slot. It has no key of its own and resolves to
	// the End key on every platform.
	OEM2
	Tab
	CapsLock
	Shift
	Control
	Alt
	Space
	Backspace
	Return
	Escape
	UpArrow
	DownArrow
	LeftArrow
	RightArrow
	Meta

	// Appended in v2 of the enumeration.
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	Home
	End
	PageUp
	PageDown
	Delete
	Insert
	Minus
	Equal
	LeftBracket
	RightBracket
	Backslash
	Semicolon
	Apostrophe
	Grave
	Comma
	Period
	Slash

	keyCount
)

var keyNames = [keyCount]string{
	Num0: "0", Num1: "1", Num2: "2", Num3: "3", Num4: "4",
	Num5: "5", Num6: "6", Num7: "7", Num8: "8", Num9: "9",
	A: "A", B: "B", C: "C", D: "D", E: "E", F: "F", G: "G",
	H: "H", I: "I", J: "J", K: "K", L: "L", M: "M", N: "N",
	O: "O", P: "P", Q: "Q", R: "R", S: "S", T: "T", U: "U",
	V: "V", W: "W", X: "X", Y: "Y", Z: "Z",

	Add:        "Add",
	Subtract:   "Subtract",
	Multiply:   "Multiply",
	Divide:     "Divide",
	OEM2:       "OEM2",
	Tab:        "Tab",
	CapsLock:   "CapsLock",
	Shift:      "Shift",
	Control:    "Control",
	Alt:        "Alt",
	Space:      "Space",
	Backspace:  "Backspace",
	Return:     "Return",
	Escape:     "Escape",
	UpArrow:    "UpArrow",
	DownArrow:  "DownArrow",
	LeftArrow:  "LeftArrow",
	RightArrow: "RightArrow",
	Meta:       "Meta",

	F1: "F1", F2: "F2", F3: "F3", F4: "F4", F5: "F5", F6: "F6",
	F7: "F7", F8: "F8", F9: "F9", F10: "F10", F11: "F11", F12: "F12",

	Home:         "Home",
	End:          "End",
	PageUp:       "PageUp",
	PageDown:     "PageDown",
	Delete:       "Delete",
	Insert:       "Insert",
	Minus:        "Minus",
	Equal:        "Equal",
	LeftBracket:  "LeftBracket",
	RightBracket: "RightBracket",
	Backslash:    "Backslash",
	Semicolon:    "Semicolon",
	Apostrophe:   "Apostrophe",
	Grave:        "Grave",
	Comma:        "Comma",
	Period:       "Period",
	Slash:        "Slash",
}

// Alternative spellings accepted by Parse, lower-case.
var keyAliases = map[string]Key{
	"num0": Num0, "num1": Num1, "num2": Num2, "num3": Num3, "num4": Num4,
	"num5": Num5, "num6": Num6, "num7": Num7, "num8": Num8, "num9": Num9,

	"plus":      Add,
	"+":         Add,
	"-":         Subtract,
	"*":         Multiply,
	"/":         Divide,
	"caps":      CapsLock,
	"ctrl":      Control,
	"control":   Control,
	"option":    Alt,
	"space":     Space,
	" ":         Space,
	"bs":        Backspace,
	"enter":     Return,
	"return":    Return,
	"esc":       Escape,
	"up":        UpArrow,
	"down":      DownArrow,
	"left":      LeftArrow,
	"right":     RightArrow,
	"super":     Meta,
	"win":       Meta,
	"windows":   Meta,
	"cmd":       Meta,
	"command":   Meta,
	"pgup":      PageUp,
	"pgdn":      PageDown,
	"del":       Delete,
	"ins":       Insert,
	"=":         Equal,
	"[":         LeftBracket,
	"]":         RightBracket,
	"\\":        Backslash,
	";":         Semicolon,
	"'":         Apostrophe,
	"`":         Grave,
	",":         Comma,
	".":         Period,
	"quote":     Apostrophe,
	"backquote": Grave,
	"dot":       Period,
}

var keyByName = func() map[string]Key {
	m := make(map[string]Key, int(keyCount)+len(keyAliases))
	for k, name := range keyNames {
		m[strings.ToLower(name)] = Key(k)
	}
	for alias, k := range keyAliases {
		m[alias] = k
	}
	return m
}()

// Valid reports whether k is a member of the enumeration.
func (k Key) Valid() bool { return k < keyCount }

func (k Key) String() string {
	if !k.Valid() {
		return "Key(" + strconv.Itoa(int(k)) + ")"
	}
	return keyNames[k]
}

// MarshalText encodes the key by name.
func (k Key) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid key %d", uint16(k))
	}
	return []byte(keyNames[k]), nil
}

// UnmarshalText accepts anything Parse accepts.
func (k *Key) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Parse resolves a key by name (case-insensitive), alias, or stable integer
// identity written in decimal with a leading '#', e.g. "#48" for Return.
func Parse(name string) (Key, error) {
	if k, ok := keyByName[strings.ToLower(name)]; ok {
		return k, nil
	}
	if strings.HasPrefix(name, "#") {
		n, err := strconv.ParseUint(name[1:], 10, 16)
		if err == nil && Key(n).Valid() {
			return Key(n), nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// ParseAll parses every name, failing on the first unknown one.
func ParseAll(names []string) ([]Key, error) {
	keys := make([]Key, 0, len(names))
	for _, n := range names {
		k, err := Parse(n)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// All returns every key in identity order.
func All() []Key {
	keys := make([]Key, keyCount)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}

// Count is the number of keys in the enumeration.
func Count() int { return int(keyCount) }
