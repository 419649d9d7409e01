package key

import (
	"fmt"
	"slices"
	"strings"
)

// Code is an OS-native key identifier in a platform's own code space.
type Code uint32

// Platform names a native code space.
type Platform string

const (
	PlatformEvdev   Platform = "evdev"   // Linux input-event codes (linux/input-event-codes.h)
	PlatformX11     Platform = "x11"     // X keysyms
	PlatformWindows Platform = "windows" // virtual-key codes
	PlatformDarwin  Platform = "darwin"  // CGKeyCode
	PlatformHID     Platform = "hid"     // USB HID keyboard/keypad usage IDs
)

// Mapping is the native code a key resolves to. Approximate mappings send a
// different key than the one named, see Note.
type Mapping struct {
	Code        Code   `json:"code"`
	Approximate bool   `json:"approximate,omitempty"`
	Note        string `json:"note,omitempty"`
}

// UnreachableMapping reports a key that has no entry in a catalog. It is a
// programming error in the catalog tables, never a runtime condition.
type UnreachableMapping struct {
	Platform Platform
	Key      Key
}

func (e *UnreachableMapping) Error() string {
	return fmt.Sprintf("key %s has no %s mapping", e.Key, e.Platform)
}

// Catalog maps every Key to the native code of one platform.
type Catalog struct {
	platform Platform
	mappings [keyCount]Mapping
	reverse  map[Code]Key
	approx   []Key
}

var (
	Evdev   = newCatalog(PlatformEvdev, evdevTable)
	X11     = newCatalog(PlatformX11, x11Table)
	Windows = newCatalog(PlatformWindows, windowsTable)
	Darwin  = newCatalog(PlatformDarwin, darwinTable)
	HID     = newCatalog(PlatformHID, hidTable)
)

var catalogs = map[Platform]*Catalog{
	PlatformEvdev:   Evdev,
	PlatformX11:     X11,
	PlatformWindows: Windows,
	PlatformDarwin:  Darwin,
	PlatformHID:     HID,
}

// newCatalog panics when the table misses a key or two exact mappings share
// a code.
func newCatalog(p Platform, table map[Key]Mapping) *Catalog {
	c := &Catalog{platform: p, reverse: make(map[Code]Key, len(table))}
	for k := range table {
		if !k.Valid() {
			panic(fmt.Sprintf("%s catalog: entry for unknown key %d", p, uint16(k)))
		}
	}
	for _, k := range All() {
		m, ok := table[k]
		if !ok {
			panic(&UnreachableMapping{Platform: p, Key: k})
		}
		c.mappings[k] = m
		if m.Approximate {
			c.approx = append(c.approx, k)
			continue
		}
		if prev, dup := c.reverse[m.Code]; dup {
			panic(fmt.Sprintf("%s catalog: %s and %s share code %#x", p, prev, k, m.Code))
		}
		c.reverse[m.Code] = k
	}
	return c
}

// Lookup returns the catalog for p.
func Lookup(p Platform) (*Catalog, bool) {
	c, ok := catalogs[p]
	return c, ok
}

// Platforms lists every platform with a catalog, sorted by name.
func Platforms() []Platform {
	ps := make([]Platform, 0, len(catalogs))
	for p := range catalogs {
		ps = append(ps, p)
	}
	slices.Sort(ps)
	return ps
}

// ParsePlatform resolves a platform by name, case-insensitively.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := catalogs[p]; !ok {
		return "", fmt.Errorf("unknown platform %q", s)
	}
	return p, nil
}

func (c *Catalog) Platform() Platform { return c.platform }

// Resolve returns the native code for k. It panics with *UnreachableMapping
// if k is not a member of the enumeration.
func (c *Catalog) Resolve(k Key) Code {
	return c.Mapping(k).Code
}

// Mapping returns the native code for k with its approximation metadata.
func (c *Catalog) Mapping(k Key) Mapping {
	if !k.Valid() {
		panic(&UnreachableMapping{Platform: c.platform, Key: k})
	}
	return c.mappings[k]
}

// Decode is the reverse of Resolve for exact mappings. Codes only reached
// through an approximation decode to the key they really are, or not at all.
func (c *Catalog) Decode(code Code) (Key, bool) {
	k, ok := c.reverse[code]
	return k, ok
}

// Approximations lists the keys whose mapping sends a different key.
func (c *Catalog) Approximations() []Key {
	return slices.Clone(c.approx)
}
