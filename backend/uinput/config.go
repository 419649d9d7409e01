// Package uinput injects input through a virtual Linux input device created
// with /dev/uinput. It works under X11, Wayland and on the console, but has
// no notion of the pointer position or of text.
package uinput

// Config describes the virtual device.
type Config struct {
	Name string `help:"Name of the virtual uinput device" default:"VISE virtual input" env:"VISE_UINPUT_NAME"`
}
