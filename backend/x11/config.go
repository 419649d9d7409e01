// Package x11 injects input into an X server through the XTEST extension.
package x11

// Config selects the X server.
type Config struct {
	Display string `help:"X display to connect to, defaults to $DISPLAY" env:"VISE_X11_DISPLAY"`
}
