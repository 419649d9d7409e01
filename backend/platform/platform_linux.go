package platform

import (
	"log/slog"
	"os"

	"github.com/Alia5/VISE/backend"
	"github.com/Alia5/VISE/backend/uinput"
	"github.com/Alia5/VISE/backend/x11"
)

// autoBackend prefers X11 when a display is reachable, since it can also
// report the pointer and type arbitrary text. Wayland sessions and the
// console fall back to uinput.
func autoBackend(cfg Config) string {
	if cfg.X11.Display != "" || (os.Getenv("DISPLAY") != "" && os.Getenv("WAYLAND_DISPLAY") == "") {
		return X11
	}
	return UInput
}

func nativeBackends() []string { return []string{UInput, X11} }

func openNative(name string, cfg Config, logger *slog.Logger) (backend.Backend, error) {
	switch name {
	case UInput:
		b, err := uinput.Open(cfg.UInput, logger)
		if err != nil {
			return nil, err
		}
		return b, nil
	case X11:
		b, err := x11.Open(cfg.X11, logger)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
	return nil, unavailable(name)
}
