// Package platform picks and opens the backend for the running OS.
package platform

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/Alia5/VISE/backend"
	"github.com/Alia5/VISE/backend/hid"
	"github.com/Alia5/VISE/backend/uinput"
	"github.com/Alia5/VISE/backend/x11"
	"github.com/Alia5/VISE/internal/log"
)

const (
	Auto   = "auto"
	UInput = "uinput"
	X11    = "x11"
	Win32  = "win32"
	Quartz = "quartz"
	HID    = "hid"
)

// Config selects a backend and carries the settings of each one.
type Config struct {
	Backend string        `help:"Injection backend" enum:"auto,uinput,x11,win32,quartz,hid" default:"auto" env:"VISE_BACKEND"`
	UInput  uinput.Config `embed:"" prefix:"uinput."`
	X11     x11.Config    `embed:"" prefix:"x11."`
	HID     hid.Config    `embed:"" prefix:"hid."`
}

// Open opens the backend named by cfg.Backend, resolving auto for the
// running OS. The resolved name is returned even on failure.
func Open(ctx context.Context, cfg Config, logger *slog.Logger, rawLogger log.RawLogger) (backend.Backend, string, error) {
	if logger == nil {
		logger = slog.Default()
	}
	name := cfg.Backend
	if name == "" || name == Auto {
		name = autoBackend(cfg)
		logger.Debug("selected backend", "backend", name, "os", runtime.GOOS)
	}
	if name == HID {
		b, err := hid.Open(ctx, cfg.HID, logger, rawLogger)
		if err != nil {
			return nil, name, err
		}
		return b, name, nil
	}
	b, err := openNative(name, cfg, logger)
	if err != nil {
		return nil, name, err
	}
	return b, name, nil
}

// Available lists the backends this build can open, auto excluded.
func Available() []string {
	return append(nativeBackends(), HID)
}

func unavailable(name string) error {
	return fmt.Errorf("backend %q is not available on %s/%s", name, runtime.GOOS, runtime.GOARCH)
}
