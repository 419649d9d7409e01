//go:build !linux && !windows && !darwin

package platform

import (
	"log/slog"

	"github.com/Alia5/VISE/backend"
)

// Only the hid backend works here.
func autoBackend(Config) string { return HID }

func nativeBackends() []string { return nil }

func openNative(name string, _ Config, _ *slog.Logger) (backend.Backend, error) {
	return nil, unavailable(name)
}
