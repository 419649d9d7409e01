package platform

import (
	"log/slog"

	"github.com/Alia5/VISE/backend"
	"github.com/Alia5/VISE/backend/win32"
)

func autoBackend(Config) string { return Win32 }

func nativeBackends() []string { return []string{Win32} }

func openNative(name string, _ Config, logger *slog.Logger) (backend.Backend, error) {
	if name != Win32 {
		return nil, unavailable(name)
	}
	b, err := win32.Open(logger)
	if err != nil {
		return nil, err
	}
	return b, nil
}
