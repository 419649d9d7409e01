package platform

import (
	"log/slog"

	"github.com/Alia5/VISE/backend"
	"github.com/Alia5/VISE/backend/quartz"
)

func autoBackend(Config) string { return Quartz }

func nativeBackends() []string { return []string{Quartz} }

func openNative(name string, _ Config, logger *slog.Logger) (backend.Backend, error) {
	if name != Quartz {
		return nil, unavailable(name)
	}
	b, err := quartz.Open(logger)
	if err != nil {
		return nil, err
	}
	return b, nil
}
