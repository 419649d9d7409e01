//go:build darwin && !cgo

package quartz

import (
	"errors"
	"log/slog"

	"github.com/Alia5/VISE/backend"
)

// Open always fails; CoreGraphics is only reachable through cgo.
func Open(*slog.Logger) (backend.Backend, error) {
	return nil, errors.New("quartz: built without cgo, CoreGraphics is unavailable")
}
