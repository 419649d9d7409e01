package handler

import (
	"log/slog"

	"github.com/Alia5/VISE/engine"
	"github.com/Alia5/VISE/internal/server/api"
)

// Type injects the raw payload. Everything after the first separator is
// text, including further whitespace and newlines.
func Type(e *engine.Engine) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		return e.TypeText(req.Payload)
	}
}
