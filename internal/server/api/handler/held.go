package handler

import (
	"log/slog"

	"github.com/Alia5/VISE/engine"
	"github.com/Alia5/VISE/internal/server/api"
)

func Held(e *engine.Engine) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		return respondHeld(e, res)
	}
}
