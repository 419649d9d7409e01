package handler

import (
	"log/slog"

	"github.com/Alia5/VISE/apitypes"
	"github.com/Alia5/VISE/engine"
	"github.com/Alia5/VISE/internal/server/api"
)

func PointerGet(e *engine.Engine) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		p, err := e.PointerPosition()
		if err != nil {
			return err
		}
		res.JSON, err = writeJSON(p)
		return err
	}
}

// PointerSet expects {"x":..,"y":..}.
func PointerSet(e *engine.Engine) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.Point
		if err := decodePayload(req.Payload, &p); err != nil {
			return err
		}
		if err := e.SetPointerPosition(p.X, p.Y); err != nil {
			return err
		}
		var err error
		res.JSON, err = writeJSON(p)
		return err
	}
}
