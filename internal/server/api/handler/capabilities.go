package handler

import (
	"log/slog"

	"github.com/Alia5/VISE/apitypes"
	"github.com/Alia5/VISE/engine"
	"github.com/Alia5/VISE/internal/server/api"
)

func Capabilities(e *engine.Engine) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var err error
		res.JSON, err = writeJSON(apitypes.CapabilitiesResponse{Platform: e.Platform(), Capabilities: e.Capabilities()})
		return err
	}
}
