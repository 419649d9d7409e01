package handler

import (
	"log/slog"

	"github.com/Alia5/VISE/apitypes"
	"github.com/Alia5/VISE/internal/server/api"
	"github.com/Alia5/VISE/key"
)

// Ping reports the server identity and the platform of its engine.
func Ping(version string, platform key.Platform) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		out, err := writeJSON(apitypes.PingResponse{Server: "vise", Version: version, Platform: platform})
		if err != nil {
			return err
		}
		res.JSON = out
		return nil
	}
}
