package handler

import (
	"fmt"
	"log/slog"

	"github.com/Alia5/VISE/apitypes"
	"github.com/Alia5/VISE/engine"
	"github.com/Alia5/VISE/internal/server/api"
	apierror "github.com/Alia5/VISE/internal/server/api/error"
)

// MaxScrollAmount bounds the detents of one scroll request. Some backends
// inject one wheel click at a time while the engine is locked.
const MaxScrollAmount = 10000

// Scroll expects {"direction":"up"|"down","amount":n}.
func Scroll(e *engine.Engine) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var sr apitypes.ScrollRequest
		if err := decodePayload(req.Payload, &sr); err != nil {
			return err
		}
		if sr.Amount > MaxScrollAmount || sr.Amount < -MaxScrollAmount {
			return apierror.ErrBadRequest(fmt.Sprintf("scroll amount %d exceeds %d", sr.Amount, MaxScrollAmount))
		}
		return e.Scroll(sr.Direction, sr.Amount)
	}
}
