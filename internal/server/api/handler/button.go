package handler

import (
	"log/slog"

	"github.com/Alia5/VISE/engine"
	"github.com/Alia5/VISE/internal/server/api"
	apierror "github.com/Alia5/VISE/internal/server/api/error"
	"github.com/Alia5/VISE/key"
)

func parseButton(payload string) (key.Button, error) {
	b, err := key.ParseButton(payload)
	if err != nil {
		return 0, apierror.ErrBadRequest(err.Error())
	}
	return b, nil
}

// ButtonClick takes the button name as raw payload.
func ButtonClick(e *engine.Engine) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		b, err := parseButton(req.Payload)
		if err != nil {
			return err
		}
		return e.ClickButton(b)
	}
}

// ButtonState returns a handler for button/press (down) or button/release.
func ButtonState(e *engine.Engine, down bool) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		b, err := parseButton(req.Payload)
		if err != nil {
			return err
		}
		return e.SetButtonState(b, down)
	}
}
