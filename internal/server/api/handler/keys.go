package handler

import (
	"log/slog"
	"strings"

	"github.com/Alia5/VISE/apitypes"
	"github.com/Alia5/VISE/engine"
	"github.com/Alia5/VISE/internal/server/api"
	apierror "github.com/Alia5/VISE/internal/server/api/error"
	"github.com/Alia5/VISE/key"
)

// parseKeys accepts a JSON array of names or identities, or names
// separated by whitespace.
func parseKeys(payload string) ([]key.Key, error) {
	p := strings.TrimSpace(payload)
	if strings.HasPrefix(p, "[") {
		var kr apitypes.KeysRequest
		if err := decodePayload(p, &kr); err != nil {
			return nil, err
		}
		return kr, nil
	}
	keys, err := key.ParseAll(strings.Fields(p))
	if err != nil {
		return nil, apierror.ErrBadRequest(err.Error())
	}
	return keys, nil
}

// parseToggles accepts a JSON array of {"key","down"} objects, or
// "name[:up|:down]" tokens separated by whitespace.
func parseToggles(payload string) ([]key.Toggle, error) {
	p := strings.TrimSpace(payload)
	if strings.HasPrefix(p, "[") {
		var tr apitypes.TogglesRequest
		if err := decodePayload(p, &tr); err != nil {
			return nil, err
		}
		return tr, nil
	}
	fields := strings.Fields(p)
	out := make([]key.Toggle, 0, len(fields))
	for _, f := range fields {
		t, err := key.ParseToggle(f)
		if err != nil {
			return nil, apierror.ErrBadRequest(err.Error())
		}
		out = append(out, t)
	}
	return out, nil
}

func respondHeld(e *engine.Engine, res *api.Response) error {
	held, err := heldResponse(e)
	if err != nil {
		return err
	}
	res.JSON, err = writeJSON(held)
	return err
}

func KeysPress(e *engine.Engine) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		keys, err := parseKeys(req.Payload)
		if err != nil {
			return err
		}
		if err := e.PressKeys(keys); err != nil {
			return err
		}
		return respondHeld(e, res)
	}
}

func KeysRelease(e *engine.Engine) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		keys, err := parseKeys(req.Payload)
		if err != nil {
			return err
		}
		if err := e.ReleaseKeys(keys); err != nil {
			return err
		}
		return respondHeld(e, res)
	}
}

// KeysChord presses every key, then releases every key.
func KeysChord(e *engine.Engine) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		toggles, err := parseToggles(req.Payload)
		if err != nil {
			return err
		}
		if err := e.PressThenReleaseKeys(toggles); err != nil {
			return err
		}
		return respondHeld(e, res)
	}
}

func KeysToggle(e *engine.Engine) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		toggles, err := parseToggles(req.Payload)
		if err != nil {
			return err
		}
		if err := e.ToggleKeys(toggles); err != nil {
			return err
		}
		return respondHeld(e, res)
	}
}
