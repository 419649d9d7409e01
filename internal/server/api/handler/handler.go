// Package handler implements the API routes on top of an engine.
//
// Handlers return errors; logging is done by the API server.
package handler

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Alia5/VISE/apitypes"
	"github.com/Alia5/VISE/engine"
	apierror "github.com/Alia5/VISE/internal/server/api/error"
	"github.com/Alia5/VISE/key"
)

func writeJSON(v any) (string, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return "", apierror.ErrInternal(fmt.Sprintf("failed to marshal response: %v", err))
	}
	return string(out), nil
}

// decodePayload unmarshals a JSON payload into v.
func decodePayload(payload string, v any) error {
	if strings.TrimSpace(payload) == "" {
		return apierror.ErrBadRequest("missing payload")
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return apierror.ErrBadRequest(fmt.Sprintf("invalid payload: %v", err))
	}
	return nil
}

func heldResponse(e *engine.Engine) (apitypes.HeldResponse, error) {
	codes, err := e.HeldKeys()
	if err != nil {
		return apitypes.HeldResponse{}, err
	}
	res := apitypes.HeldResponse{Codes: codes, Keys: make([]string, len(codes))}
	if codes == nil {
		res.Codes = []key.Code{}
	}
	for i, c := range codes {
		if k, ok := e.Catalog().Decode(c); ok {
			res.Keys[i] = k.String()
		}
	}
	return res, nil
}
