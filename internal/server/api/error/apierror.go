// Package apierror builds the problem responses of the API.
package apierror

import (
	"errors"

	"github.com/Alia5/VISE/apitypes"
	"github.com/Alia5/VISE/backend"
	"github.com/Alia5/VISE/engine"
)

func ErrBadRequest(detail string) apitypes.ApiError {
	return apitypes.ApiError{Status: 400, Title: "Bad Request", Detail: detail}
}
func ErrUnauthorized(detail string) apitypes.ApiError {
	return apitypes.ApiError{Status: 401, Title: "Unauthorized", Detail: detail}
}
func ErrNotFound(detail string) apitypes.ApiError {
	return apitypes.ApiError{Status: 404, Title: "Not Found", Detail: detail}
}
func ErrInternal(detail string) apitypes.ApiError {
	return apitypes.ApiError{Status: 500, Title: "Internal Server Error", Detail: detail}
}
func ErrNotImplemented(detail string) apitypes.ApiError {
	return apitypes.ApiError{Status: 501, Title: "Not Implemented", Detail: detail}
}
func ErrBadGateway(detail string) apitypes.ApiError {
	return apitypes.ApiError{Status: 502, Title: "Bad Gateway", Detail: detail}
}

// WrapError maps an error onto its problem response. Engine errors keep
// their text verbatim.
func WrapError(err error) apitypes.ApiError {
	var ae apitypes.ApiError
	if errors.As(err, &ae) {
		return ae
	}
	var aep *apitypes.ApiError
	if errors.As(err, &aep) {
		return *aep
	}
	var be *engine.BackendError
	switch {
	case errors.Is(err, engine.ErrInvalidArgument):
		return ErrBadRequest(err.Error())
	case errors.Is(err, backend.ErrUnsupported):
		return ErrNotImplemented(err.Error())
	case errors.As(err, &be):
		return ErrBadGateway(be.Error())
	}
	return ErrInternal(err.Error())
}
