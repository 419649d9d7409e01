package apierror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alia5/VISE/apitypes"
	"github.com/Alia5/VISE/backend"
	"github.com/Alia5/VISE/engine"
	apierror "github.com/Alia5/VISE/internal/server/api/error"
	"github.com/Alia5/VISE/key"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apitypes.ApiError
	}{
		{
			name: "api error value",
			err:  apierror.ErrNotFound("unknown path: x"),
			want: apitypes.ApiError{Status: 404, Title: "Not Found", Detail: "unknown path: x"},
		},
		{
			name: "api error pointer",
			err:  &apitypes.ApiError{Status: 401, Title: "Unauthorized", Detail: "invalid password"},
			want: apitypes.ApiError{Status: 401, Title: "Unauthorized", Detail: "invalid password"},
		},
		{
			name: "invalid argument",
			err:  fmt.Errorf("%w: button 9", engine.ErrInvalidArgument),
			want: apitypes.ApiError{Status: 400, Title: "Bad Request", Detail: "invalid argument: button 9"},
		},
		{
			name: "unsupported",
			err:  backend.Unsupported("pointer position", key.PlatformEvdev, ""),
			want: apitypes.ApiError{Status: 501, Title: "Not Implemented", Detail: "pointer position: not supported on evdev"},
		},
		{
			name: "backend failure keeps cause",
			err:  &engine.BackendError{Op: "press A", Cause: "write /dev/uinput: no such device", Err: errors.New("x")},
			want: apitypes.ApiError{Status: 502, Title: "Bad Gateway", Detail: "press A: write /dev/uinput: no such device"},
		},
		{
			name: "anything else",
			err:  engine.ErrClosed,
			want: apitypes.ApiError{Status: 500, Title: "Internal Server Error", Detail: "engine closed"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apierror.WrapError(tt.err))
		})
	}
}
