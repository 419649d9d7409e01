package api_test

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/VISE/internal/server/api"
	apierror "github.com/Alia5/VISE/internal/server/api/error"
	th "github.com/Alia5/VISE/internal/testing"
)

func echo() api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		res.JSON = `{"payload":"` + req.Payload + `","id":"` + req.Params["id"] + `"}`
		return nil
	}
}

func TestServerDispatch(t *testing.T) {
	addr, _ := th.StartAPIServer(t, api.ServerConfig{}, func(r *api.Router) {
		r.Register("echo/{id}", echo())
		r.Register("fail", func(*api.Request, *api.Response, *slog.Logger) error {
			return apierror.ErrNotImplemented("pointer position: not supported on evdev")
		})
		r.Register("boom", func(*api.Request, *api.Response, *slog.Logger) error {
			return errors.New("boom")
		})
		r.Register("empty", func(*api.Request, *api.Response, *slog.Logger) error { return nil })
	})

	tests := []struct {
		name string
		cmd  string
		want string
	}{
		{"params and payload", "echo/7 hi", `{"payload":"hi","id":"7"}`},
		{"path is case-insensitive", "ECHO/7 Hi", `{"payload":"Hi","id":"7"}`},
		{"newline separator", "echo/x\nline", `{"payload":"line","id":"x"}`},
		{"api error", "fail", `{"status":501,"title":"Not Implemented","detail":"pointer position: not supported on evdev"}`},
		{"plain error", "boom", `{"status":500,"title":"Internal Server Error","detail":"boom"}`},
		{"unknown path", "nope/x", `{"status":404,"title":"Not Found","detail":"unknown path: nope/x"}`},
		{"empty request", "", `{"status":400,"title":"Bad Request","detail":"empty request"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.JSONEq(t, tt.want, th.ExecCmd(t, addr, tt.cmd))
		})
	}
	assert.Equal(t, "", th.ExecCmd(t, addr, "empty"))
}

func TestServerSerialisesHandlers(t *testing.T) {
	var inFlight, maxInFlight int32
	addr, _ := th.StartAPIServer(t, api.ServerConfig{}, func(r *api.Router) {
		r.Register("slow", func(*api.Request, *api.Response, *slog.Logger) error {
			n := atomic.AddInt32(&inFlight, 1)
			for {
				m := atomic.LoadInt32(&maxInFlight)
				if n <= m || atomic.CompareAndSwapInt32(&maxInFlight, m, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&inFlight, -1)
			return nil
		})
	})

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			th.ExecCmd(t, addr, "slow")
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), atomic.LoadInt32(&maxInFlight))
}

func TestServerRequiresAuth(t *testing.T) {
	addr, _ := th.StartAPIServer(t, api.ServerConfig{Password: "secret", RequireLocalAuth: true}, func(r *api.Router) {
		r.Register("echo/{id}", echo())
	})
	assert.JSONEq(t,
		`{"status":401,"title":"Unauthorized","detail":"authentication required"}`,
		th.ExecCmd(t, addr, "echo/1"))
}

func TestServerLoopbackSkipsAuth(t *testing.T) {
	addr, _ := th.StartAPIServer(t, api.ServerConfig{Password: "secret"}, func(r *api.Router) {
		r.Register("echo/{id}", echo())
	})
	assert.JSONEq(t, `{"payload":"","id":"1"}`, th.ExecCmd(t, addr, "echo/1"))
}

func TestServerClose(t *testing.T) {
	addr, srv := th.StartAPIServer(t, api.ServerConfig{}, nil)
	require.NotEmpty(t, addr)
	srv.Close()
	srv.Close()
}

func TestRouter(t *testing.T) {
	r := api.NewRouter()
	r.Register("button/{Button}", echo())
	r.Register("keys/press", echo())

	h, params := r.Match("BUTTON/Left")
	require.NotNil(t, h)
	assert.Equal(t, map[string]string{"Button": "left"}, params)

	h, _ = r.Match("keys/press/extra")
	assert.Nil(t, h)
	h, _ = r.Match("keys")
	assert.Nil(t, h)

	assert.Equal(t, []string{"button/{button}", "keys/press"}, r.Patterns())
}
