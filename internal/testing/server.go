package testing

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/Alia5/VISE/internal/server/api"
)

// StartAPIServer starts an API server on a free loopback port. register
// adds the routes under test. The server is closed with t.Cleanup.
func StartAPIServer(t *testing.T, cfg api.ServerConfig, register func(r *api.Router)) (addr string, srv *api.Server) {
	t.Helper()
	cfg.Addr = "127.0.0.1:0"
	if cfg.ConnectionTimeout == 0 {
		cfg.ConnectionTimeout = 2 * time.Second
	}
	srv, err := api.New(cfg, slog.Default())
	if err != nil {
		t.Fatalf("api new failed: %v", err)
	}
	if register != nil {
		register(srv.Router())
	}
	if err := srv.Start(); err != nil {
		t.Fatalf("api start failed: %v", err)
	}
	t.Cleanup(srv.Close)
	return srv.Addr(), srv
}

// ExecCmd dials addr, sends cmd with the null terminator and returns the
// response line without its newline.
func ExecCmd(t *testing.T, addr string, cmd string) string {
	t.Helper()
	c, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer c.Close()
	_ = c.SetDeadline(time.Now().Add(2 * time.Second))

	if _, err := fmt.Fprintf(c, "%s\x00", cmd); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	line, err := bufio.NewReader(c).ReadString('\n')
	if err != nil && err != io.EOF {
		t.Fatalf("read failed: %v", err)
	}
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
}
