package apiclient

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/Alia5/VISE/internal/server/api/auth"
)

// Config controls the transport. A zero timeout leaves that phase bounded
// only by the request context.
type Config struct {
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// Password enables the authenticated, encrypted session. Requests are
	// sent in the clear when it is empty.
	Password string
}

func defaultConfig() Config {
	return Config{
		DialTimeout:  3 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
}

// ErrInvalidRequest is returned before dialing for requests that cannot be
// framed.
var ErrInvalidRequest = errors.New("invalid request")

// Responder answers the requests of a mock transport with a raw response
// line.
type Responder func(path string, payload any) (string, error)

// Transport speaks the framing of the VISE API, one connection per request:
//
//	request:  <path>[ <payload>]\x00
//	response: a single JSON document or an empty line, then the server closes
//
// Payloads may span lines but never contain NUL.
type Transport struct {
	addr string
	cfg  Config
	mock Responder

	keyOnce sync.Once
	key     []byte
	keyErr  error
}

func NewTransport(addr string) *Transport { return NewTransportWithConfig(addr, nil) }

func NewTransportWithPassword(addr, password string) *Transport {
	cfg := defaultConfig()
	cfg.Password = password
	return NewTransportWithConfig(addr, &cfg)
}

// NewTransportWithConfig uses the default timeouts when cfg is nil.
func NewTransportWithConfig(addr string, cfg *Config) *Transport {
	c := defaultConfig()
	if cfg != nil {
		c = *cfg
	}
	return &Transport{addr: addr, cfg: c}
}

// NewMockTransport returns a transport that hands every request to r
// instead of the network.
func NewMockTransport(r Responder) *Transport {
	return &Transport{addr: "mock", mock: r, cfg: defaultConfig()}
}

// Addr is the server address requests are sent to.
func (t *Transport) Addr() string { return t.addr }

// Do sends a request and returns the response without its trailing newline.
// Payloads are encoded as follows:
//
//	[]byte -> sent as-is
//	string -> UTF-8 bytes
//	nil    -> no payload
//	other  -> JSON
func (t *Transport) Do(path string, payload any) (string, error) {
	return t.DoCtx(context.Background(), path, payload)
}

// DoCtx is like Do. Cancelling ctx aborts the request at any stage, and a
// ctx deadline tightens the configured timeouts.
func (t *Transport) DoCtx(ctx context.Context, path string, payload any) (string, error) {
	if t.mock != nil {
		return t.mock(path, payload)
	}
	line, err := requestLine(path, payload)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("dial: %w", err)
	}

	d := &net.Dialer{Timeout: t.cfg.DialTimeout}
	raw, err := d.DialContext(ctx, "tcp", t.addr)
	if err != nil {
		return "", fmt.Errorf("dial: %w", err)
	}
	defer raw.Close()
	if tcpConn, ok := raw.(*net.TCPConn); ok {
		_ = tcpConn.SetNoDelay(true)
	}
	stop := context.AfterFunc(ctx, func() { _ = raw.SetDeadline(time.Now()) })
	defer stop()

	_ = raw.SetWriteDeadline(deadline(ctx, t.cfg.WriteTimeout))
	conn, err := t.secure(raw)
	if err != nil {
		return "", ctxErr(ctx, err)
	}
	if _, err := conn.Write(line); err != nil {
		return "", ctxErr(ctx, fmt.Errorf("write: %w", err))
	}

	_ = raw.SetReadDeadline(deadline(ctx, t.cfg.ReadTimeout))
	resp, err := io.ReadAll(conn)
	if err != nil && len(resp) == 0 {
		return "", ctxErr(ctx, fmt.Errorf("read: %w", err))
	}
	return strings.TrimSuffix(string(resp), "\n"), nil
}

// secure runs the handshake and wraps conn when a password is configured.
func (t *Transport) secure(conn net.Conn) (net.Conn, error) {
	if t.cfg.Password == "" {
		return conn, nil
	}
	t.keyOnce.Do(func() { t.key, t.keyErr = auth.DeriveKey(t.cfg.Password) })
	if t.keyErr != nil {
		return nil, t.keyErr
	}
	r := bufio.NewReader(conn)
	clientNonce, serverNonce, err := auth.ClientHandshake(r, conn, t.key)
	if err != nil {
		return nil, err
	}
	sessionKey := auth.DeriveSessionKey(t.key, serverNonce, clientNonce)
	return auth.WrapConn(auth.BufferedConn{Conn: conn, R: r}, sessionKey, auth.RoleClient)
}

// requestLine frames path and payload, NUL terminator included.
func requestLine(path string, payload any) ([]byte, error) {
	if path == "" || strings.ContainsAny(path, " \x00") {
		return nil, fmt.Errorf("%w: path %q", ErrInvalidRequest, path)
	}
	pb, err := encodePayload(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %s payload: %v", ErrInvalidRequest, path, err)
	}
	if bytes.IndexByte(pb, 0) >= 0 {
		return nil, fmt.Errorf("%w: %s payload contains NUL", ErrInvalidRequest, path)
	}
	line := []byte(path)
	if len(pb) > 0 {
		line = append(append(line, ' '), pb...)
	}
	return append(line, 0), nil
}

func encodePayload(v any) ([]byte, error) {
	switch p := v.(type) {
	case nil:
		return nil, nil
	case []byte:
		return p, nil
	case string:
		return []byte(p), nil
	default:
		return json.Marshal(v)
	}
}

func deadline(ctx context.Context, timeout time.Duration) time.Time {
	var t time.Time
	if timeout > 0 {
		t = time.Now().Add(timeout)
	}
	if d, ok := ctx.Deadline(); ok && (t.IsZero() || d.Before(t)) {
		t = d
	}
	return t
}

// ctxErr prefers the context's error over the I/O error it caused. A
// deadline that has passed counts even before ctx notices.
func ctxErr(ctx context.Context, err error) error {
	cerr := ctx.Err()
	if d, ok := ctx.Deadline(); ok && cerr == nil && !time.Now().Before(d) {
		cerr = context.DeadlineExceeded
	}
	if cerr != nil {
		return fmt.Errorf("%w: %w", cerr, err)
	}
	return err
}
