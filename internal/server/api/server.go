// Package api serves the remote-control protocol: one request per TCP
// connection, framed as `<path>[ <payload>]\x00`, answered by a single JSON
// line before the server closes the connection.
package api

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/Alia5/VISE/internal/server/api/auth"
	apierror "github.com/Alia5/VISE/internal/server/api/error"
)

type Server struct {
	addr   string
	config ServerConfig
	logger *slog.Logger
	router *Router
	key    []byte

	// handlers drive one engine, which is not safe for concurrent use
	mu sync.Mutex

	ln   net.Listener
	wg   sync.WaitGroup
	done chan struct{}
}

func New(config ServerConfig, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		addr:   config.Addr,
		config: config,
		logger: logger,
		router: NewRouter(),
		done:   make(chan struct{}),
	}
	if !config.NoAuth && config.Password != "" {
		key, err := auth.DeriveKey(config.Password)
		if err != nil {
			return nil, err
		}
		s.key = key
	}
	return s, nil
}

func (s *Server) Router() *Router { return s.router }

func (s *Server) Config() ServerConfig { return s.config }

// Addr returns the bound address once started.
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.addr
}

func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.ln = ln
	s.logger.Info("API listening", "addr", ln.Addr().String(), "auth", s.key != nil)
	s.wg.Add(1)
	go s.serve()
	return nil
}

// Close stops accepting and waits for in-flight requests.
func (s *Server) Close() {
	if s.ln == nil {
		return
	}
	select {
	case <-s.done:
		return
	default:
		close(s.done)
	}
	_ = s.ln.Close()
	s.wg.Wait()
}

func (s *Server) serve() {
	defer s.wg.Done()
	for {
		c, err := s.ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				s.logger.Info("API server stopped")
				return
			}
			s.logger.Error("API accept error", "error", err)
			return
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handleConn(c)
		}()
	}
}

func writeError(w io.Writer, err error) {
	problem, _ := json.Marshal(apierror.WrapError(err))
	fmt.Fprintf(w, "%s\n", problem)
}

func isLoopback(addr net.Addr) bool {
	if tcp, ok := addr.(*net.TCPAddr); ok {
		return tcp.IP.IsLoopback()
	}
	return false
}

// secure runs the handshake when one is offered or required and returns
// the connection to use from then on.
func (s *Server) secure(conn net.Conn, r *bufio.Reader, logger *slog.Logger) (net.Conn, *bufio.Reader, error) {
	if s.key == nil {
		return conn, r, nil
	}
	isAuth, err := auth.IsAuthHandshake(r)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, err
	}
	if !isAuth {
		if !s.config.RequireLocalAuth && isLoopback(conn.RemoteAddr()) {
			return conn, r, nil
		}
		return nil, nil, apierror.ErrUnauthorized("authentication required")
	}
	clientNonce, serverNonce, err := auth.ServerHandshake(r, conn, s.key)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) {
			return nil, nil, apierror.ErrUnauthorized(err.Error())
		}
		return nil, nil, err
	}
	sc, err := auth.WrapConn(auth.BufferedConn{Conn: conn, R: r}, auth.DeriveSessionKey(s.key, serverNonce, clientNonce), auth.RoleServer)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("api session authenticated")
	return sc, bufio.NewReader(sc), nil
}

func (s *Server) handleConn(raw net.Conn) {
	defer raw.Close()
	if s.config.ConnectionTimeout > 0 {
		_ = raw.SetDeadline(time.Now().Add(s.config.ConnectionTimeout))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-s.done:
			cancel()
		case <-ctx.Done():
		}
	}()

	logger := s.logger.With("remote", raw.RemoteAddr().String())
	conn, r, err := s.secure(raw, bufio.NewReader(raw), logger)
	if err != nil {
		logger.Warn("api auth failed", "error", err)
		writeError(raw, err)
		return
	}

	data, err := r.ReadString('\x00')
	if err != nil {
		if errors.Is(err, io.EOF) {
			logger.Error("api incomplete request (no null terminator)")
		} else {
			logger.Error("read api data", "error", err)
		}
		return
	}
	path, payload := splitRequest(strings.TrimSuffix(data, "\x00"))
	if path == "" {
		logger.Error("api empty path")
		writeError(conn, apierror.ErrBadRequest("empty request"))
		return
	}
	path = strings.ToLower(path)
	logger.Info("api cmd", "path", path)

	h, params := s.router.Match(path)
	if h == nil {
		logger.Error("api unknown path", "path", path)
		writeError(conn, apierror.ErrNotFound(fmt.Sprintf("unknown path: %s", path)))
		return
	}

	res := &Response{}
	s.mu.Lock()
	err = h(&Request{Ctx: ctx, Params: params, Payload: payload}, res, logger)
	s.mu.Unlock()
	if err != nil {
		logger.Error("api handler error", "path", path, "error", err)
		writeError(conn, err)
		return
	}
	logger.Debug("api handler success", "path", path)
	fmt.Fprintf(conn, "%s\n", res.JSON)
}

// splitRequest cuts at the first whitespace character.
func splitRequest(data string) (path, payload string) {
	i := strings.IndexFunc(data, unicode.IsSpace)
	if i < 0 {
		return data, ""
	}
	_, size := utf8.DecodeRuneInString(data[i:])
	return data[:i], data[i+size:]
}
