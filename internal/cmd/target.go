package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/Alia5/VISE/apiclient"
	"github.com/Alia5/VISE/apitypes"
	"github.com/Alia5/VISE/backend/platform"
	"github.com/Alia5/VISE/engine"
	"github.com/Alia5/VISE/internal/log"
	"github.com/Alia5/VISE/key"
)

// stdout is where commands print their results.
var stdout io.Writer = os.Stdout

// driver is the part of the engine a command needs. *engine.Engine
// satisfies it locally, *apiclient.Client against a remote server.
type driver interface {
	HeldKeys() ([]key.Code, error)
	PointerPosition() (apitypes.Point, error)
	SetPointerPosition(x, y int) error
	ClickButton(b key.Button) error
	SetButtonState(b key.Button, down bool) error
	Scroll(dir key.Direction, amount int) error
	TypeText(s string) error
	PressKeys(keys []key.Key) error
	ReleaseKeys(keys []key.Key) error
	PressThenReleaseKeys(toggles []key.Toggle) error
	ToggleKeys(toggles []key.Toggle) error
	Close() error
}

var (
	_ driver = (*engine.Engine)(nil)
	_ driver = (*apiclient.Client)(nil)
)

// Target selects where a command injects: the local engine, or a VISE
// server when Remote is set.
type Target struct {
	Remote   string          `help:"Send to the VISE API server at host:port instead of injecting locally" env:"VISE_REMOTE"`
	Password string          `help:"API password for --remote; \"-\" prompts for it" env:"VISE_PASSWORD"`
	Timeout  time.Duration   `help:"Request timeout for --remote" default:"5s" env:"VISE_REMOTE_TIMEOUT"`
	Platform platform.Config `embed:""`
}

// open returns the driver plus the catalog of its platform, so key names
// can be shown next to native codes.
func (t *Target) open(ctx context.Context, logger *slog.Logger, rawLogger log.RawLogger) (driver, *key.Catalog, error) {
	if t.Remote == "" {
		e, err := engine.Open(ctx, t.Platform, engine.WithLogger(logger), engine.WithRawLogger(rawLogger))
		if err != nil {
			return nil, nil, err
		}
		return e, e.Catalog(), nil
	}

	c, err := t.client()
	if err != nil {
		return nil, nil, err
	}
	ping, err := c.PingCtx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("connect %s: %w", t.Remote, err)
	}
	logger.Debug("connected to VISE server", "addr", t.Remote, "version", ping.Version, "platform", ping.Platform)
	cat, ok := key.Lookup(ping.Platform)
	if !ok {
		return nil, nil, fmt.Errorf("server reports unknown platform %q", ping.Platform)
	}
	return c, cat, nil
}

func (t *Target) client() (*apiclient.Client, error) {
	pwd, err := t.password()
	if err != nil {
		return nil, err
	}
	return apiclient.NewWithConfig(t.Remote, &apiclient.Config{
		DialTimeout:  t.Timeout,
		ReadTimeout:  t.Timeout,
		WriteTimeout: t.Timeout,
		Password:     pwd,
	}), nil
}

func (t *Target) password() (string, error) {
	if t.Password != "-" {
		return t.Password, nil
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read password: %w", err)
		}
		return strings.TrimSpace(line), nil
	}
	fmt.Fprint(os.Stderr, "VISE API password: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// with opens the target, runs f and closes the driver again.
func (t *Target) with(logger *slog.Logger, rawLogger log.RawLogger, f func(d driver, cat *key.Catalog) error) error {
	d, cat, err := t.open(context.Background(), logger, rawLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := d.Close(); err != nil {
			logger.Error("failed to close", "error", err)
		}
	}()
	return f(d, cat)
}

func printHeld(codes []key.Code, cat *key.Catalog) {
	if len(codes) == 0 {
		fmt.Fprintln(stdout, "no keys held")
		return
	}
	for _, c := range codes {
		name := "?"
		if k, ok := cat.Decode(c); ok {
			name = k.String()
		}
		fmt.Fprintf(stdout, "%-12s %#x\n", name, uint32(c))
	}
}
