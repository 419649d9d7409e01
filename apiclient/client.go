package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	apitypes "github.com/Alia5/VISE/apitypes"
	"github.com/Alia5/VISE/key"
)

// Client provides a high-level interface to the VISE API, handling request
// formatting, response parsing, and error handling.
//
// Its input methods mirror the engine's, so a remote server can stand in for
// a local engine.
type Client struct{ transport *Transport }

// New constructs a high-level API client using the internal low-level Transport.
// The addr parameter specifies the TCP address (host:port) of the VISE API server.
func New(addr string) *Client { return &Client{transport: NewTransport(addr)} }

// NewWithPassword constructs a client that authenticates with the given password.
func NewWithPassword(addr, password string) *Client {
	return &Client{transport: NewTransportWithPassword(addr, password)}
}

// NewWithConfig constructs a client with custom transport timeouts.
func NewWithConfig(addr string, cfg *Config) *Client {
	return &Client{transport: NewTransportWithConfig(addr, cfg)}
}

// WithTransport constructs a Client using a custom Transport implementation.
// This is primarily useful for testing or when advanced transport configuration is needed.
func WithTransport(t *Transport) *Client { return &Client{transport: t} }

// Close exists so a Client can be used where an engine is expected. Every
// request uses its own connection; there is nothing to release.
func (c *Client) Close() error { return nil }

// Ping returns the version and identity of the VISE server.
func (c *Client) Ping() (*apitypes.PingResponse, error) {
	return c.PingCtx(context.Background())
}

// PingCtx is the context-aware version of Ping.
func (c *Client) PingCtx(ctx context.Context) (*apitypes.PingResponse, error) {
	raw, err := c.transport.DoCtx(ctx, "ping", nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.PingResponse](raw)
}

// Capabilities reports the platform of the server's engine and the optional
// operations its backend supports.
func (c *Client) Capabilities() (*apitypes.CapabilitiesResponse, error) {
	return c.CapabilitiesCtx(context.Background())
}

func (c *Client) CapabilitiesCtx(ctx context.Context) (*apitypes.CapabilitiesResponse, error) {
	raw, err := c.transport.DoCtx(ctx, "capabilities", nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.CapabilitiesResponse](raw)
}

// Held returns the held native codes together with their logical names.
func (c *Client) Held() (*apitypes.HeldResponse, error) {
	return c.HeldCtx(context.Background())
}

func (c *Client) HeldCtx(ctx context.Context) (*apitypes.HeldResponse, error) {
	raw, err := c.transport.DoCtx(ctx, "held", nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.HeldResponse](raw)
}

// HeldKeys returns only the held native codes, ascending.
func (c *Client) HeldKeys() ([]key.Code, error) {
	return c.HeldKeysCtx(context.Background())
}

func (c *Client) HeldKeysCtx(ctx context.Context) ([]key.Code, error) {
	h, err := c.HeldCtx(ctx)
	if err != nil {
		return nil, err
	}
	return h.Codes, nil
}

func (c *Client) PointerPosition() (apitypes.Point, error) {
	return c.PointerPositionCtx(context.Background())
}

func (c *Client) PointerPositionCtx(ctx context.Context) (apitypes.Point, error) {
	raw, err := c.transport.DoCtx(ctx, "pointer/get", nil)
	if err != nil {
		return apitypes.Point{}, err
	}
	p, err := parse[apitypes.Point](raw)
	if err != nil {
		return apitypes.Point{}, err
	}
	return *p, nil
}

func (c *Client) SetPointerPosition(x, y int) error {
	return c.SetPointerPositionCtx(context.Background(), x, y)
}

func (c *Client) SetPointerPositionCtx(ctx context.Context, x, y int) error {
	raw, err := c.transport.DoCtx(ctx, "pointer/set", apitypes.Point{X: x, Y: y})
	if err != nil {
		return err
	}
	_, err = parse[apitypes.Point](raw)
	return err
}

// ClickButton presses and releases b.
func (c *Client) ClickButton(b key.Button) error {
	return c.ClickButtonCtx(context.Background(), b)
}

func (c *Client) ClickButtonCtx(ctx context.Context, b key.Button) error {
	return c.empty(ctx, "button/click", b.String())
}

func (c *Client) SetButtonState(b key.Button, down bool) error {
	return c.SetButtonStateCtx(context.Background(), b, down)
}

func (c *Client) SetButtonStateCtx(ctx context.Context, b key.Button, down bool) error {
	path := "button/release"
	if down {
		path = "button/press"
	}
	return c.empty(ctx, path, b.String())
}

func (c *Client) Scroll(dir key.Direction, amount int) error {
	return c.ScrollCtx(context.Background(), dir, amount)
}

func (c *Client) ScrollCtx(ctx context.Context, dir key.Direction, amount int) error {
	if !dir.Valid() {
		return fmt.Errorf("invalid scroll direction %d", uint8(dir))
	}
	return c.empty(ctx, "scroll", apitypes.ScrollRequest{Direction: dir, Amount: amount})
}

// TypeText sends s verbatim. An empty string sends nothing.
func (c *Client) TypeText(s string) error {
	return c.TypeTextCtx(context.Background(), s)
}

func (c *Client) TypeTextCtx(ctx context.Context, s string) error {
	if s == "" {
		return nil
	}
	return c.empty(ctx, "type", s)
}

func (c *Client) PressKeys(keys []key.Key) error {
	_, err := c.PressKeysCtx(context.Background(), keys)
	return err
}

// PressKeysCtx returns the held set reported after the presses.
func (c *Client) PressKeysCtx(ctx context.Context, keys []key.Key) (*apitypes.HeldResponse, error) {
	return c.keys(ctx, "keys/press", apitypes.KeysRequest(keys))
}

func (c *Client) ReleaseKeys(keys []key.Key) error {
	_, err := c.ReleaseKeysCtx(context.Background(), keys)
	return err
}

func (c *Client) ReleaseKeysCtx(ctx context.Context, keys []key.Key) (*apitypes.HeldResponse, error) {
	return c.keys(ctx, "keys/release", apitypes.KeysRequest(keys))
}

// PressThenReleaseKeys presses every key, then releases every key. The Down
// flags are ignored by the server.
func (c *Client) PressThenReleaseKeys(toggles []key.Toggle) error {
	_, err := c.PressThenReleaseKeysCtx(context.Background(), toggles)
	return err
}

func (c *Client) PressThenReleaseKeysCtx(ctx context.Context, toggles []key.Toggle) (*apitypes.HeldResponse, error) {
	return c.keys(ctx, "keys/chord", apitypes.TogglesRequest(toggles))
}

func (c *Client) ToggleKeys(toggles []key.Toggle) error {
	_, err := c.ToggleKeysCtx(context.Background(), toggles)
	return err
}

func (c *Client) ToggleKeysCtx(ctx context.Context, toggles []key.Toggle) (*apitypes.HeldResponse, error) {
	return c.keys(ctx, "keys/toggle", apitypes.TogglesRequest(toggles))
}

func (c *Client) keys(ctx context.Context, path string, payload any) (*apitypes.HeldResponse, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", path, err)
	}
	raw, err := c.transport.DoCtx(ctx, path, b)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.HeldResponse](raw)
}

// empty performs a request whose success response is an empty line.
func (c *Client) empty(ctx context.Context, path string, payload any) error {
	raw, err := c.transport.DoCtx(ctx, path, payload)
	if err != nil {
		return err
	}
	if raw == "" {
		return nil
	}
	if problem, ok := parseProblem(raw); ok {
		return problem
	}
	return fmt.Errorf("unexpected response to %s: %q", path, raw)
}

func parseProblem(data string) (*apitypes.ApiError, bool) {
	var problem apitypes.ApiError
	if err := json.Unmarshal([]byte(data), &problem); err == nil && (problem.Status != 0 || problem.Title != "") {
		return &problem, true
	}
	return nil, false
}

func parse[T any](data string) (*T, error) {
	if data == "" {
		return nil, errors.New("empty response")
	}
	if problem, ok := parseProblem(data); ok {
		return nil, problem
	}
	var out T
	dec := json.NewDecoder(bytes.NewReader([]byte(data)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &out, nil
}
