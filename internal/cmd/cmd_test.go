package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/VISE/backend/platform"
	"github.com/Alia5/VISE/engine"
	"github.com/Alia5/VISE/internal/log"
	"github.com/Alia5/VISE/internal/server/api"
	"github.com/Alia5/VISE/internal/server/api/handler"
	th "github.com/Alia5/VISE/internal/testing"
	"github.com/Alia5/VISE/key"
)

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func quietLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func findRow(out, name string) []string {
	for _, line := range strings.Split(out, "\n") {
		f := strings.Fields(line)
		if len(f) >= 3 && f[1] == name {
			return f
		}
	}
	return nil
}

func TestKeysCommand(t *testing.T) {
	out := captureStdout(t)
	require.NoError(t, (&Keys{Platform: "Windows"}).Run())

	assert.Equal(t, []string{"44", "Control", "0x11"}, findRow(out.String(), "Control"))
	assert.Equal(t, []string{"10", "A", "0x41"}, findRow(out.String(), "A"))
	assert.Contains(t, findRow(out.String(), "OEM2"), "approximate:")

	err := (&Keys{Platform: "amiga"}).Run()
	assert.ErrorContains(t, err, `unknown platform "amiga" (have darwin, evdev, hid, windows, x11)`)
}

func TestConfigInitServe(t *testing.T) {
	captureStdout(t)
	dest := filepath.Join(t.TempDir(), "nested", "serve.yaml")
	c := &ConfigInit{Command: "serve", Format: "yaml", Output: dest}
	require.NoError(t, c.Run())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, yaml.Unmarshal(data, &got))

	assert.Equal(t, "auto", got["backend"])
	assert.Equal(t, map[string]any{"name": "VISE virtual input"}, got["uinput"])
	apiCfg := got["api"].(map[string]any)
	assert.Equal(t, "localhost:3243", apiCfg["addr"])
	assert.Equal(t, "10s", apiCfg["connectionTimeout"])
	assert.NotContains(t, apiCfg, "password")
	hidCfg := got["hid"].(map[string]any)
	assert.Equal(t, "report", hidCfg["encoding"])

	assert.ErrorContains(t, c.Run(), "destination exists")
	c.Force = true
	assert.NoError(t, c.Run())
}

func TestConfigInitClient(t *testing.T) {
	captureStdout(t)
	dest := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, (&ConfigInit{Command: "client", Format: "json", Output: dest}).Run())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, `"remote": ""`)
	assert.Contains(t, s, `"timeout": "5s"`)
	assert.Contains(t, s, `"backend": "auto"`)

	assert.ErrorContains(t, (&ConfigInit{Command: "serve", Format: "ini"}).Run(), "unsupported format")
}

func TestRemoteCommands(t *testing.T) {
	e, err := engine.New(th.NewRecordingBackend(key.PlatformEvdev))
	require.NoError(t, err)
	addr, _ := th.StartAPIServer(t, api.ServerConfig{}, func(r *api.Router) {
		handler.RegisterAll(r, e, "test")
	})
	target := Target{Remote: addr}
	logger, raw := quietLogger(), log.NewRaw(nil)

	out := captureStdout(t)
	require.NoError(t, (&Press{Target: target, Keys: []string{"ctrl", "shift"}}).Run(logger, raw))
	require.NoError(t, (&Held{Target: target}).Run(logger, raw))
	assert.Equal(t, fmt.Sprintf("%-12s 0x1d\n%-12s 0x2a\n", "Control", "Shift"), out.String())

	out.Reset()
	require.NoError(t, (&Toggle{Target: target, Keys: []string{"shift:up", "ctrl:up"}}).Run(logger, raw))
	assert.Equal(t, "no keys held\n", out.String())

	require.NoError(t, (&Click{Target: target, Button: "middle"}).Run(logger, raw))
	require.NoError(t, (&Scroll{Target: target, Direction: "down", Amount: 2}).Run(logger, raw))
	require.NoError(t, (&Type{Target: target, Text: []string{"hello", "world"}}).Run(logger, raw))

	err = (&Position{Target: target}).Run(logger, raw)
	assert.EqualError(t, err, "501 Not Implemented: pointer position: not supported on evdev")

	err = (&Press{Target: target, Keys: []string{"nope"}}).Run(logger, raw)
	assert.EqualError(t, err, `unknown key "nope"`)

	out.Reset()
	require.NoError(t, (&Ping{Target: target}).Run(logger))
	assert.Equal(t, "vise test on evdev\n", out.String())

	out.Reset()
	require.NoError(t, (&Capabilities{Target: target}).Run(logger, raw))
	assert.Equal(t, "platform:     evdev\ncapabilities: none\n", out.String())
}

func TestPingNeedsRemote(t *testing.T) {
	assert.EqualError(t, (&Ping{}).Run(quietLogger()), "ping needs --remote")
}

func TestServeKeyFile(t *testing.T) {
	s := &Serve{KeyFile: filepath.Join(t.TempDir(), "cfg", keyFileName)}

	first, err := s.loadPassword(quietLogger())
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	second, err := s.loadPassword(quietLogger())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	require.NoError(t, os.WriteFile(s.KeyFile, []byte("  custom secret \n"), 0o600))
	third, err := s.loadPassword(quietLogger())
	require.NoError(t, err)
	assert.Equal(t, "custom secret", third)

	require.NoError(t, os.WriteFile(s.KeyFile, []byte("\n"), 0o600))
	_, err = s.loadPassword(quietLogger())
	assert.ErrorContains(t, err, "is empty")
}

func TestServeStartsAndStops(t *testing.T) {
	dir := t.TempDir()
	kbd := filepath.Join(dir, "hidg0")
	require.NoError(t, os.WriteFile(kbd, nil, 0o600))

	s := &Serve{
		Platform:        platform.Config{Backend: platform.HID},
		ApiServerConfig: api.ServerConfig{Addr: "127.0.0.1:0"},
		KeyFile:         filepath.Join(dir, keyFileName),
	}
	s.Platform.HID.Keyboard = kbd

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, s.StartServer(ctx, quietLogger(), log.NewRaw(nil)))
	assert.FileExists(t, s.KeyFile)
	assert.NotEmpty(t, s.ApiServerConfig.Password)

	s.ApiServerConfig.Addr = ""
	assert.ErrorContains(t, s.StartServer(ctx, quietLogger(), log.NewRaw(nil)), "address must be set")
}
