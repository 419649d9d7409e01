package configpaths_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/VISE/internal/configpaths"
)

func TestFindUserConfig(t *testing.T) {
	t.Setenv(configpaths.EnvConfig, "/env/vise.toml")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"equals form", []string{"serve", "--config=/a/b.yaml"}, "/a/b.yaml"},
		{"separate arg", []string{"--config", "c.json", "serve"}, "c.json"},
		{"dangling flag falls back to env", []string{"serve", "--config"}, "/env/vise.toml"},
		{"env", []string{"serve"}, "/env/vise.toml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, configpaths.FindUserConfig(tt.args))
		})
	}
}

func TestConfigCandidatePathsRoutesUserPath(t *testing.T) {
	tests := []struct {
		path string
		pick func(configpaths.Candidates) []string
	}{
		{"x/custom.yml", func(c configpaths.Candidates) []string { return c.YAML }},
		{"x/custom.yaml", func(c configpaths.Candidates) []string { return c.YAML }},
		{"x/custom.toml", func(c configpaths.Candidates) []string { return c.TOML }},
		{"x/custom.json", func(c configpaths.Candidates) []string { return c.JSON }},
		{"x/custom.conf", func(c configpaths.Candidates) []string { return c.JSON }},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := tt.pick(configpaths.ConfigCandidatePaths(tt.path))
			require.NotEmpty(t, got)
			assert.Equal(t, tt.path, got[0])
		})
	}
}

func TestConfigCandidatePathsIncludesConfigDir(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG layout only")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	c := configpaths.ConfigCandidatePaths("")
	assert.Contains(t, c.YAML, filepath.Join(dir, "vise", "serve.yaml"))
	assert.Contains(t, c.TOML, filepath.Join("/etc/vise", "config.toml"))
	assert.Contains(t, c.JSON, filepath.Join(dir, "vise", "client.json"))
}

func TestDefaultNamedConfigPath(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG layout only")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	p, err := configpaths.DefaultNamedConfigPath("serve", "yml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "vise", "serve.yaml"), p)

	p, err = configpaths.DefaultNamedConfigPath("serve", "ini")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "vise", "serve.json"), p)
}
