// Package configpaths resolves where VISE looks for configuration files and
// keeps its API key.
package configpaths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	appName   = "vise"
	systemDir = "/etc/vise"

	// EnvConfig names an explicit config file.
	EnvConfig = "VISE_CONFIG"
)

// DefaultConfigDir returns the per-user configuration directory.
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("AppData"); appdata != "" {
			return filepath.Join(appdata, "VISE"), nil
		}
		return "", errors.New("AppData not set")
	case "darwin":
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, "Library", "Application Support", "VISE"), nil
		}
		return "", errors.New("HOME not set")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".config", appName), nil
		}
		return "", errors.New("HOME not set")
	}
}

// NormalizeFormat returns the canonical format name, or "" if unknown.
func NormalizeFormat(f string) string {
	switch strings.ToLower(f) {
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return ""
	}
}

// DefaultNamedConfigPath returns <config dir>/<baseName>.<ext>.
func DefaultNamedConfigPath(baseName, format string) (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	ext := NormalizeFormat(format)
	if ext == "" {
		ext = "json"
	}
	return filepath.Join(dir, baseName+"."+ext), nil
}

// EnsureDir creates the parent directory of filePath.
func EnsureDir(filePath string) error {
	return os.MkdirAll(filepath.Dir(filePath), 0o755)
}

// FindUserConfig extracts --config from args, falling back to VISE_CONFIG.
// It runs before kong so the file can feed kong's resolvers.
func FindUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if v, ok := strings.CutPrefix(a, "--config="); ok {
			return v
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv(EnvConfig)
}

// Candidates holds config file paths per loader, highest priority first.
type Candidates struct {
	JSON []string
	YAML []string
	TOML []string
}

func (c *Candidates) addBase(dir, base string) {
	c.JSON = append(c.JSON, filepath.Join(dir, base+".json"))
	c.YAML = append(c.YAML, filepath.Join(dir, base+".yaml"), filepath.Join(dir, base+".yml"))
	c.TOML = append(c.TOML, filepath.Join(dir, base+".toml"))
}

// ConfigCandidatePaths lists where config files are searched. userPath, when
// set, comes first and is routed to the loader matching its extension.
func ConfigCandidatePaths(userPath string) Candidates {
	var c Candidates
	if userPath != "" {
		switch NormalizeFormat(strings.TrimPrefix(filepath.Ext(userPath), ".")) {
		case "yaml":
			c.YAML = append(c.YAML, userPath)
		case "toml":
			c.TOML = append(c.TOML, userPath)
		default:
			c.JSON = append(c.JSON, userPath)
		}
	}

	bases := []string{appName, "config", "serve", "client"}
	if wd, err := os.Getwd(); err == nil {
		for _, b := range bases {
			c.addBase(wd, b)
		}
	}
	if dir, err := DefaultConfigDir(); err == nil {
		for _, b := range bases[1:] {
			c.addBase(dir, b)
		}
	}
	if runtime.GOOS != "windows" {
		for _, b := range bases[1:] {
			c.addBase(systemDir, b)
		}
	}
	return c
}
