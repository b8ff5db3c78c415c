// Package paths resolves configuration and data directory locations.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// appDirName is the per-application directory under the platform bases.
const appDirName = "kpalwiki"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "KPALWIKI_CONFIG_DIR"
	EnvDataDir   = "KPALWIKI_DATA_DIR"
)

// DefaultConfigDir returns the platform default configuration directory
// ($XDG_CONFIG_HOME/kpalwiki on Linux, the platform equivalent elsewhere).
func DefaultConfigDir() string {
	return filepath.Join(xdg.ConfigHome, appDirName)
}

// DefaultDataDir returns the platform default data directory
// ($XDG_DATA_HOME/kpalwiki on Linux, the platform equivalent elsewhere).
func DefaultDataDir() string {
	return filepath.Join(xdg.DataHome, appDirName)
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > KPALWIKI_CONFIG_DIR env > platform default.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir(), nil
}

// ResolveDataDir returns the data directory following the precedence
// chain: flag > KPALWIKI_DATA_DIR env > platform default.
func ResolveDataDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultDataDir(), nil
}
