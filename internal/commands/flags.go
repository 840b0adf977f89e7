package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/hay-kot/tasklist/internal/core/config"
)

type Flags struct {
	LogLevel     string
	LogFile      string
	ConfigPath   string
	ProfilerPort int

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Setup failures are held until a command decides how to report them,
	// so config validate can list them instead of the run aborting early.
	logErr    error
	loadErr   error
	logCloser func()
}

// checkReady returns the first setup failure, or the result of a full
// config validation.
func (f *Flags) checkReady() error {
	if f.logErr != nil {
		return fmt.Errorf("setup logger: %w", f.logErr)
	}
	if f.loadErr != nil {
		return fmt.Errorf("load config: %w", f.loadErr)
	}
	if err := f.Config.ValidateDeep(f.ConfigPath); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tasklist", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/tasklist/tasklist.log
// On Linux: $XDG_STATE_HOME/tasklist/tasklist.log (defaults to ~/.local/state/tasklist/tasklist.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "tasklist", "tasklist.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "tasklist", "tasklist.log")
	}

	return filepath.Join(home, ".local", "state", "tasklist", "tasklist.log")
}
