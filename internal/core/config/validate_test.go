package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "tasklist.log")
	return &cfg
}

func TestValidate_Defaults(t *testing.T) {
	assert.NoError(t, validConfig(t).Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantField string
		wantErr   string
	}{
		{
			name:      "unknown id strategy",
			mutate:    func(c *Config) { c.IDs = "uuid" },
			wantField: "ids",
			wantErr:   "invalid id strategy",
		},
		{
			name:      "unknown theme",
			mutate:    func(c *Config) { c.TUI.Theme = "neon" },
			wantField: "tui.theme",
			wantErr:   "unknown theme",
		},
		{
			name:      "zero char limit",
			mutate:    func(c *Config) { c.TUI.CharLimit = 0 },
			wantField: "tui.char_limit",
			wantErr:   "at least 1",
		},
		{
			name:      "unknown action",
			mutate:    func(c *Config) { c.Keys["archive"] = []string{"z"} },
			wantField: "keys.archive",
			wantErr:   "unknown action",
		},
		{
			name:      "action without keys",
			mutate:    func(c *Config) { c.Keys[ActionQuit] = nil },
			wantField: "keys.quit",
			wantErr:   "at least one key",
		},
		{
			name:      "empty key",
			mutate:    func(c *Config) { c.Keys[ActionQuit] = []string{"q", ""} },
			wantField: "keys.quit[1]",
			wantErr:   "cannot be empty",
		},
		{
			name:      "delete shares a key with toggle",
			mutate:    func(c *Config) { c.Keys[ActionDelete] = []string{"x"} },
			wantField: "keys.delete",
			wantErr:   `"x" is already bound to toggle`,
		},
		{
			name:      "focus list on enter",
			mutate:    func(c *Config) { c.Keys[ActionFocusList] = []string{"enter"} },
			wantField: "keys.focus_list",
			wantErr:   "reserved",
		},
		{
			name:      "focus list on printable key",
			mutate:    func(c *Config) { c.Keys[ActionFocusList] = []string{"j"} },
			wantField: "keys.focus_list",
			wantErr:   "prevent typing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			err := cfg.Validate()

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			require.Len(t, fieldErrs, 1)
			assert.Equal(t, tt.wantField, fieldErrs[0].Field)
			assert.Contains(t, fieldErrs[0].Err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_SameKeyAcrossScopes(t *testing.T) {
	cfg := validConfig(t)
	cfg.Keys[ActionDown] = []string{"tab"}
	cfg.Keys[ActionFocusInput] = []string{"i"}
	cfg.Keys[ActionFocusList] = []string{"tab"}

	assert.NoError(t, cfg.Validate(), "list and input keys do not collide")
}

func TestValidateDeep(t *testing.T) {
	cfg := validConfig(t)
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("ids: clock\n"), 0o644))

	assert.NoError(t, cfg.ValidateDeep(configPath))
	assert.NoError(t, cfg.ValidateDeep(""))
	assert.NoError(t, cfg.ValidateDeep(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestValidateDeep_ConfigIsDirectory(t *testing.T) {
	cfg := validConfig(t)

	err := cfg.ValidateDeep(t.TempDir())

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "config_file", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "is a directory")
}

func TestValidateDeep_LogDirIsFile(t *testing.T) {
	cfg := validConfig(t)
	notADir := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(notADir, nil, 0o644))
	cfg.LogFile = filepath.Join(notADir, "tasklist.log")

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "log_file", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "not a directory")
}

func TestValidateDeep_RunsValidate(t *testing.T) {
	cfg := validConfig(t)
	cfg.TUI.CharLimit = -1

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "tui.char_limit", fieldErrs[0].Field)
}
