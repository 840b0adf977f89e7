package config

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/tasklist/internal/core/styles"
)

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if !c.IDs.IsValid() {
		errs = errs.Append("ids", fmt.Errorf("invalid id strategy %q: must be clock or counter", c.IDs))
	}

	if _, ok := styles.GetPalette(c.TUI.Theme); !ok {
		errs = errs.Append("tui.theme", fmt.Errorf("unknown theme %q: must be one of %v", c.TUI.Theme, styles.ThemeNames()))
	}

	if c.TUI.CharLimit < 1 {
		errs = errs.Append("tui.char_limit", fmt.Errorf("must be at least 1"))
	}

	errs = c.validateKeys(errs)

	return errs.ToError()
}

func (c *Config) validateKeys(errs criterio.FieldErrorsBuilder) criterio.FieldErrorsBuilder {
	for _, action := range slices.Sorted(maps.Keys(c.Keys)) {
		field := fmt.Sprintf("keys.%s", action)
		keys := c.Keys[action]

		if !isKnownAction(action) {
			errs = errs.Append(field, fmt.Errorf("unknown action %q", action))
			continue
		}
		if len(keys) == 0 {
			errs = errs.Append(field, fmt.Errorf("at least one key is required"))
			continue
		}
		for i, k := range keys {
			if k == "" {
				errs = errs.Append(fmt.Sprintf("%s[%d]", field, i), fmt.Errorf("key cannot be empty"))
			}
		}
	}

	// A single keypress must resolve to at most one list action.
	owner := map[string]string{}
	for _, action := range listActions {
		for _, k := range c.Keys[action] {
			if prev, ok := owner[k]; ok && prev != action {
				errs = errs.Append(fmt.Sprintf("keys.%s", action), fmt.Errorf("key %q is already bound to %s", k, prev))
				continue
			}
			owner[k] = action
		}
	}

	for _, action := range inputActions {
		for _, k := range c.Keys[action] {
			if slices.Contains(reservedInputKeys, k) {
				errs = errs.Append(fmt.Sprintf("keys.%s", action), fmt.Errorf("key %q is reserved by the input field", k))
				continue
			}
			if r, size := utf8.DecodeRuneInString(k); size == len(k) && size > 0 && unicode.IsPrint(r) {
				errs = errs.Append(fmt.Sprintf("keys.%s", action), fmt.Errorf("key %q would prevent typing it into the input field", k))
			}
		}
	}

	return errs
}

// ValidateDeep performs Validate plus checks that touch the file system.
// The configPath argument specifies the config file location to validate
// (empty string skips the config file check).
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("log_file", c.LogDir(), isDirectoryOrNotExist),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}
