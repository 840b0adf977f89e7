package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/tasklist/internal/core/styles"
	"github.com/hay-kot/tasklist/pkg/iojson"
)

type ConfigCmd struct {
	flags  *Flags
	format string
}

// NewConfigCmd creates the config command group.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config commands to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "tasklist config validate [options]",
				Description: "Validates the configuration file, checking themes, key bindings, and file paths.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.runValidate,
			},
			{
				Name:      "show",
				Usage:     "Print the effective configuration as YAML",
				UsageText: "tasklist config show",
				Action:    cmd.runShow,
			},
		},
	})

	return app
}

// ValidationIssue is a single problem reported by config validate.
type ValidationIssue struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (cmd *ConfigCmd) runValidate(_ context.Context, c *cli.Command) error {
	// Logger setup failures are not listed here; ValidateDeep reports the
	// log directory problem that caused them.
	var issues []ValidationIssue
	if cmd.flags.loadErr != nil {
		issues = append(issues, ValidationIssue{Field: "config_file", Message: cmd.flags.loadErr.Error()})
	}
	issues = append(issues, validationIssues(cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath))...)

	w := c.Root().Writer
	var err error
	if cmd.format == "json" {
		err = iojson.WriteWith(w, c.Root().ErrWriter, struct {
			Valid  bool              `json:"valid"`
			Errors []ValidationIssue `json:"errors,omitempty"`
		}{
			Valid:  len(issues) == 0,
			Errors: issues,
		})
	} else {
		err = writeValidationText(w, issues)
	}
	if err != nil {
		return err
	}

	if len(issues) > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func writeValidationText(w io.Writer, issues []ValidationIssue) error {
	for _, issue := range issues {
		line := issue.Message
		if issue.Field != "" {
			line = issue.Field + ": " + issue.Message
		}
		if _, err := fmt.Fprintln(w, styles.ErrorStyle.Render("✗ "+line)); err != nil {
			return err
		}
	}

	if len(issues) == 0 {
		_, err := fmt.Fprintln(w, styles.SuccessStyle.Render("✓ Configuration is valid"))
		return err
	}

	_, err := fmt.Fprintln(w, styles.ErrorStyle.Render(fmt.Sprintf("%d error(s) found", len(issues))))
	return err
}

// validationIssues flattens criterio field errors into a stable list.
func validationIssues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}

	var fe criterio.FieldErrors
	if !errors.As(err, &fe) {
		return []ValidationIssue{{Message: err.Error()}}
	}

	issues := make([]ValidationIssue, 0, len(fe))
	for _, e := range fe {
		issues = append(issues, ValidationIssue{Field: e.Field, Message: e.Err.Error()})
	}
	return issues
}

func (cmd *ConfigCmd) runShow(_ context.Context, c *cli.Command) error {
	if cmd.flags.loadErr != nil {
		return fmt.Errorf("load config: %w", cmd.flags.loadErr)
	}

	out, err := cmd.flags.Config.YAML()
	if err != nil {
		return fmt.Errorf("render config: %w", err)
	}

	_, err = c.Root().Writer.Write(out)
	return err
}
