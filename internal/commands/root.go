package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/tasklist/internal/core/config"
	"github.com/hay-kot/tasklist/internal/core/logging"
	"github.com/hay-kot/tasklist/internal/core/styles"
	"github.com/hay-kot/tasklist/pkg/logutils"
)

// NewRoot builds the root command with every subcommand registered and the
// TUI as the default action.
func NewRoot(flags *Flags, version string) *cli.Command {
	root := &cli.Command{
		Name:      "tasklist",
		Usage:     "A small interactive todo list",
		UsageText: "tasklist [global options] command [command options]",
		Description: `Tasklist keeps a single in-memory list of tasks for the length of a session.

Run 'tasklist' with no arguments to open the interactive list.
Run 'tasklist batch' to replay a scripted list of events and print the result as JSON.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TASKLIST_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("TASKLIST_LOG_FILE"),
				Value:       DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file (.yaml or .toml)",
				Sources:     cli.EnvVars("TASKLIST_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
		Before: flags.setup,
		After: func(context.Context, *cli.Command) error {
			if flags.logCloser != nil {
				flags.logCloser()
			}
			return nil
		},
	}

	tuiCmd := NewTuiCmd(flags)

	root = NewBatchCmd(flags).Register(root)
	root = NewConfigCmd(flags).Register(root)

	// Register TUI flags on root command
	root.Flags = append(root.Flags, tuiCmd.Flags()...)

	// Set TUI as default action when no subcommand is provided
	root.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'tasklist --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	return root
}

// setup opens the log file and loads the config. Failures are recorded on
// flags rather than returned; commands call checkReady before doing work.
func (f *Flags) setup(ctx context.Context, _ *cli.Command) (context.Context, error) {
	f.logErr, f.loadErr, f.logCloser = nil, nil, nil

	// The TUI owns the terminal, so logs always go to a file.
	logger, closer, err := logutils.New(f.LogLevel, f.LogFile, logging.ContextHook{})
	if err != nil {
		f.logErr = err
		logger = zerolog.Nop()
	}
	log.Logger = logger
	f.logCloser = closer

	cfg, err := config.Load(f.ConfigPath, f.LogFile)
	if err != nil {
		f.loadErr = err
		def := config.DefaultConfig()
		def.LogFile = f.LogFile
		cfg = &def
	}
	f.Config = cfg

	if palette, ok := styles.GetPalette(cfg.TUI.Theme); ok {
		styles.SetTheme(palette)
	}

	log.Debug().
		Str("config", f.ConfigPath).
		Str("ids", string(cfg.IDs)).
		Str("theme", cfg.TUI.Theme).
		Msg("config loaded")

	return ctx, nil
}
