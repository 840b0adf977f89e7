package commands

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/tasklist/internal/core/logging"
	"github.com/hay-kot/tasklist/internal/core/task"
	"github.com/hay-kot/tasklist/internal/tui"
	"github.com/hay-kot/tasklist/pkg/profiler"
	"github.com/hay-kot/tasklist/pkg/randid"
)

type TuiCmd struct {
	flags *Flags
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "profiler-port",
			Usage:       "enable pprof HTTP endpoint on specified port (e.g., 6060)",
			Sources:     cli.EnvVars("TASKLIST_PROFILER_PORT"),
			Destination: &cmd.flags.ProfilerPort,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	if err := cmd.flags.checkReady(); err != nil {
		return err
	}

	ctx = logging.WithRunID(ctx, randid.Generate(6))
	ctx = logging.WithSource(ctx, "tui")

	if cmd.flags.ProfilerPort > 0 {
		profServer := profiler.New(cmd.flags.ProfilerPort, logging.Component("profiler"))
		if err := profServer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start profiler: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := profServer.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("failed to shutdown profiler server")
			}
		}()
		log.Info().
			Str("url", fmt.Sprintf("http://%s/debug/pprof/", profServer.Addr())).
			Msg("profiler endpoint available")
	}

	ctrl, err := newController(ctx, cmd.flags.Config.IDs)
	if err != nil {
		return err
	}

	m := tui.New(tui.Deps{
		Controller: ctrl,
		Config:     cmd.flags.Config,
	})

	p := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	st := ctrl.State()
	log.Info().
		Ctx(ctx).
		Int("tasks", len(st.Tasks)).
		Int("completed", st.CompletedCount()).
		Msg("tui exited")

	return nil
}

// newController builds a controller whose log lines carry the run_id and
// source stored in ctx.
func newController(ctx context.Context, strategy task.IDStrategy) (*task.Controller, error) {
	ids, err := task.NewIDSource(strategy)
	if err != nil {
		return nil, err
	}

	logger := logging.Component("task-controller").With().Ctx(ctx).Logger()
	return task.NewController(task.WithIDSource(ids), task.WithLogger(logger)), nil
}
