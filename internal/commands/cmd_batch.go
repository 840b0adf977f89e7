package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/tasklist/internal/core/logging"
	"github.com/hay-kot/tasklist/internal/core/replay"
	"github.com/hay-kot/tasklist/internal/core/task"
	"github.com/hay-kot/tasklist/internal/tui/jsoncolor"
	"github.com/hay-kot/tasklist/pkg/iojson"
	"github.com/hay-kot/tasklist/pkg/randid"
)

type BatchCmd struct {
	flags *Flags
	fr    *iojson.FileReader
	ids   string
	trace bool
	color bool
}

func NewBatchCmd(flags *Flags) *BatchCmd {
	return &BatchCmd{
		flags: flags,
		fr:    &iojson.FileReader{},
	}
}

func (cmd *BatchCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "batch",
		Usage: "Replay a scripted list of task events",
		UsageText: `tasklist batch [options]

Read from stdin:
  echo '[{"op":"input","text":"Buy milk"},{"op":"add"}]' | tasklist batch

Read from file:
  tasklist batch -f script.json --trace`,
		Description: `Runs a list of events against an empty task list and prints the
resulting state as JSON.

Input is either a bare array of events or an object with an "events" array:
  {
    "events": [
      {"op": "input", "text": "Buy milk"},
      {"op": "add"},
      {"op": "toggle", "id": 1},
      {"op": "delete", "id": 1}
    ]
  }

Ops:
  input  - Replace the pending input with "text".
  add    - Add a task from the pending input. Blank input is ignored.
  toggle - Flip the completed flag of task "id". Unknown ids are ignored.
  delete - Remove task "id". Unknown ids are ignored.

With --trace, one JSON line per event is written before the result.
With --color, the result is pretty-printed with the configured theme.`,
		Flags: []cli.Flag{
			cmd.fr.Flag(),
			&cli.BoolFlag{
				Name:        "trace",
				Usage:       "write the state after every event as JSON lines",
				Destination: &cmd.trace,
			},
			&cli.BoolFlag{
				Name:        "color",
				Usage:       "pretty-print the result with theme colors",
				Destination: &cmd.color,
			},
			&cli.StringFlag{
				Name:        "ids",
				Usage:       "task id strategy (clock, counter)",
				Value:       string(task.IDStrategyCounter),
				Destination: &cmd.ids,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *BatchCmd) run(ctx context.Context, c *cli.Command) error {
	w := c.Root().Writer

	ctx = logging.WithRunID(ctx, randid.Generate(6))
	ctx = logging.WithSource(ctx, "batch")
	logger := logging.Component("batch").With().Ctx(ctx).Logger()

	fail := func(msg string, err error) error {
		logger.Error().Err(err).Msg(msg)
		if werr := iojson.WriteError(w, fmt.Sprintf("%s: %s", msg, err), nil); werr != nil {
			return werr
		}
		return cli.Exit("", 1)
	}

	if err := cmd.flags.checkReady(); err != nil {
		return fail("setup", err)
	}

	data, err := cmd.fr.ReadRaw()
	if err != nil {
		return fail("read input", err)
	}

	script, err := replay.Parse(data)
	if err != nil {
		return fail("invalid script", err)
	}

	ctrl, err := newController(ctx, task.IDStrategy(cmd.ids))
	if err != nil {
		return fail("invalid --ids", err)
	}

	ctrl.Subscribe(func(ch task.Change) {
		logger.Debug().
			Str("op", string(ch.Op)).
			Int64("id", int64(ch.Task.ID)).
			Msg("applied")
	})

	logger.Info().Int("events", len(script.Events)).Msg("starting replay")

	var traceErr error
	var trace func(replay.Step)
	if cmd.trace {
		trace = func(s replay.Step) {
			if traceErr == nil {
				traceErr = iojson.WriteLine(w, s)
			}
		}
	}

	final := replay.Run(ctrl, script, trace)
	if traceErr != nil {
		return fmt.Errorf("write trace: %w", traceErr)
	}

	logger.Info().
		Int("tasks", len(final.Tasks)).
		Int("completed", final.CompletedCount()).
		Msg("replay complete")

	result := replay.NewResult(final)
	if cmd.color {
		bits, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		_, err = fmt.Fprintln(w, jsoncolor.Colorize(bits))
		return err
	}

	return iojson.WriteWith(w, c.Root().ErrWriter, result)
}
