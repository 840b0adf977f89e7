// Package replay drives a task controller from a scripted list of
// interaction events. It is the headless counterpart of the TUI.
package replay

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/hay-kot/tasklist/internal/core/task"
)

//go:embed schema.json
var schemaJSON string

var schema = jsonschema.MustCompileString("replay.schema.json", schemaJSON)

// Script is an ordered list of events.
type Script struct {
	Events []task.Event `json:"events"`
}

// ValidationError is a single schema violation. Path is a dotted path into
// the document, empty for the document root.
type ValidationError struct {
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return e.Path + ": " + e.Message
}

// Parse decodes and validates a script. The document may be an object with
// an "events" array or a bare array of events.
func Parse(data []byte) (Script, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return Script{}, fmt.Errorf("decode script: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return Script{}, schemaErrors(err)
	}

	var script Script
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &script.Events)
	} else {
		err = json.Unmarshal(trimmed, &script)
	}
	if err != nil {
		return Script{}, fmt.Errorf("decode script: %w", err)
	}

	return script, nil
}

func schemaErrors(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}

	var errs []error
	collect(ve, &errs)
	return errors.Join(errs...)
}

func collect(ve *jsonschema.ValidationError, errs *[]error) {
	if len(ve.Causes) == 0 {
		*errs = append(*errs, &ValidationError{
			Path:    pointerToPath(ve.InstanceLocation),
			Message: ve.Message,
		})
		return
	}

	for _, cause := range ve.Causes {
		collect(cause, errs)
	}
}

// pointerToPath turns "/events/2/op" into "events[2].op".
func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for i, part := range strings.Split(ptr, "/") {
		if isIndex(part) {
			b.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Step reports the outcome of one event.
type Step struct {
	Index   int        `json:"index"`
	Event   task.Event `json:"event"`
	Changed bool       `json:"changed"`
	State   task.State `json:"state"`
}

// Run dispatches the script's events to ctrl in order and returns the final
// state. trace, when non-nil, is called after every event.
func Run(ctrl *task.Controller, script Script, trace func(Step)) task.State {
	for i, ev := range script.Events {
		_, changed := ctrl.Dispatch(ev)
		if trace != nil {
			trace(Step{Index: i, Event: ev, Changed: changed, State: ctrl.State()})
		}
	}
	return ctrl.State()
}

// Result is the JSON summary written after a replay.
type Result struct {
	Tasks          []task.Task `json:"tasks"`
	PendingInput   string      `json:"pending_input"`
	CompletedCount int         `json:"completed_count"`
	Total          int         `json:"total"`
}

// NewResult summarizes a state.
func NewResult(s task.State) Result {
	tasks := s.Tasks
	if tasks == nil {
		tasks = []task.Task{}
	}
	return Result{
		Tasks:          tasks,
		PendingInput:   s.PendingInput,
		CompletedCount: s.CompletedCount(),
		Total:          len(s.Tasks),
	}
}
