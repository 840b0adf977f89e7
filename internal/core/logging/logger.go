// Package logging holds zerolog helpers shared by tasklist components.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a logger tagged with a component name under the "cmp"
// key, derived from the global logger.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}
