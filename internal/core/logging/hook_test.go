package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHook_Run(t *testing.T) {
	tests := []struct {
		name      string
		ctx       func() context.Context
		wantKeys  map[string]string
		wantEmpty []string
	}{
		{
			name: "run id and source",
			ctx: func() context.Context {
				return WithSource(WithRunID(context.Background(), "abc123"), "tui")
			},
			wantKeys: map[string]string{"run_id": "abc123", "source": "tui"},
		},
		{
			name: "only run id",
			ctx: func() context.Context {
				return WithRunID(context.Background(), "abc123")
			},
			wantKeys:  map[string]string{"run_id": "abc123"},
			wantEmpty: []string{"source"},
		},
		{
			name:      "background context",
			ctx:       context.Background,
			wantEmpty: []string{"run_id", "source"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).Hook(ContextHook{})
			logger.Info().Ctx(tt.ctx()).Msg("test")

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

			for k, v := range tt.wantKeys {
				assert.Equal(t, v, entry[k], k)
			}
			for _, k := range tt.wantEmpty {
				assert.NotContains(t, entry, k)
			}
		})
	}
}
