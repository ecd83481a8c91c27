package log_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llxisdsh/atomwait/internal/log"
)

func TestCreateHandler(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		level   string
		format  string
		want    string
		wantErr error
	}{
		"text": {
			level:  "info",
			format: "text",
			want:   "hello",
		},
		"logfmt": {
			level:  "debug",
			format: "logfmt",
			want:   "msg=hello",
		},
		"json": {
			level:  "warn",
			format: "JSON",
			want:   `"msg":"hello"`,
		},
		"default format": {
			level:  "info",
			format: "",
			want:   "hello",
		},
		"bad format": {
			level:   "info",
			format:  "yaml",
			wantErr: log.ErrInvalidArgument,
		},
		"bad level": {
			level:   "loud",
			format:  "text",
			wantErr: log.ErrInvalidArgument,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			h, err := log.CreateHandler(&buf, tc.level, tc.format)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}
			require.NoError(t, err)

			slog.New(h).Error("hello", "parties", 4)
			assert.Contains(t, buf.String(), tc.want)
			assert.Contains(t, buf.String(), "parties")
		})
	}
}

func TestHandlerFiltersByLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h, err := log.CreateHandler(&buf, "warn", "logfmt")
	require.NoError(t, err)

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))

	slog.New(h).Info("quiet")
	assert.Empty(t, buf.String())
}

func TestGetLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]slog.Level{
		"trace":   slog.LevelDebug,
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"WARNING": slog.LevelWarn,
		"fatal":   slog.LevelError,
	}
	for in, want := range tcs {
		got, err := log.GetLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
