package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: " warn ", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "loud", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "warn", "json")
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("collection overwritten", "kind", "events")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "collection overwritten", entry["msg"])
	assert.Equal(t, "events", entry["kind"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "debug", "")
	require.NoError(t, err)

	l.Debug("seeded", "kind", "outfits")
	assert.Contains(t, buf.String(), "msg=seeded kind=outfits")
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "info", "xml")
	assert.Error(t, err)

	_, err = New(&bytes.Buffer{}, "verbose", "text")
	assert.Error(t, err)
}
