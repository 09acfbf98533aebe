package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/assignment/hungarian"
	"github.com/katalvlaran/assignment/matrix"
)

func TestNewSlog(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewSlog(slog.New(slog.NewTextHandler(buf, nil)))

	require.NotNil(t, logger)
	require.NotNil(t, logger.logger)
}

func TestNewSlogDefault(t *testing.T) {
	logger := NewSlogDefault()

	require.NotNil(t, logger)
	require.NotNil(t, logger.logger)
}

func TestSlogLogger_Levels(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewText(buf, slog.LevelDebug)

	logger.Debug("debug message", "key", "value")
	logger.Info("info message", "n", 3)
	logger.Warn("warning message", "state", "adjusting")
	logger.Error("error message", "error", "bad input")

	output := buf.String()
	assert.Contains(t, output, "level=DEBUG msg=\"debug message\" key=value")
	assert.Contains(t, output, "level=INFO msg=\"info message\" n=3")
	assert.Contains(t, output, "level=WARN msg=\"warning message\" state=adjusting")
	assert.Contains(t, output, "level=ERROR msg=\"error message\" error=\"bad input\"")
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewText(buf, slog.LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("shown")

	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "shown")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		if tc.wantErr {
			require.Errorf(t, err, "level %q", tc.in)
			continue
		}
		require.NoErrorf(t, err, "level %q", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

// TestSlogLogger_WithSolver checks the adapter receives the solver's records.
func TestSlogLogger_WithSolver(t *testing.T) {
	buf := &bytes.Buffer{}
	cost, err := matrix.NewDenseFromRows([][]int{{1, 2, 3}, {2, 4, 6}, {3, 6, 9}})
	require.NoError(t, err)

	_, err = hungarian.Assign(cost, hungarian.WithLogger(NewText(buf, slog.LevelDebug)))
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "hungarian: initial matching")
	assert.Contains(t, output, "hungarian: solved")
}
