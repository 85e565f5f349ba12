package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("should ride to finish", func(t *testing.T) {
		var out bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&out, nil))

		require.NoError(t, run(t.Context(), logger, false))

		log := out.String()
		assert.Contains(t, log, "Status: Finished")
		assert.Contains(t, log, "To: Lenina 1")
		assert.Contains(t, log, "Baklazhan")
	})

	t.Run("should cancel while car is on its way", func(t *testing.T) {
		var out bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&out, nil))

		require.NoError(t, run(t.Context(), logger, true))

		log := out.String()
		assert.Contains(t, log, "Status: Canceled")
		assert.NotContains(t, log, "ride started")
	})
}
