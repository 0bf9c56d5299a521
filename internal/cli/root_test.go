// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ravenbix

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/ravenbix/rstools/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCommandContext_CarriesRunLogger verifies that layers reading the logger
// from the command context get the run-scoped one, not a disabled fallback.
func TestCommandContext_CarriesRunLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := a.log
	a.log = &logger.Logger{Logger: zerolog.New(&buf).With().Str("run_id", "test-run").Logger()}
	defer func() { a.log = prev }()

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	ctx, cancel := commandContext(cmd)
	defer cancel()

	l := logger.FromContext(ctx)
	assert.NotEqual(t, zerolog.Disabled, l.GetLevel())

	l.Info().Msg("store layer entry")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-run", entry["run_id"])
}

// TestCommandContext_NoLoggerYet covers connection-free commands that skip
// the app wiring entirely.
func TestCommandContext_NoLoggerYet(t *testing.T) {
	prev := a.log
	a.log = nil
	defer func() { a.log = prev }()

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	ctx, cancel := commandContext(cmd)
	defer cancel()
	require.NotNil(t, ctx)
}
