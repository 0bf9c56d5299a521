// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ravenbix

package cli

import (
	"testing"

	"github.com/ravenbix/rstools/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProperties(t *testing.T) {
	got, err := parseProperties([]string{"Description=EU copy", "Hidden=true"})
	require.NoError(t, err)
	assert.Equal(t, models.Properties{
		{Name: "Description", Value: "EU copy"},
		{Name: "Hidden", Value: "true"},
	}, got)
}

func TestParseProperties_ValueWithEquals(t *testing.T) {
	got, err := parseProperties([]string{"Description=a=b"})
	require.NoError(t, err)
	assert.Equal(t, "a=b", got[0].Value)
}

func TestParseProperties_RepeatedNameKeepsLast(t *testing.T) {
	got, err := parseProperties([]string{"Hidden=true", "Hidden=false"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "false", got[0].Value)
}

func TestParseProperties_Malformed(t *testing.T) {
	for _, arg := range []string{"Description", "=value"} {
		_, err := parseProperties([]string{arg})
		assert.Error(t, err, "argument %q", arg)
	}
}

func TestRootCommandTree(t *testing.T) {
	want := []string{
		"new-linked-report", "get-linked-report", "set-linked-report",
		"list", "new-folder", "remove-item",
		"get-item-property", "set-item-property",
		"profile", "cache", "version",
	}

	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, name := range want {
		assert.True(t, names[name], "command %q not registered", name)
	}
}
