package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cbodonnell/blockfall/pkg/leaderboard"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestRun_AddAndList(t *testing.T) {
	ctx := context.Background()
	db := "sqlite://" + filepath.Join(t.TempDir(), "scores.db")

	var out bytes.Buffer
	require.NoError(t, run(ctx, []string{"-db", db, "add", "-name", "Ada", "-score", "300"}, &out))
	assert.Equal(t, "saved Ada 300\n", out.String())
	require.NoError(t, run(ctx, []string{"-db", db, "add", "-name", "Bob", "-score", "900"}, &out))

	out.Reset()
	require.NoError(t, run(ctx, []string{"-db", db, "list"}, &out))
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "  1. Bob"), lines[0])
	assert.Contains(t, lines[0], "900")
	assert.True(t, strings.HasPrefix(lines[1], "  2. Ada"), lines[1])

	out.Reset()
	require.NoError(t, run(ctx, []string{"-db", db, "list", "-limit", "1"}, &out))
	assert.Len(t, strings.Split(strings.TrimRight(out.String(), "\n"), "\n"), 1)
}

func TestRun_Empty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-db", "memory://", "list"}, &out))
	assert.Equal(t, "No scores yet\n", out.String())
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		invalid bool
		usage   bool
	}{
		{name: "no command", args: []string{"-db", "memory://"}, usage: true},
		{name: "unknown command", args: []string{"-db", "memory://", "drop"}, usage: true},
		{name: "bad flag", args: []string{"-nope"}, usage: true},
		{name: "bad name", args: []string{"-db", "memory://", "add", "-name", "no spaces", "-score", "1"}, invalid: true},
		{name: "negative score", args: []string{"-db", "memory://", "add", "-name", "Ada", "-score", "-1"}, invalid: true},
		{name: "bad limit", args: []string{"-db", "memory://", "list", "-limit", "0"}, invalid: true},
		{name: "unknown database", args: []string{"-db", "redis://localhost", "list"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(context.Background(), tt.args, &out)
			require.Error(t, err)
			assert.Equal(t, tt.usage, err == errUsage)
			assert.Equal(t, tt.invalid, leaderboard.IsInvalidArgument(err))
		})
	}
}
