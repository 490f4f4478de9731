package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofmod/fmod/internal/config"
)

func TestExecfile_missingScript(t *testing.T) {
	cmd := rootCommand()
	cmd.SetArgs([]string{"execfile", filepath.Join(t.TempDir(), "missing.fmod")})
	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist), "unexpected error: %v", err)
}

func TestRootCommand_invalidFlags(t *testing.T) {
	cmd := rootCommand()
	cmd.SetArgs([]string{"--columns", "100", "--config", writeConfig(t, "fmod.toml", "")})
	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalid), "unexpected error: %v", err)
}

func TestTraceOptions(t *testing.T) {
	var logged []string
	logf := func(mess string, args ...interface{}) { logged = append(logged, fmt.Sprintf(mess, args...)) }

	opts := append(traceOptions(logf), WithInput(strings.NewReader("make_buffer b 1\nbuffer_info nope\n")))
	sh := New(opts...)
	require.NoError(t, sh.Run(context.Background()))
	require.NoError(t, sh.Close())

	trace := strings.Join(logged, "\n")
	assert.Contains(t, trace, `"make_buffer b 1"`)
	assert.Contains(t, trace, "< - Buffer with name b and size 1 was created.")
	assert.Contains(t, trace, "< Error: undefined buffer variable \"nope\"")
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, "fmod.yaml", "columns: 8\n"))
	require.NoError(t, err)
	assert.Equal(t, uint(8), cfg.Columns)

	_, err = loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestStyleEnabled(t *testing.T) {
	assert.True(t, styleEnabled(config.ColorAlways))
	assert.False(t, styleEnabled(config.ColorNever))
}

func writeConfig(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
