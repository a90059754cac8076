package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/statebus/pkg/config"
)

func runWith(t *testing.T, input string) (string, error) {
	t.Helper()
	t.Setenv("APP_ENV", "development")
	t.Setenv("LOG_LEVEL", "error")
	config.ResetCache()

	var stdout, stderr bytes.Buffer
	err := run(context.Background(),
		[]string{filepath.Join("testdata", "door.yaml")},
		strings.NewReader(input), &stdout, &stderr)
	return stdout.String(), err
}

func stateLines(out string) []string {
	var states []string
	for _, line := range strings.Split(out, "\n") {
		if s, ok := strings.CutPrefix(line, "state: "); ok {
			states = append(states, s)
		}
	}
	return states
}

func TestRun_Actions(t *testing.T) {
	out, err := runWith(t, "open\n\nclose\nlock\nfly\nunlock\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"closed", "opened", "closed", "locked", "closed"}, stateLines(out))
}

func TestRun_Quit(t *testing.T) {
	out, err := runWith(t, "open\nquit\nclose\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"closed", "opened"}, stateLines(out))
}

func TestRun_Help(t *testing.T) {
	out, err := runWith(t, "help\n")
	require.NoError(t, err)

	assert.Contains(t, out, "closed: lock -> locked, open -> opened")
}

func TestRun_MissingDefinition(t *testing.T) {
	t.Setenv("FSM_DEFINITION", "")
	config.ResetCache()
	err := run(context.Background(), nil, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, errMissingDefinition)
}

func TestRun_UnknownFormat(t *testing.T) {
	err := run(context.Background(), []string{"door.txt"}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	assert.Error(t, err)
}
