package commands

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageLoopHelpAndQuit(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	rt, err := newRuntime(&rootOptions{})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	scanner := bufio.NewScanner(strings.NewReader("?\nselesai\n"))

	again := pageLoop(context.Background(), rt, scanner, out)
	assert.False(t, again)
	assert.Contains(t, out.String(), "dashboard, management, analysis")
}

func TestPageLoopLogoutReturnsToSignIn(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	rt, err := newRuntime(&rootOptions{})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	scanner := bufio.NewScanner(strings.NewReader("logout\n"))

	again := pageLoop(context.Background(), rt, scanner, out)
	assert.True(t, again)
}

func TestSignInQuits(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	rt, err := newRuntime(&rootOptions{})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	scanner := bufio.NewScanner(strings.NewReader("selesai\n"))

	_, ok := signIn(context.Background(), rt, scanner, out)
	assert.False(t, ok)
}
