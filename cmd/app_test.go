package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/UnendingLoop/minigrep/internal/logger"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	input := filepath.Join(t.TempDir(), "poem.txt")
	require.NoError(t, os.WriteFile(input, []byte("Rust:\nsafe, fast, productive.\nTrust me.\n"), 0o644))

	cases := []struct {
		name       string
		args       []string
		env        bool
		wantCode   int
		wantOut    string
		wantErrOut string // префикс сообщения в stderr, пусто - stderr тоже пуст
	}{
		{name: "Negative - missing query", args: []string{"minigrep"}, wantCode: 1, wantErrOut: "Problem parsing arguments: query not specified"},
		{name: "Negative - missing file path", args: []string{"minigrep", "duct"}, wantCode: 1, wantErrOut: "Problem parsing arguments: file path not specified"},
		{name: "Negative - unreadable file", args: []string{"minigrep", "duct", filepath.Join(t.TempDir(), "nope")}, wantCode: 1, wantErrOut: "Application error: couldn't read file"},
		{name: "Positive - case sensitive", args: []string{"minigrep", "Rust", input}, wantCode: 0, wantOut: "Rust:\n"},
		{name: "Positive - env enables ignore case", args: []string{"minigrep", "rust", input}, env: true, wantCode: 0, wantOut: "Rust:\nTrust me.\n"},
		{name: "Positive - override beats env", args: []string{"minigrep", "rust", input, "f"}, env: true, wantCode: 0, wantOut: "Trust me.\n"},
		{name: "Positive - override beats env, no match", args: []string{"minigrep", "RUST", input, "f"}, env: true, wantCode: 0, wantOut: ""},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(logger.EnvLogLevel, "")
			// t.Setenv восстановит исходное значение после теста
			t.Setenv("IGNORE_CASE", "")
			if !tt.env {
				require.NoError(t, os.Unsetenv("IGNORE_CASE"))
			}

			oldArgs := os.Args
			os.Args = tt.args
			t.Cleanup(func() { os.Args = oldArgs })

			var code int
			out, errOut := captureOutput(t, func() { code = run() })

			require.Equal(t, tt.wantCode, code)
			require.Equal(t, tt.wantOut, out)
			if tt.wantErrOut == "" {
				require.Empty(t, errOut)
				return
			}
			require.Empty(t, out, "no matches must be printed on failure")
			require.True(t, strings.HasPrefix(errOut, tt.wantErrOut), "stderr %q doesn't start with %q", errOut, tt.wantErrOut)
		})
	}
}

// captureOutput подменяет os.Stdout и os.Stderr на время вызова fn
func captureOutput(t *testing.T, fn func()) (string, string) {
	t.Helper()
	outR, outW, err := os.Pipe()
	require.NoError(t, err)
	errR, errW, err := os.Pipe()
	require.NoError(t, err)

	oldStdout, oldStderr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = outW, errW
	defer func() { os.Stdout, os.Stderr = oldStdout, oldStderr }()

	fn()
	require.NoError(t, outW.Close())
	require.NoError(t, errW.Close())

	out, err := io.ReadAll(outR)
	require.NoError(t, err)
	errOut, err := io.ReadAll(errR)
	require.NoError(t, err)
	return string(out), string(errOut)
}
