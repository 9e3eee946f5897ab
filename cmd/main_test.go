package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	dict := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(dict, []byte("ox"), 0o600))

	testcases := []struct {
		name   string
		args   []string
		input  string
		code   int
		stdout string
		stderr string
	}{
		{
			name:   "win",
			args:   []string{"--log-level", "disabled", dict, "2", "3"},
			input:  "o x",
			code:   0,
			stdout: "You win! You guessed the word: ox",
		},
		{
			name:   "usage",
			args:   []string{"--log-level", "disabled", dict, "2"},
			code:   2,
			stderr: "Usage: evilhangman",
		},
		{
			name:   "missing dictionary",
			args:   []string{"--log-level", "disabled", filepath.Join(t.TempDir(), "missing.txt"), "2", "3"},
			code:   1,
			stdout: "Empty Dictionary or some sort of I/O exception has occurred.",
		},
		{
			name:   "no word of that length",
			args:   []string{"--log-level", "disabled", dict, "5", "3"},
			code:   1,
			stdout: "Empty Dictionary or some sort of I/O exception has occurred.",
		},
		{
			name:  "input ends early",
			args:  []string{"--log-level", "disabled", dict, "2", "3"},
			input: "o",
			code:  1,
		},
	}
	for _, tt := range testcases {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr strings.Builder
			code := run(tt.args, strings.NewReader(tt.input), &stdout, &stderr)
			assert.Equal(t, tt.code, code)
			assert.Contains(t, stdout.String(), tt.stdout)
			assert.Contains(t, stderr.String(), tt.stderr)
		})
	}
}
