package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunExitCodes(t *testing.T) {
	testCases := []struct {
		name     string
		session  string
		args     []string
		expected int
	}{
		{"version", "default", []string{"-version"}, 0},
		{"help flag", "default", []string{"-help"}, 0},
		{"unknown flag", "default", []string{"-port", "8080"}, 2},
		{"bad env", " ", []string{}, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("GOCALC_MCP_SESSION", tc.session)
			var stdout, stderr bytes.Buffer
			if got := run(tc.args, &stdout, &stderr); got != tc.expected {
				t.Errorf("run(%v) = %d, want %d (stderr: %s)", tc.args, got, tc.expected, stderr.String())
			}
		})
	}
}

func TestRunVersionOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	run([]string{"-version"}, &stdout, &stderr)
	if !strings.HasPrefix(stdout.String(), "gocalc-mcp v") {
		t.Errorf("unexpected version output %q", stdout.String())
	}
}
