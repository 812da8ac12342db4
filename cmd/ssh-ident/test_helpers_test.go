package main

import (
	"bytes"
	"strings"
	"testing"

	"sshident/internal/logging"
	"sshident/internal/testsupport"
)

func newTestContext(t *testing.T, f *testsupport.Fixture) *commandContext {
	t.Helper()
	return &commandContext{
		store:  f.NewStore(t),
		logger: logging.NewNop(),
	}
}

func runCommand(t *testing.T, ctx *commandContext, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand(ctx)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

func requireNotContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		t.Fatalf("expected output to omit %q, got:\n%s", needle, haystack)
	}
}
