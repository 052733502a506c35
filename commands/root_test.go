package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"quotecalc/testhelpers"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd(newTestEnv(t))
	want := []string{"totals", "validate", "export", "import", "template", "replay", "report", "number", "sample"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootCmd_CurrencyFlag(t *testing.T) {
	env := newTestEnv(t)
	dir := t.TempDir()
	q := testhelpers.NewTestQuote("QT-25-26-001")
	q.Currency = ""
	path := testhelpers.WriteTestQuote(t, dir, "quote.json", q)

	stdout, _, err := runCommand(t, env, "--currency", "usd", "totals", path)
	if err != nil {
		t.Fatalf("totals error: %v", err)
	}
	if env.Config.Currency != "USD" {
		t.Errorf("currency = %q, want USD", env.Config.Currency)
	}
	testhelpers.AssertContains(t, stdout, "$21,535.00")
}

func TestRootCmd_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown currency", []string{"--currency", "QQQ", "number"}},
		{"unknown log format", []string{"--log-format", "xml", "number"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCommand(t, newTestEnv(t), tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), "invalid flags") {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestRootCmd_LogFlagsRebuildLogger(t *testing.T) {
	env := newTestEnv(t)
	root := NewRootCmd(env)
	var stderr bytes.Buffer
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&stderr)
	root.SetArgs([]string{"--log-level", "debug", "--log-format", "json", "number", "--dir", t.TempDir()})
	if err := root.Execute(); err != nil {
		t.Fatalf("number error: %v", err)
	}
	testhelpers.AssertContains(t, stderr.String(), `"level":"debug"`, "number: generated")
}

func TestSetNotice(t *testing.T) {
	var buf bytes.Buffer
	setNotice(&buf, noticeSuccess, "Item saved")
	if got := buf.String(); got != "success: Item saved\n" {
		t.Errorf("notice = %q", got)
	}
}

func TestErrorNotice(t *testing.T) {
	var buf bytes.Buffer
	cause := errors.New("disk full")

	err := errorNotice(&buf, cause, "Failed to generate PDF")
	if !errors.Is(err, cause) {
		t.Errorf("error %v does not wrap the cause", err)
	}
	if got := buf.String(); got != "error: Failed to generate PDF\n" {
		t.Errorf("notice = %q", got)
	}

	err = errorNotice(&buf, nil, "nothing to do")
	if err == nil || err.Error() != "nothing to do" {
		t.Errorf("errorNotice(nil) = %v", err)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no special chars", "QT-25-26-001", "QT-25-26-001"},
		{"spaces", "My Quote", "My-Quote"},
		{"slashes", "QT/25/26", "QT-25-26"},
		{"backslash", `a\b`, "a-b"},
		{"colons", "Quote: Final", "Quote--Final"},
		{"trimmed", "  QT-1  ", "QT-1"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeFilename(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
