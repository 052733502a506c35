package commands

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"quotecalc/config"
	"quotecalc/services"
)

func newTestEnv(t *testing.T) *Env {
	t.Helper()
	return &Env{
		Config: &config.Config{
			LogLevel:    "info",
			LogFormat:   "console",
			Currency:    "INR",
			TaxRate:     services.Raw("18"),
			QuotePrefix: "QT",
			QuoteDir:    t.TempDir(),
		},
		Logger: zerolog.Nop(),
		Now:    func() time.Time { return time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC) },
	}
}

// runCommand executes the root command with args and returns what it wrote
// to stdout and stderr.
func runCommand(t *testing.T, env *Env, args ...string) (string, string, error) {
	t.Helper()

	root := NewRootCmd(env)
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
