// Package commands implements the quotecalc command line: pricing, validating,
// importing and exporting quotation documents stored as local files.
package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"quotecalc/config"
	"quotecalc/logging"
)

// Env carries the dependencies shared by every command.
type Env struct {
	Config *config.Config
	Logger zerolog.Logger
	Now    func() time.Time
}

func (e *Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// NewRootCmd builds the quotecalc command tree.
func NewRootCmd(env *Env) *cobra.Command {
	var (
		logLevel  string
		logFormat string
		currency  string
	)

	root := &cobra.Command{
		Use:           "quotecalc",
		Short:         "Price, validate and export quotations and invoices",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if flags.Changed("log-level") || flags.Changed("log-format") {
				env.Config.LogLevel = logLevel
				env.Config.LogFormat = strings.ToLower(logFormat)
				env.Logger = logging.NewWithWriter(cmd.ErrOrStderr(), env.Config.LogFormat, env.Config.LogLevel)
			}
			if flags.Changed("currency") {
				env.Config.Currency = strings.ToUpper(strings.TrimSpace(currency))
			}
			if err := env.Config.Validate(); err != nil {
				return fmt.Errorf("invalid flags: %w", err)
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&logLevel, "log-level", env.Config.LogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&logFormat, "log-format", env.Config.LogFormat, "log format (console, json)")
	pf.StringVar(&currency, "currency", env.Config.Currency, "currency for documents that do not name one")

	root.AddCommand(
		newTotalsCmd(env),
		newValidateCmd(env),
		newExportCmd(env),
		newImportCmd(env),
		newTemplateCmd(env),
		newReplayCmd(env),
		newReportCmd(env),
		newNumberCmd(env),
		newSampleCmd(env),
	)
	return root
}
