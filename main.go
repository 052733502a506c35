package main

import (
	"fmt"
	"os"
	"time"

	"quotecalc/commands"
	"quotecalc/config"
	"quotecalc/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "quotecalc: %v\n", err)
		os.Exit(1)
	}

	env := &commands.Env{
		Config: cfg,
		Logger: logging.New(cfg.LogFormat, cfg.LogLevel),
		Now:    time.Now,
	}

	if err := commands.NewRootCmd(env).Execute(); err != nil {
		env.Logger.Error().Err(err).Msg("quotecalc: command failed")
		os.Exit(1)
	}
}
