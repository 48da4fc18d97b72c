package main

import (
	"fmt"
	"os"

	"github.com/congo-pay/bankaccounts/internal/config"
	"github.com/congo-pay/bankaccounts/internal/logging"
	"github.com/congo-pay/bankaccounts/internal/scenario"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// stdout carries the transcript
	logger := logging.New(cfg.LogLevel, os.Stderr)

	b, err := scenario.Run(os.Stdout)
	if err != nil {
		logger.Error("run scenario", "error", err)
		os.Exit(1)
	}
	logger.Debug("scenario finished", "accounts", b.Len())
}
