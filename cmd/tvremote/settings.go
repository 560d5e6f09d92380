package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muurk/tvremote/internal/config"
	"github.com/muurk/tvremote/internal/logging"
)

// Global flags
var (
	configPath  string
	logLevel    string
	logFile     string
	metricsAddr string
	backend     string
	localAddr   string
)

// settings is the loaded config with flag overrides applied
var settings *config.Config

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default: <user config dir>/tvremote/config.yaml)")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default: off, or "+logging.LogLevelEnvVar+")")
	flags.StringVar(&logFile, "log-file", "", "Log file (default: <user config dir>/tvremote/tvremote.log)")
	flags.StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address while the interactive remote runs (e.g. 127.0.0.1:9090)")
	flags.StringVar(&backend, "backend", "", "Discovery backend: ssdp or mdns")
	flags.StringVar(&localAddr, "local-addr", "", "IPv4 address to send SSDP searches from (default: any interface)")
}

// setup loads the config file, applies flags and starts logging.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("backend") {
		cfg.Discovery.Backend = backend
	}
	if cmd.Flags().Changed("local-addr") {
		cfg.Discovery.LocalAddr = localAddr
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Logging.File = logFile
	}
	if cmd.Flags().Changed("metrics-addr") {
		cfg.Metrics.Listen = metricsAddr
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	file := cfg.Logging.File
	if file == "" {
		// The interactive remote owns the terminal; logs never go there
		if file, err = config.DefaultLogPath(); err != nil {
			return err
		}
	}
	if err := logging.Initialize(logging.Options{Level: cfg.Logging.Level, File: file}); err != nil {
		return err
	}

	settings = cfg
	return nil
}
