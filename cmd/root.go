// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/heart-risk/cliparse"
	"github.com/danielhkuo/heart-risk/logging"
)

// NewRootCommand builds the heartrisk command tree
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "heartrisk",
		Short: "Heart disease risk assessment",
		Long: `heartrisk collects the seventeen answers of the heart disease
questionnaire and asks the prediction service for a risk estimate, either
from a web form (serve) or from the terminal (assess).`,
		SilenceUsage: true,
	}

	root.AddCommand(newServeCommand(), newAssessCommand(), newFieldsCommand())
	return root
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// bindConfig attaches the shared settings flags to cmd
func bindConfig(cmd *cobra.Command) *cliparse.Config {
	cfg := &cliparse.Config{}
	cmd.Flags().AddGoFlagSet(cliparse.NewFlagSet(cfg))
	return cfg
}

// loadConfig applies env fallbacks for unset flags and installs the logger
func loadConfig(cmd *cobra.Command, cfg *cliparse.Config) error {
	if err := cliparse.Finalize(cfg, cmd.Flags().Changed); err != nil {
		return err
	}
	logging.Setup(cfg.LogLevel, cmd.ErrOrStderr())
	return nil
}
