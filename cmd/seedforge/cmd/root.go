/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ssargent/seedforge/pkg/config"
	"github.com/ssargent/seedforge/pkg/di"
	"github.com/ssargent/seedforge/pkg/logging"
)

var container *di.Container

// SetContainer injects the dependency container used by all commands
func SetContainer(c *di.Container) {
	container = c
}

func getContainer() *di.Container {
	if container == nil {
		container = di.NewContainer()
	}
	return container
}

type settingsKey struct{}

// settings are resolved once per invocation and shared with subcommands
type settings struct {
	cfg    *config.Config
	logger zerolog.Logger
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "seedforge",
	Short: "seedforge - variations seed builder",
	Long: `seedforge turns an experiment configuration document (studies, weighted
experiments and targeting filters) into the binary VariationsSeed that client
applications download, plus the serial number file used as its ETag.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := resolveConfig(configPath)
		if err != nil {
			return err
		}

		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			cfg.Logging.Level = level
		}
		logger := logging.New("seedforge", logging.Options{
			Level:   cfg.Logging.Level,
			NoColor: cfg.Logging.NoColor,
			Out:     cmd.ErrOrStderr(),
		})

		cmd.SetContext(context.WithValue(cmd.Context(), settingsKey{}, &settings{cfg: cfg, logger: logger}))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default ~/.config/seedforge/config.yaml when present)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")
}

// resolveConfig loads an explicit config file, falls back to the default
// location when it exists, and otherwise uses built-in defaults.
func resolveConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadConfig(path)
	}
	if def := config.GetDefaultConfigPath(); config.ConfigExists(def) {
		cfg, err := config.LoadConfig(def)
		if err != nil {
			return nil, fmt.Errorf("default config %s: %w", def, err)
		}
		return cfg, nil
	}
	return config.DefaultConfig(), nil
}

func settingsFrom(cmd *cobra.Command) *settings {
	if ctx := cmd.Context(); ctx != nil {
		if s, ok := ctx.Value(settingsKey{}).(*settings); ok {
			return s
		}
	}
	return &settings{cfg: config.DefaultConfig(), logger: zerolog.Nop()}
}
