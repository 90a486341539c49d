/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/seedforge/pkg/config"
)

// configCmd groups configuration helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the seedforge configuration file",
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write the default configuration to --path (or the default location).

Examples:
  seedforge config init
  seedforge config init --path ./seedforge.yaml --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("path")
		force, _ := cmd.Flags().GetBool("force")

		written, err := initConfigFile(path, force)
		if err != nil {
			return err
		}
		cmd.Printf("Configuration written to %s\n", written)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)

	configInitCmd.Flags().String("path", "", "Config file path (default ~/.config/seedforge/config.yaml)")
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}

func initConfigFile(path string, force bool) (string, error) {
	if path == "" {
		path = config.GetDefaultConfigPath()
	}
	if config.ConfigExists(path) && !force {
		return "", fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	}
	if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
		return "", err
	}
	return path, nil
}
