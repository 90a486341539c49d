/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/seedforge/pkg/wire"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect [seed.bin]",
	Short: "Decode a published seed",
	Long: `Decode an encoded VariationsSeed and print it, either from a seed file or
from the archive by serial number.

Examples:
  seedforge inspect seed.bin
  seedforge inspect seed.bin --format table
  seedforge inspect --serial 3f2a9c0d... --archive-dir ./archive`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := settingsFrom(cmd)
		format, _ := cmd.Flags().GetString("format")
		serialNumber, _ := cmd.Flags().GetString("serial")
		archiveDir, _ := cmd.Flags().GetString("archive-dir")
		if archiveDir == "" {
			archiveDir = s.cfg.Archive.Dir
		}

		var payload []byte
		switch {
		case serialNumber != "":
			store, err := getContainer().GetArchiveOpener()(archiveDir)
			if err != nil {
				return err
			}
			defer store.Close()
			entry, err := store.Get(serialNumber)
			if err != nil {
				return fmt.Errorf("serial %s: %w", serialNumber, err)
			}
			payload = entry.Payload
		default:
			path := s.cfg.Output.SeedPath
			if len(args) == 1 {
				path = args[0]
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read seed: %w", err)
			}
			payload = data
		}

		return printSeed(cmd.OutOrStdout(), payload, format)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringP("format", "f", "json", "Output format: json or table")
	inspectCmd.Flags().String("serial", "", "Read the seed published under this serial number from the archive")
	inspectCmd.Flags().String("archive-dir", "", "Archive directory (overrides archive.dir)")
}

func printSeed(out io.Writer, payload []byte, format string) error {
	s, err := wire.Decode(payload)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		data, err := wire.EncodeJSON(s)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	case "table":
		return outputSeedTable(out, s)
	default:
		return errors.New("unknown format " + format + " (want json or table)")
	}
}
