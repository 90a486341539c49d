/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ssargent/seedforge/pkg/config"
	"github.com/ssargent/seedforge/pkg/metrics"
	"github.com/ssargent/seedforge/pkg/pipeline"
	"github.com/ssargent/seedforge/pkg/publish"
	"github.com/ssargent/seedforge/pkg/seed"
	"github.com/ssargent/seedforge/pkg/transform"
	"github.com/ssargent/seedforge/pkg/validate"
)

// validationRules is shared by the build and validate help text.
const validationRules = `Checks applied to the document:
  - experiment probability weights in each study sum to 100
  - channels are one of NIGHTLY, DEV, BETA, RELEASE
  - platforms are one of WINDOWS, MAC, LINUX, IOS, ANDROID
  - study names are unique
  - start_date and end_date, when set, use "YYYY-MM-DD HH:MM:SS" (UTC)
    and end_date is not before start_date
  - the file is a single JSON value in valid UTF-8`

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build [seed.json]",
	Short: "Validate a seed document and publish the encoded seed",
	Long: `Validate an experiment configuration document, encode it as a
VariationsSeed and write the seed file and its serial number file.

Nothing is written when validation fails. The seed file is replaced before
the serial number file, so the serial number on disk always belongs to the
seed beside it. Reads stdin when no file (or "-") is given.

` + validationRules + `

Examples:
  seedforge build seed.json
  seedforge build seed.json --out ./dist/seed.bin --serial-out ./dist/serialnumber
  seedforge build seed.json --archive --archive-dir ./archive`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := settingsFrom(cmd)
		cfg := *s.cfg
		applyBuildFlags(cmd, &cfg)

		input := ""
		if len(args) == 1 {
			input = args[0]
		}

		res, err := runBuild(cmd.Context(), &cfg, s.logger, input, cmd.InOrStdin())
		if err != nil {
			return err
		}

		cmd.Printf("Seed published with serial number %s\n", res.Serial)
		cmd.Printf("  seed:   %s (%d bytes, %d studies)\n", cfg.Output.SeedPath, res.SizeBytes, len(res.Seed.Studies))
		cmd.Printf("  serial: %s\n", cfg.Output.SerialPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("out", "o", "", "Seed output path (overrides output.seed_path)")
	buildCmd.Flags().String("serial-out", "", "Serial number output path (overrides output.serial_path)")
	buildCmd.Flags().Bool("archive", false, "Record the published seed in the archive")
	buildCmd.Flags().String("archive-dir", "", "Archive directory (overrides archive.dir)")
	buildCmd.Flags().String("metrics-textfile", "", "Write build metrics to this node-exporter textfile")
}

func applyBuildFlags(cmd *cobra.Command, cfg *config.Config) {
	if v, _ := cmd.Flags().GetString("out"); v != "" {
		cfg.Output.SeedPath = v
	}
	if v, _ := cmd.Flags().GetString("serial-out"); v != "" {
		cfg.Output.SerialPath = v
	}
	if cmd.Flags().Changed("archive") {
		cfg.Archive.Enabled, _ = cmd.Flags().GetBool("archive")
	}
	if v, _ := cmd.Flags().GetString("archive-dir"); v != "" {
		cfg.Archive.Dir = v
	}
	if v, _ := cmd.Flags().GetString("metrics-textfile"); v != "" {
		cfg.Metrics.TextfilePath = v
	}
}

// runBuild loads the document at input and runs the full pipeline.
func runBuild(ctx context.Context, cfg *config.Config, logger zerolog.Logger, input string, stdin io.Reader) (*pipeline.Result, error) {
	doc, err := loadDocument(input, stdin)
	if err != nil {
		return nil, err
	}

	c := getContainer()
	m := metrics.New()
	deps := pipeline.Deps{
		Validator:   validate.New(c.GetTables()),
		Transformer: transform.New(c.GetTables()),
		Serials:     c.GetSerialGenerator(),
		Publisher: publish.NewWriter(publish.Config{
			SeedPath:   cfg.Output.SeedPath,
			SerialPath: cfg.Output.SerialPath,
		}),
		Recorder: m,
		Logger:   logger,
		Now:      c.GetClock(),
	}

	if cfg.Archive.Enabled {
		store, err := c.GetArchiveOpener()(cfg.Archive.Dir)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		deps.Archiver = store
	}

	res, runErr := pipeline.New(deps).Run(ctx, doc)

	if cfg.Metrics.TextfilePath != "" {
		if err := m.WriteTextfile(cfg.Metrics.TextfilePath); err != nil {
			logger.Error().Err(err).Str("path", cfg.Metrics.TextfilePath).Msg("failed to write metrics textfile")
			if runErr == nil {
				runErr = err
			}
		}
	}
	return res, runErr
}

func loadDocument(input string, stdin io.Reader) (*seed.Document, error) {
	if input == "" || input == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		return seed.Decode(stdin)
	}
	return seed.LoadFile(input)
}
