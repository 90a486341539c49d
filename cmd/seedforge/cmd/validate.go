/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ssargent/seedforge/pkg/pipeline"
	"github.com/ssargent/seedforge/pkg/transform"
	"github.com/ssargent/seedforge/pkg/validate"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [seed.json]",
	Short: "Check a seed document without publishing it",
	Long: `Validate an experiment configuration document and encode it in memory.
Every failing study is reported. No files are written.

` + validationRules + `

Example:
  seedforge validate seed.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := ""
		if len(args) == 1 {
			input = args[0]
		}
		return runValidate(cmd, input, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, input string, out io.Writer) error {
	s := settingsFrom(cmd)
	doc, err := loadDocument(input, cmd.InOrStdin())
	if err != nil {
		return err
	}

	c := getContainer()
	p := pipeline.New(pipeline.Deps{
		Validator:   validate.New(c.GetTables()),
		Transformer: transform.New(c.GetTables()),
		Serials:     c.GetSerialGenerator(),
		Logger:      s.logger,
	})

	ws, payload, err := p.Check(cmd.Context(), doc)
	if err != nil {
		var errs validate.Errors
		if errors.As(err, &errs) {
			for _, e := range errs {
				fmt.Fprintf(out, "  - %s\n", e)
			}
		}
		return err
	}

	fmt.Fprintf(out, "Seed document is valid: %d studies, %d experiments, %d bytes encoded\n",
		len(ws.Studies), ws.ExperimentCount(), len(payload))
	return nil
}
