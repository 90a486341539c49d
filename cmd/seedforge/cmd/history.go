/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived seeds, newest first",
	Long: `List seeds recorded by "seedforge build --archive".

Example:
  seedforge history --limit 5 --archive-dir ./archive`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := settingsFrom(cmd)
		limit, _ := cmd.Flags().GetInt("limit")
		archiveDir, _ := cmd.Flags().GetString("archive-dir")
		if archiveDir == "" {
			archiveDir = s.cfg.Archive.Dir
		}

		store, err := getContainer().GetArchiveOpener()(archiveDir)
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.List(limit)
		if err != nil {
			return err
		}
		return outputHistoryTable(cmd.OutOrStdout(), entries)
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntP("limit", "n", 20, "Maximum number of entries (0 for all)")
	historyCmd.Flags().String("archive-dir", "", "Archive directory (overrides archive.dir)")
}
