package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent runs from the run journal",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "max runs to list (default RUN_LOG_HISTORY_LIMIT)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openJournal()
	if err != nil {
		return err
	}
	if db == nil {
		return fmt.Errorf("run journal is disabled, set RUN_LOG_DB or pass --journal")
	}
	defer db.Close()

	limit := historyLimit
	if limit <= 0 {
		limit = cfg.HistoryLimit
	}
	runs, err := db.ListRuns(limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}
	for _, r := range runs {
		fmt.Printf("%s %s barcodes=%d rows=%d matched=%d unmatched=%d output=%s\n",
			r.CreatedAt, r.ID, r.BarcodeEntries, r.OutputRows, r.Matched, r.Unmatched, r.OutputPath)
	}
	return nil
}
