package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ligandlib/internal/pipeline"
)

var (
	exportRunID  string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the rows of a journaled run to a new workbook",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportRunID, "run", "", "run id as listed by the history command (required)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file name, .xlsx is appended when missing")
	_ = exportCmd.MarkFlagRequired("run")
}

func runExport(cmd *cobra.Command, args []string) error {
	if strings.TrimSpace(exportRunID) == "" {
		return fmt.Errorf("--run is required")
	}
	db, err := openJournal()
	if err != nil {
		return err
	}
	if db == nil {
		return fmt.Errorf("run journal is disabled, set RUN_LOG_DB or pass --journal")
	}
	defer db.Close()

	processor := pipeline.NewProcessingService(db, cfg)
	path, n, err := processor.ExportRun(exportRunID, exportOutput)
	if err != nil {
		return err
	}
	fmt.Printf("exported %d rows to %s\n", n, path)
	return nil
}
