package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ligandlib/internal/config"
	"ligandlib/internal/pipeline"
	"ligandlib/internal/storage"
)

var (
	cfg config.Config

	barcodeFile   string
	inventoryFile string
	outputName    string
	journalPath   string
)

var rootCmd = &cobra.Command{
	Use:   "ligandlib [barcodes.csv] [inventory.csv] [output]",
	Short: "Build an Excel sheet of chemicals from a list of scanned barcodes",
	Long: `ligandlib matches a CSV list of barcodes against a copy of the chemical
inventory and writes the name, CAS number, mass and storage location of every
scanned container to an .xlsx workbook.`,
	Args:              cobra.MaximumNArgs(3),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runMatch,
}

func init() {
	rootCmd.Flags().StringVarP(&barcodeFile, "barcode", "B", "", "CSV or XLSX file containing the barcodes")
	rootCmd.Flags().StringVarP(&inventoryFile, "inventory", "I", "", "CSV or XLSX file containing the current inventory")
	rootCmd.Flags().StringVarP(&outputName, "output", "o", "", "output file name, .xlsx is appended when missing")
	rootCmd.PersistentFlags().StringVar(&journalPath, "journal", "", "sqlite run journal path (overrides RUN_LOG_DB)")

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(exportCmd)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	if strings.TrimSpace(journalPath) != "" {
		loaded.RunLogDBPath = journalPath
		loaded.RunLogEnabled = true
	}
	cfg = loaded
	return nil
}

func runMatch(cmd *cobra.Command, args []string) error {
	positional := func(i int, current string) string {
		if current == "" && len(args) > i {
			return args[i]
		}
		return current
	}
	barcodeFile = positional(0, barcodeFile)
	inventoryFile = positional(1, inventoryFile)
	outputName = positional(2, outputName)

	if barcodeFile == "" || inventoryFile == "" {
		return fmt.Errorf("--barcode and --inventory are required")
	}

	db, err := openJournal()
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	processor := pipeline.NewProcessingService(db, cfg)
	summary, err := processor.Run(pipeline.RunInput{
		BarcodeFile:   barcodeFile,
		InventoryFile: inventoryFile,
		OutputName:    outputName,
	})
	if err != nil {
		return err
	}

	fmt.Printf("inventory loaded rows=%d kept=%d\n", summary.InventoryRows, summary.InventoryKept)
	fmt.Printf("barcodes matched=%d unmatched=%d\n", summary.Matched, summary.Unmatched)
	fmt.Printf("run done id=%s rows=%d output=%s\n", summary.RunID, summary.OutputRows, summary.OutputPath)
	return nil
}

// openJournal returns nil when journaling is disabled.
func openJournal() (*storage.DB, error) {
	if !cfg.RunLogEnabled {
		return nil, nil
	}
	db, err := storage.Open(cfg.RunLogDBPath)
	if err != nil {
		return nil, fmt.Errorf("open run journal %s: %w", cfg.RunLogDBPath, err)
	}
	return db, nil
}
