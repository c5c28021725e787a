package pipeline

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"ligandlib/internal"
	"ligandlib/internal/config"
	"ligandlib/internal/storage"
	"ligandlib/internal/util"
)

// ProcessingService runs the load, normalize, match and export steps. db is
// optional; when nil no run journal is kept.
type ProcessingService struct {
	db  *storage.DB
	cfg config.Config
}

func NewProcessingService(db *storage.DB, cfg config.Config) *ProcessingService {
	return &ProcessingService{db: db, cfg: cfg}
}

type RunInput struct {
	BarcodeFile   string
	InventoryFile string
	OutputName    string
}

func (s *ProcessingService) Run(in RunInput) (internal.RunSummary, error) {
	rawBarcodes, err := LoadBarcodes(in.BarcodeFile, s.cfg.BarcodeColumnAliases)
	if err != nil {
		return internal.RunSummary{}, err
	}
	rawInventory, err := LoadInventory(in.InventoryFile)
	if err != nil {
		return internal.RunSummary{}, err
	}

	entries := NormalizeBarcodes(rawBarcodes)
	inventory := NormalizeInventory(rawInventory)

	rows, stats := NewMatcher(inventory).Match(entries)

	outputPath := util.OutputFileName(s.cfg.OutputDir, firstNonEmpty(in.OutputName, s.cfg.OutputName, config.DefaultOutputName))
	if err := ExportRowsToXLSX(rows, outputPath); err != nil {
		return internal.RunSummary{}, err
	}

	summary := internal.RunSummary{
		RunID:          uuid.NewString(),
		BarcodeFile:    in.BarcodeFile,
		InventoryFile:  in.InventoryFile,
		OutputPath:     outputPath,
		BarcodeEntries: len(entries),
		InventoryRows:  len(rawInventory),
		InventoryKept:  len(inventory),
		Matched:        stats.Matched,
		Unmatched:      stats.Unmatched,
		OutputRows:     len(rows),
	}
	if s.db != nil {
		_ = s.db.InsertRun(summary, rows)
	}
	return summary, nil
}

// ExportRun rewrites the rows of a journaled run into a new workbook.
func (s *ProcessingService) ExportRun(runID, outputName string) (string, int, error) {
	if s.db == nil {
		return "", 0, errors.New("run journal is disabled, set RUN_LOG_DB or RUN_LOG_ENABLED")
	}
	if _, err := s.db.MustRun(runID); err != nil {
		return "", 0, err
	}
	rows, err := s.db.GetRunRows(runID)
	if err != nil {
		return "", 0, err
	}
	outputPath := util.OutputFileName(s.cfg.OutputDir, firstNonEmpty(outputName, s.cfg.OutputName, config.DefaultOutputName))
	if err := ExportRowsToXLSX(rows, outputPath); err != nil {
		return "", 0, err
	}
	return outputPath, len(rows), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
