package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultBarcodeAlias = "Barcode (separate multiple barcodes via with comma):"
	DefaultOutputName   = "Ligand Library"
)

type Config struct {
	OutputDir  string
	OutputName string

	BarcodeColumnAliases []string

	RunLogDBPath  string
	RunLogEnabled bool
	HistoryLimit  int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		OutputDir:  getEnv("OUTPUT_DIR", ""),
		OutputName: getEnv("OUTPUT_NAME", DefaultOutputName),

		BarcodeColumnAliases: getEnvList("BARCODE_COLUMN_ALIASES", []string{DefaultBarcodeAlias}),

		RunLogDBPath:  getEnv("RUN_LOG_DB", ""),
		RunLogEnabled: getEnvBool("RUN_LOG_ENABLED", false),
		HistoryLimit:  getEnvInt("RUN_LOG_HISTORY_LIMIT", 20),
	}

	if cfg.RunLogDBPath != "" {
		cfg.RunLogEnabled = true
	} else if cfg.RunLogEnabled {
		cfg.RunLogDBPath = filepath.Join(cwd, "data", "runs.db")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}

// getEnvList splits on ';' because aliases themselves may contain commas.
func getEnvList(key string, fallback []string) []string {
	value := getEnv(key, "")
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	out := []string{}
	for _, part := range strings.Split(value, ";") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
