package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"ligandlib/internal"
)

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
  id TEXT PRIMARY KEY,
  barcodeFile TEXT NOT NULL,
  inventoryFile TEXT NOT NULL,
  outputPath TEXT NOT NULL,
  barcodeEntries INTEGER NOT NULL,
  inventoryRows INTEGER NOT NULL,
  inventoryKept INTEGER NOT NULL,
  matched INTEGER NOT NULL,
  unmatched INTEGER NOT NULL,
  outputRows INTEGER NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS run_rows (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  runId TEXT NOT NULL,
  rowNo INTEGER NOT NULL,
  name TEXT,
  cas TEXT,
  mass TEXT,
  storageName TEXT,
  compartmentName TEXT,
  barcode TEXT,
  UNIQUE(runId, rowNo),
  FOREIGN KEY(runId) REFERENCES runs(id)
);
CREATE INDEX IF NOT EXISTS idx_run_rows_runId ON run_rows(runId);
`

	_, err := d.conn.Exec(schema)
	return err
}

// InsertRun stores the summary and every exported row in one transaction.
func (d *DB) InsertRun(summary internal.RunSummary, rows []internal.MatchedRecord) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
INSERT INTO runs (id, barcodeFile, inventoryFile, outputPath, barcodeEntries, inventoryRows, inventoryKept, matched, unmatched, outputRows)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, summary.RunID, summary.BarcodeFile, summary.InventoryFile, summary.OutputPath,
		summary.BarcodeEntries, summary.InventoryRows, summary.InventoryKept,
		summary.Matched, summary.Unmatched, summary.OutputRows); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
INSERT INTO run_rows (runId, rowNo, name, cas, mass, storageName, compartmentName, barcode)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range rows {
		if _, err := stmt.Exec(summary.RunID, i+1, r.Name, r.CAS, r.Mass, r.StorageName, r.CompartmentName, r.Barcode); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (d *DB) ListRuns(limit int) ([]internal.RunRow, error) {
	rows, err := d.conn.Query(`
SELECT id, barcodeFile, inventoryFile, outputPath, barcodeEntries, outputRows, matched, unmatched, createdAt
FROM runs ORDER BY createdAt DESC, rowid DESC LIMIT ?
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.RunRow
	for rows.Next() {
		var row internal.RunRow
		if err := rows.Scan(&row.ID, &row.BarcodeFile, &row.InventoryFile, &row.OutputPath,
			&row.BarcodeEntries, &row.OutputRows, &row.Matched, &row.Unmatched, &row.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (d *DB) GetRun(id string) (*internal.RunRow, error) {
	var row internal.RunRow
	err := d.conn.QueryRow(`
SELECT id, barcodeFile, inventoryFile, outputPath, barcodeEntries, outputRows, matched, unmatched, createdAt
FROM runs WHERE id = ?
`, id).Scan(&row.ID, &row.BarcodeFile, &row.InventoryFile, &row.OutputPath,
		&row.BarcodeEntries, &row.OutputRows, &row.Matched, &row.Unmatched, &row.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (d *DB) GetRunRows(runID string) ([]internal.MatchedRecord, error) {
	rows, err := d.conn.Query(`
SELECT name, cas, mass, storageName, compartmentName, barcode
FROM run_rows WHERE runId = ? ORDER BY rowNo ASC
`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.MatchedRecord
	for rows.Next() {
		var r internal.MatchedRecord
		if err := rows.Scan(&r.Name, &r.CAS, &r.Mass, &r.StorageName, &r.CompartmentName, &r.Barcode); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (d *DB) MustRun(id string) (internal.RunRow, error) {
	row, err := d.GetRun(id)
	if err != nil {
		return internal.RunRow{}, err
	}
	if row == nil {
		return internal.RunRow{}, fmt.Errorf("run not found: id=%s", id)
	}
	return *row, nil
}
