// Package store provides a SQLite-backed cache for parsed dataset files,
// so unchanged CSVs are not re-read on every run. It memoizes parsing
// only; it is not a durable store of user calculations.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"stucash/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Cache provides SQLite-backed dataset caching.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the cache database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// FileInfo holds the tracked mtime and size for a file.
type FileInfo struct {
	MtimeNs   int64
	SizeBytes int64
}

// GetTrackedFiles returns a map of file_path -> FileInfo for all tracked files.
func (c *Cache) GetTrackedFiles() (map[string]FileInfo, error) {
	rows, err := c.db.Query("SELECT file_path, mtime_ns, size_bytes FROM file_tracker")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string]FileInfo)
	for rows.Next() {
		var path string
		var fi FileInfo
		if err := rows.Scan(&path, &fi.MtimeNs, &fi.SizeBytes); err != nil {
			return nil, err
		}
		result[path] = fi
	}
	return result, rows.Err()
}

// SaveFileRecords replaces the cached records for one dataset file and
// updates its tracking info, in one transaction.
func (c *Cache) SaveFileRecords(filePath string, records []model.CostRecord, mtimeNs, sizeBytes int64) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM cost_records WHERE file_path = ?", filePath); err != nil {
		return err
	}

	for _, r := range records {
		_, err = tx.Exec(`INSERT OR REPLACE INTO cost_records
			(file_path, city, month, campus_job_income, stipend_income,
			 rent, utilities, food, transport, phone_internet, misc_basic)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			filePath, r.City, r.Label, int64(r.CampusJobIncome), int64(r.StipendIncome),
			int64(r.Rent), int64(r.Utilities), int64(r.Food), int64(r.Transport),
			int64(r.PhoneInternet), int64(r.MiscBasic),
		)
		if err != nil {
			return err
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.Exec(`INSERT OR REPLACE INTO file_tracker (file_path, mtime_ns, size_bytes, parsed_at)
		VALUES (?, ?, ?, ?)`, filePath, mtimeNs, sizeBytes, now)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// LoadFileRecords reads the cached records for one dataset file.
func (c *Cache) LoadFileRecords(filePath string) ([]model.CostRecord, error) {
	rows, err := c.db.Query(`SELECT
		city, month, campus_job_income, stipend_income,
		rent, utilities, food, transport, phone_internet, misc_basic
		FROM cost_records WHERE file_path = ? ORDER BY city, month`, filePath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []model.CostRecord
	for rows.Next() {
		var r model.CostRecord
		var campus, stipend, rent, utilities, food, transport, phone, misc int64

		err := rows.Scan(&r.City, &r.Label, &campus, &stipend,
			&rent, &utilities, &food, &transport, &phone, &misc)
		if err != nil {
			return nil, err
		}

		r.Month, _ = time.Parse("2006-01", r.Label)
		r.CampusJobIncome = model.Money(campus)
		r.StipendIncome = model.Money(stipend)
		r.Rent = model.Money(rent)
		r.Utilities = model.Money(utilities)
		r.Food = model.Money(food)
		r.Transport = model.Money(transport)
		r.PhoneInternet = model.Money(phone)
		r.MiscBasic = model.Money(misc)

		records = append(records, r)
	}
	return records, rows.Err()
}

// DeleteFile removes a file's cached records and its tracking entry.
func (c *Cache) DeleteFile(filePath string) error {
	if _, err := c.db.Exec("DELETE FROM cost_records WHERE file_path = ?", filePath); err != nil {
		return err
	}
	_, err := c.db.Exec("DELETE FROM file_tracker WHERE file_path = ?", filePath)
	return err
}

// RecordCount returns the number of cached cost records.
func (c *Cache) RecordCount() (int, error) {
	var count int
	err := c.db.QueryRow("SELECT COUNT(*) FROM cost_records").Scan(&count)
	return count, err
}
