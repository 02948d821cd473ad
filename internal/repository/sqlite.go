package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/relieflabs/aid-receipts/internal/models"
)

type SQLiteDB struct {
	db *sql.DB
}

func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error while pinging database: %w", err)
	}

	s := &SQLiteDB{
		db: db,
	}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("error while migrating to database: %w", err)
	}

	return s, nil
}

// Note: receipts have no harm_score column. Scores are recomputed from
// disaster_type on every read and never persisted.
func (s *SQLiteDB) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS receipts (
			id TEXT PRIMARY KEY,
			receipt_id TEXT NOT NULL UNIQUE,
			package_id TEXT NOT NULL,
			proof_summary TEXT NOT NULL,
			status TEXT NOT NULL,
			disaster_type TEXT,
			timestamp DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS packages (
			id TEXT PRIMARY KEY,
			package_id TEXT NOT NULL UNIQUE,
			destination TEXT NOT NULL,
			status TEXT NOT NULL,
			urgency TEXT NOT NULL,
			description TEXT,
			category TEXT,
			priority_label TEXT,
			last_updated DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_receipts_timestamp ON receipts(timestamp);
		CREATE INDEX IF NOT EXISTS idx_packages_last_updated ON packages(last_updated);
		CREATE INDEX IF NOT EXISTS idx_packages_status ON packages(status);
  	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

func (s *SQLiteDB) AddReceipt(ctx context.Context, r *models.Receipt) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO receipts (id, receipt_id, package_id, proof_summary, status, disaster_type, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.ReceiptID, r.PackageID, r.ProofSummary, string(r.Status),
		nullableString(r.DisasterType), r.Timestamp,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("error inserting receipt: %w", err)
	}
	return nil
}

func (s *SQLiteDB) ListReceipts(ctx context.Context, opts Filter) ([]models.Receipt, error) {
	query := `
		SELECT id, receipt_id, package_id, proof_summary, status, disaster_type, timestamp
		FROM receipts`
	args := []any{}

	if opts.Status != "" {
		query += " WHERE status = ?"
		args = append(args, opts.Status)
	}
	query += " ORDER BY timestamp DESC"
	if opts.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, opts.Limit, opts.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing receipts: %w", err)
	}
	defer rows.Close()

	receipts := []models.Receipt{}
	for rows.Next() {
		var r models.Receipt
		var disasterType sql.NullString
		if err := rows.Scan(&r.ID, &r.ReceiptID, &r.PackageID, &r.ProofSummary, &r.Status, &disasterType, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("error scanning receipt: %w", err)
		}
		r.DisasterType = disasterType.String
		receipts = append(receipts, r)
	}
	return receipts, rows.Err()
}

func (s *SQLiteDB) ReceiptExists(ctx context.Context, receiptID string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM receipts WHERE receipt_id = ?", receiptID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("error checking receipt existence: %w", err)
	}
	return count > 0, nil
}

func (s *SQLiteDB) AddPackage(ctx context.Context, p *models.Package) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO packages (id, package_id, destination, status, urgency, description, category, priority_label, last_updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.PackageID, p.Destination, string(p.Status), string(p.Urgency),
		nullableString(p.Description), nullableString(p.Category), nullableString(p.PriorityLabel),
		p.LastUpdated,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("error inserting package: %w", err)
	}
	return nil
}

func (s *SQLiteDB) GetPackage(ctx context.Context, id string) (*models.Package, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, package_id, destination, status, urgency, description, category, priority_label, last_updated
		FROM packages WHERE id = ?`, id)
	return scanPackage(row)
}

func (s *SQLiteDB) ListPackages(ctx context.Context, opts Filter) ([]models.Package, error) {
	query := `
		SELECT id, package_id, destination, status, urgency, description, category, priority_label, last_updated
		FROM packages`
	args := []any{}

	if opts.Status != "" {
		query += " WHERE status = ?"
		args = append(args, opts.Status)
	}
	query += " ORDER BY last_updated DESC"
	if opts.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, opts.Limit, opts.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing packages: %w", err)
	}
	defer rows.Close()

	packages := []models.Package{}
	for rows.Next() {
		var p models.Package
		var description, cat, label sql.NullString
		if err := rows.Scan(&p.ID, &p.PackageID, &p.Destination, &p.Status, &p.Urgency, &description, &cat, &label, &p.LastUpdated); err != nil {
			return nil, fmt.Errorf("error scanning package: %w", err)
		}
		p.Description = description.String
		p.Category = cat.String
		p.PriorityLabel = label.String
		packages = append(packages, p)
	}
	return packages, rows.Err()
}

func (s *SQLiteDB) UpdatePackageStatus(ctx context.Context, id string, status models.PackageStatus, updated time.Time) (*models.Package, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE packages SET status = ?, last_updated = ? WHERE id = ?",
		string(status), updated, id,
	)
	if err != nil {
		return nil, fmt.Errorf("error updating package status: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, ErrNotFound
	}
	return s.GetPackage(ctx, id)
}

func (s *SQLiteDB) UpdatePackageClassification(ctx context.Context, id, cat, priorityLabel string, updated time.Time) (*models.Package, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE packages SET category = ?, priority_label = ?, last_updated = ? WHERE id = ?",
		nullableString(cat), nullableString(priorityLabel), updated, id,
	)
	if err != nil {
		return nil, fmt.Errorf("error updating package classification: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, ErrNotFound
	}
	return s.GetPackage(ctx, id)
}

func (s *SQLiteDB) PackageExists(ctx context.Context, packageID string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM packages WHERE package_id = ?", packageID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("error checking package existence: %w", err)
	}
	return count > 0, nil
}

func (s *SQLiteDB) CountPackagesByStatus(ctx context.Context) (map[models.PackageStatus]int, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT status, COUNT(1) FROM packages GROUP BY status")
	if err != nil {
		return nil, fmt.Errorf("error counting packages: %w", err)
	}
	defer rows.Close()

	counts := map[models.PackageStatus]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("error scanning package count: %w", err)
		}
		counts[models.PackageStatus(status)] = n
	}
	return counts, rows.Err()
}

func scanPackage(row *sql.Row) (*models.Package, error) {
	var p models.Package
	var description, cat, label sql.NullString
	err := row.Scan(&p.ID, &p.PackageID, &p.Destination, &p.Status, &p.Urgency, &description, &cat, &label, &p.LastUpdated)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error scanning package: %w", err)
	}
	p.Description = description.String
	p.Category = cat.String
	p.PriorityLabel = label.String
	return &p, nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
