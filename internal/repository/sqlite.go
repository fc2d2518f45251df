package repository

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	_ "modernc.org/sqlite"

	"github.com/mr1hm/wildlife-strikes/internal/dataset"
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type SQLiteDB struct {
	db *sql.DB
}

func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error while pinging database: %w", err)
	}

	return &SQLiteDB{db: db}, nil
}

func (s *SQLiteDB) ReadTable(ctx context.Context, table string) ([]string, [][]string, error) {
	if !identRe.MatchString(table) {
		return nil, nil, fmt.Errorf("invalid table name: %q", table)
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`SELECT * FROM "%s"`, table))
	if err != nil {
		return nil, nil, fmt.Errorf("error querying table %s: %w", table, err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("error reading columns: %w", err)
	}

	cells := make([]sql.NullString, len(header))
	dest := make([]any, len(header))
	for i := range cells {
		dest[i] = &cells[i]
	}

	var records [][]string
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, nil, fmt.Errorf("error scanning row: %w", err)
		}
		record := make([]string, len(header))
		for i, c := range cells {
			if c.Valid {
				record[i] = c.String
			}
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return header, records, nil
}

// WriteCounts recreates table with one row per count, keeping the table's
// rank order in a rank column.
func (s *SQLiteDB) WriteCounts(ctx context.Context, table string, t dataset.Table) error {
	if !identRe.MatchString(table) {
		return fmt.Errorf("invalid table name: %q", table)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	schema := fmt.Sprintf(`
		DROP TABLE IF EXISTS "%[1]s";
		CREATE TABLE "%[1]s" (
			rank INTEGER NOT NULL,
			label TEXT NOT NULL,
			count INTEGER NOT NULL
		);`, table)
	if _, err := tx.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("error creating table %s: %w", table, err)
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`INSERT INTO "%s" (rank, label, count) VALUES (?, ?, ?)`, table))
	if err != nil {
		return fmt.Errorf("error preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range t.Rows {
		if _, err := stmt.ExecContext(ctx, i+1, row.Label, row.Count); err != nil {
			return fmt.Errorf("error inserting %q: %w", row.Label, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteDB) Close() error {
	return s.db.Close()
}
