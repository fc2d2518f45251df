package ingestion

import (
	"context"
	"fmt"
	"os"

	"github.com/mr1hm/wildlife-strikes/internal/repository"
)

type sqliteSource struct {
	path  string
	table string
}

func (s *sqliteSource) Name() string { return s.path + "#" + s.table }

func (s *sqliteSource) Read(ctx context.Context) ([]string, [][]string, error) {
	// Opening a missing path would create an empty database.
	if _, err := os.Stat(s.path); err != nil {
		return nil, nil, fmt.Errorf("error opening database: %w", err)
	}

	db, err := repository.NewSQLiteDB(s.path)
	if err != nil {
		return nil, nil, err
	}
	defer db.Close()

	return readTable(ctx, db, s.table)
}

func readTable(ctx context.Context, r repository.TableReader, table string) ([]string, [][]string, error) {
	header, records, err := r.ReadTable(ctx, table)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading table %s: %w", table, err)
	}
	return header, records, nil
}
