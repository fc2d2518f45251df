package repository

import (
	"context"

	"github.com/mr1hm/wildlife-strikes/internal/dataset"
)

// TableReader returns a table as a header row plus string cells. NULL cells
// come back as empty strings.
type TableReader interface {
	ReadTable(ctx context.Context, table string) ([]string, [][]string, error)
}

// CountWriter replaces the contents of a (label, count) table.
type CountWriter interface {
	WriteCounts(ctx context.Context, table string, t dataset.Table) error
}
