package ingestion

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/mr1hm/wildlife-strikes/internal/config"
)

// Source yields the raw record set as a header row plus string cells.
// Rows may be ragged; newFrame pads or truncates them to the header.
type Source interface {
	Name() string
	Read(ctx context.Context) ([]string, [][]string, error)
}

// NewSource picks a source for cfg.Path by URL scheme or file extension.
func NewSource(cfg config.DatasetConfig) (Source, error) {
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		return nil, fmt.Errorf("dataset path is empty")
	}

	if u, err := url.Parse(path); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return &httpSource{url: path}, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return &csvFileSource{path: path}, nil
	case ".xlsx":
		return &xlsxSource{path: path, sheet: cfg.Sheet}, nil
	case ".db", ".sqlite", ".sqlite3":
		return &sqliteSource{path: path, table: cfg.Table}, nil
	}

	return nil, fmt.Errorf("unsupported dataset source: %s", path)
}
