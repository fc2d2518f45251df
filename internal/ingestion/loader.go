package ingestion

import (
	"context"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/mr1hm/wildlife-strikes/internal/config"
	"github.com/mr1hm/wildlife-strikes/internal/dataset"
	"github.com/mr1hm/wildlife-strikes/internal/observability"
)

type Loader struct {
	cfg     config.DatasetConfig
	clock   clockwork.Clock
	metrics *observability.Metrics
}

func NewLoader(cfg config.DatasetConfig, clock clockwork.Clock, metrics *observability.Metrics) *Loader {
	return &Loader{
		cfg:     cfg,
		clock:   clock,
		metrics: metrics,
	}
}

// Load reads and cleans the configured source. It never fails: any read
// error is logged once and the empty fallback dataset is returned instead.
func (l *Loader) Load(ctx context.Context) *dataset.Dataset {
	start := l.clock.Now()

	ds, err := l.load(ctx)
	if err != nil {
		slog.Error("dataset unavailable, continuing with empty dataset", "source", l.cfg.Path, "error", err)
		l.metrics.DatasetLoadFailures.Inc()
		ds = dataset.Empty(l.cfg.Path, l.clock.Now())
	}

	l.metrics.DatasetRecords.Set(float64(ds.Len()))
	slog.Info("dataset loaded",
		"source", ds.Source(),
		"records", ds.Len(),
		"columns", len(ds.Columns()),
		"fallback", ds.Fallback(),
		"duration", l.clock.Since(start),
	)

	return ds
}

func (l *Loader) load(ctx context.Context) (*dataset.Dataset, error) {
	src, err := NewSource(l.cfg)
	if err != nil {
		return nil, err
	}

	header, records, err := src.Read(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := newFrame(header, records)
	if err != nil {
		return nil, err
	}

	df := Clean(raw)
	if df.Err != nil {
		return nil, df.Err
	}

	return dataset.New(src.Name(), df.Names(), toIncidents(df), l.clock.Now()), nil
}
