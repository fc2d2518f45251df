package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/mr1hm/wildlife-strikes/internal/config"
	"github.com/mr1hm/wildlife-strikes/internal/dataset"
	"github.com/mr1hm/wildlife-strikes/internal/export"
	"github.com/mr1hm/wildlife-strikes/internal/ingestion"
	"github.com/mr1hm/wildlife-strikes/internal/logging"
	"github.com/mr1hm/wildlife-strikes/internal/models"
	"github.com/mr1hm/wildlife-strikes/internal/observability"
)

var (
	exportScope   string
	exportFrom    int
	exportTo      int
	exportOut     string
	exportDataset string
)

var rootCmd = &cobra.Command{
	Use:   "strike-export",
	Short: "Export filtered wildlife strike aggregates",
	Long: `Loads the strike dataset once, applies the outcome scope and year range
and writes the species, yearly and flight phase tables to an .xlsx workbook
or a SQLite file (.db, .sqlite, .sqlite3).`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runExport,
}

func init() {
	rootCmd.Flags().StringVar(&exportScope, "scope", string(models.ScopeAll), "Outcome scope: all, damage, injury or death")
	rootCmd.Flags().IntVar(&exportFrom, "from", models.MinYear, "First incident year (inclusive)")
	rootCmd.Flags().IntVar(&exportTo, "to", models.MaxYear, "Last incident year (inclusive)")
	rootCmd.Flags().StringVar(&exportOut, "out", "", "Output file (.xlsx, .db, .sqlite, .sqlite3)")
	rootCmd.Flags().StringVar(&exportDataset, "dataset", "", "Dataset path or URL (overrides DATASET_PATH)")
	_ = rootCmd.MarkFlagRequired("out")
}

func runExport(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	if exportDataset != "" {
		cfg.Dataset.Path = exportDataset
	}

	ds := ingestion.NewLoader(cfg.Dataset, clockwork.NewRealClock(), observability.NewMetrics()).Load(cmd.Context())
	if ds.Fallback() {
		slog.Warn("exporting empty tables", "dataset", cfg.Dataset.Path)
	}

	scope := models.ParseOutcomeScope(exportScope)
	summary := dataset.Summarize(dataset.Filter(ds, scope, models.ClampYear(exportFrom), models.ClampYear(exportTo)))

	if err := export.Write(cmd.Context(), exportOut, summary); err != nil {
		return err
	}

	slog.Info("export complete",
		"out", exportOut,
		"scope", summary.Scope,
		"year_min", summary.YearMin,
		"year_max", summary.YearMax,
		"incidents", summary.Total,
	)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
