// ABOUTME: Export CLI command rebuilding dataset files from a stored run
// ABOUTME: Re-derives series records from the sqlite sales table without regenerating
package cli

import (
	"database/sql"
	"flag"
	"fmt"

	"go.uber.org/zap"

	"github.com/harperreed/salesgen/config"
	"github.com/harperreed/salesgen/db"
	"github.com/harperreed/salesgen/models"
	"github.com/harperreed/salesgen/transform"
)

// ExportCommand rebuilds train.json and test.json from a persisted run.
// Defaults to the most recent run.
func ExportCommand(database *sql.DB, cfg *config.Config, log *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	runID := fs.String("run", "", "run id to export (default: latest)")
	horizon := fs.Int("horizon", cfg.PredictionLength, "prediction horizon withheld from the training split")
	out := fs.String("out", cfg.OutputDir, "output directory for train.json and test.json")
	_ = fs.Parse(args)

	run, err := resolveRun(database, *runID)
	if err != nil {
		return err
	}

	catalog, err := db.GetProducts(database, run.ID)
	if err != nil {
		return fmt.Errorf("load catalog for run %s: %w", run.ID, err)
	}
	if len(catalog) == 0 {
		return fmt.Errorf("run %s has no products", run.ID)
	}
	log.Info("exporting run",
		zap.String("run_id", run.ID),
		zap.Int("products", len(catalog)))

	enc, err := transform.FitLabels(catalogLabels(catalog))
	if err != nil {
		return err
	}

	ds := make(models.Dataset, 0, 2*len(catalog))
	for _, p := range catalog {
		daily, err := db.GetDailySales(database, p.ID)
		if err != nil {
			return fmt.Errorf("load sales for product %s: %w", p.ID, err)
		}
		recs, err := transform.ProductRecords(p, daily, enc)
		if err != nil {
			return err
		}
		ds = append(ds, recs...)
	}

	return writeSplit(ds, *horizon, *out, log)
}

func resolveRun(database *sql.DB, runID string) (*db.Run, error) {
	if runID == "" {
		return db.LatestRun(database)
	}
	run, err := db.GetRun(database, runID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, fmt.Errorf("run %s not found", runID)
	}
	return run, nil
}
