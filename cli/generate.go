// ABOUTME: Dataset generation CLI command
// ABOUTME: Runs the full pipeline: weights, catalog, sales, transform, split, serialize
package cli

import (
	"database/sql"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/harperreed/salesgen/config"
	"github.com/harperreed/salesgen/dataset"
	"github.com/harperreed/salesgen/db"
	"github.com/harperreed/salesgen/generate"
	"github.com/harperreed/salesgen/models"
	"github.com/harperreed/salesgen/transform"
)

// GenerateCommand synthesizes a dataset, persists the raw table, and writes
// the train/test JSONL channels.
func GenerateCommand(database *sql.DB, cfg *config.Config, log *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	numProducts := fs.Int("products", cfg.NumProducts, "number of products to synthesize")
	years := fs.Int("years", cfg.Years, "history window in years")
	horizon := fs.Int("horizon", cfg.PredictionLength, "prediction horizon withheld from the training split")
	out := fs.String("out", cfg.OutputDir, "output directory for train.json and test.json")
	seed := fs.Int64("seed", 0, "random seed (0 = time-based)")
	_ = fs.Parse(args)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))
	today := models.Today()
	taxonomy := cfg.TaxonomyMap()

	log.Info("synthesizing weights",
		zap.Int("categories", len(taxonomy)),
		zap.Int("years", *years))

	weights, err := generate.SynthesizeAll(rng, taxonomy, today.Year()-*years, today.Year())
	if err != nil {
		return err
	}

	catalog, err := generate.GenerateCatalog(rng, generate.CatalogConfig{
		NumProducts: *numProducts,
		Years:       *years,
		Taxonomy:    taxonomy,
		Today:       today,
	})
	if err != nil {
		return err
	}

	salesGen, err := generate.NewSalesGenerator(rng, cfg.SeasonalityMap(), weights, today)
	if err != nil {
		return err
	}

	var records []models.SalesRecord
	for _, p := range catalog {
		series, err := salesGen.Series(p)
		if err != nil {
			return err
		}
		records = append(records, series...)
	}
	log.Info("generated sales table",
		zap.Int("products", len(catalog)),
		zap.Int("rows", len(records)))

	run := &db.Run{NumProducts: *numProducts, Years: *years}
	if err := db.CreateRun(database, run); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	if err := db.InsertProducts(database, run.ID, catalog); err != nil {
		return fmt.Errorf("store catalog: %w", err)
	}
	if err := db.InsertSales(database, records); err != nil {
		return fmt.Errorf("store sales table: %w", err)
	}
	log.Info("persisted run", zap.String("run_id", run.ID))

	enc, err := transform.FitLabels(catalogLabels(catalog))
	if err != nil {
		return err
	}

	ds, err := transform.BuildDataset(catalog, records, enc)
	if err != nil {
		return err
	}

	return writeSplit(ds, *horizon, *out, log)
}

// catalogLabels collects the category and subcategory strings actually seen
// in the catalog.
func catalogLabels(catalog []models.Product) []string {
	labels := make([]string, 0, 2*len(catalog))
	for _, p := range catalog {
		labels = append(labels, p.Category, p.Subcategory)
	}
	return labels
}

// writeSplit splits a dataset and writes both channels under dir.
func writeSplit(ds models.Dataset, horizon int, dir string, log *zap.Logger) error {
	train, test, err := transform.Split(ds, horizon)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	trainPath := filepath.Join(dir, "train.json")
	testPath := filepath.Join(dir, "test.json")
	if err := dataset.Write(trainPath, train); err != nil {
		return fmt.Errorf("write training channel: %w", err)
	}
	if err := dataset.Write(testPath, test); err != nil {
		return fmt.Errorf("write test channel: %w", err)
	}

	log.Info("wrote dataset",
		zap.Int("records", len(test)),
		zap.Int("horizon", horizon),
		zap.String("train", trainPath),
		zap.String("test", testPath))
	return nil
}
