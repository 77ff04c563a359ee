// ABOUTME: Forecast CLI commands driving the external service
// ABOUTME: Submits training jobs and prints opaque inference payloads
package cli

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/harperreed/salesgen/config"
	"github.com/harperreed/salesgen/dataset"
	"github.com/harperreed/salesgen/forecast"
)

// ForecastTrainCommand submits a training job over previously written
// train/test channels.
func ForecastTrainCommand(cfg *config.Config, log *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	endpoint := fs.String("endpoint", cfg.Forecast.Endpoint, "forecasting service base URL")
	dir := fs.String("data", cfg.OutputDir, "directory holding train.json and test.json")
	horizon := fs.Int("horizon", cfg.PredictionLength, "prediction length for the training job")
	_ = fs.Parse(args)

	if *endpoint == "" {
		return fmt.Errorf("no forecasting endpoint configured (set -endpoint or forecast.endpoint)")
	}

	trainPath := filepath.Join(*dir, "train.json")
	testPath := filepath.Join(*dir, "test.json")

	// Cardinality comes from the written dataset, not the config: it must
	// match the codes actually present in the channels.
	test, err := dataset.Read(testPath)
	if err != nil {
		return fmt.Errorf("read test channel: %w", err)
	}
	cardinality := 0
	for _, r := range test {
		if r.Cat+1 > cardinality {
			cardinality = r.Cat + 1
		}
	}

	trainCfg := forecast.TrainingConfig{
		Epochs:             cfg.Training.Epochs,
		TimeFreq:           cfg.Training.TimeFreq,
		ContextLength:      cfg.ContextLength,
		PredictionLength:   *horizon,
		Cardinality:        cardinality,
		EmbeddingDimension: cfg.Training.EmbeddingDimension,
		MiniBatchSize:      cfg.Training.MiniBatchSize,
		LearningRate:       cfg.Training.LearningRate,
		NumCells:           cfg.Training.NumCells,
		NumLayers:          cfg.Training.NumLayers,
		DropoutRate:        cfg.Training.DropoutRate,
		Likelihood:         cfg.Training.Likelihood,
		NumEvalSamples:     cfg.Training.NumEvalSamples,
	}

	client := forecast.NewClient(*endpoint)
	job, err := client.StartTraining(context.Background(), trainCfg, trainPath, testPath)
	if err != nil {
		return err
	}

	log.Info("training job submitted",
		zap.String("job_id", job.JobID),
		zap.Int("cardinality", cardinality))
	fmt.Println(string(job.Raw))
	return nil
}

// ForecastPredictCommand reads series records, posts an inference request,
// and prints the raw forecast payload.
func ForecastPredictCommand(cfg *config.Config, log *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("predict", flag.ExitOnError)
	endpoint := fs.String("endpoint", cfg.Forecast.Endpoint, "forecasting service base URL")
	input := fs.String("input", "", "JSONL file of series records (default: <output_dir>/train.json)")
	count := fs.Int("instances", 2, "number of records to forecast")
	samples := fs.Int("samples", cfg.Forecast.NumSamples, "sample paths per instance")
	quantileList := fs.String("quantiles", "", "comma-separated quantile levels (default from config)")
	_ = fs.Parse(args)

	if *endpoint == "" {
		return fmt.Errorf("no forecasting endpoint configured (set -endpoint or forecast.endpoint)")
	}
	if *input == "" {
		*input = filepath.Join(cfg.OutputDir, "train.json")
	}

	ds, err := dataset.Read(*input)
	if err != nil {
		return err
	}
	if *count > len(ds) {
		*count = len(ds)
	}

	levels := cfg.Forecast.Quantiles
	if *quantileList != "" {
		levels = nil
		for _, part := range strings.Split(*quantileList, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return fmt.Errorf("bad quantile %q: %w", part, err)
			}
			levels = append(levels, v)
		}
	}
	quantiles, err := forecast.FormatQuantiles(levels)
	if err != nil {
		return err
	}

	instances := make([]forecast.Instance, 0, *count)
	for _, r := range ds[:*count] {
		instances = append(instances, forecast.Instance{
			Start:  r.Start,
			Target: r.Target,
			Cat:    r.Cat,
		})
	}

	req := forecast.InferenceRequest{
		Instances: instances,
		Configuration: forecast.InferenceConfig{
			NumSamples:  *samples,
			OutputTypes: []string{forecast.OutputMean, forecast.OutputQuantiles},
			Quantiles:   quantiles,
		},
	}

	client := forecast.NewClient(*endpoint)
	payload, err := client.Predict(context.Background(), req)
	if err != nil {
		return err
	}

	log.Info("forecast received", zap.Int("instances", len(instances)))
	fmt.Println(string(payload))
	return nil
}
