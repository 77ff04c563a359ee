// ABOUTME: Request types for the forecasting service API
// ABOUTME: Training hyperparameters and the inference instance/configuration payload
package forecast

import (
	"fmt"
	"strconv"

	"github.com/harperreed/salesgen/models"
)

// Recognized inference output types.
const (
	OutputMean      = "mean"
	OutputQuantiles = "quantiles"
	OutputSamples   = "samples"
)

// TrainingConfig carries the hyperparameter values handed to the service.
// Values only; the service interprets them.
type TrainingConfig struct {
	Epochs             int
	TimeFreq           string
	ContextLength      int
	PredictionLength   int
	Cardinality        int
	EmbeddingDimension int

	// Optional tuning knobs; zero values are omitted.
	MiniBatchSize  int
	LearningRate   float64
	NumCells       int
	NumLayers      int
	DropoutRate    float64
	Likelihood     string
	NumEvalSamples int
}

// Validate checks the required fields.
func (c TrainingConfig) Validate() error {
	if c.Epochs <= 0 {
		return fmt.Errorf("epochs must be positive, got %d", c.Epochs)
	}
	if c.TimeFreq == "" {
		return fmt.Errorf("time_freq is required")
	}
	if c.ContextLength <= 0 {
		return fmt.Errorf("context_length must be positive, got %d", c.ContextLength)
	}
	if c.PredictionLength <= 0 {
		return fmt.Errorf("prediction_length must be positive, got %d", c.PredictionLength)
	}
	if c.Cardinality <= 0 {
		return fmt.Errorf("cardinality must be positive, got %d", c.Cardinality)
	}
	if c.EmbeddingDimension <= 0 {
		return fmt.Errorf("embedding_dimension must be positive, got %d", c.EmbeddingDimension)
	}
	return nil
}

// Hyperparameters renders the config as the string-valued map such services
// accept.
func (c TrainingConfig) Hyperparameters() map[string]string {
	params := map[string]string{
		"epochs":              strconv.Itoa(c.Epochs),
		"time_freq":           c.TimeFreq,
		"context_length":      strconv.Itoa(c.ContextLength),
		"prediction_length":   strconv.Itoa(c.PredictionLength),
		"cardinality":         strconv.Itoa(c.Cardinality),
		"embedding_dimension": strconv.Itoa(c.EmbeddingDimension),
	}
	if c.MiniBatchSize > 0 {
		params["mini_batch_size"] = strconv.Itoa(c.MiniBatchSize)
	}
	if c.LearningRate > 0 {
		params["learning_rate"] = strconv.FormatFloat(c.LearningRate, 'g', -1, 64)
	}
	if c.NumCells > 0 {
		params["num_cells"] = strconv.Itoa(c.NumCells)
	}
	if c.NumLayers > 0 {
		params["num_layers"] = strconv.Itoa(c.NumLayers)
	}
	if c.DropoutRate > 0 {
		params["dropout_rate"] = strconv.FormatFloat(c.DropoutRate, 'g', -1, 64)
	}
	if c.Likelihood != "" {
		params["likelihood"] = c.Likelihood
	}
	if c.NumEvalSamples > 0 {
		params["num_eval_samples"] = strconv.Itoa(c.NumEvalSamples)
	}
	return params
}

// Instance is one series the service should forecast.
type Instance struct {
	Start  models.Date `json:"start"`
	Target []int64     `json:"target"`
	Cat    int         `json:"cat"`
}

// InferenceConfig selects what the service returns per instance.
type InferenceConfig struct {
	NumSamples  int      `json:"num_samples"`
	OutputTypes []string `json:"output_types"`
	Quantiles   []string `json:"quantiles,omitempty"`
}

// InferenceRequest is the full request payload.
type InferenceRequest struct {
	Instances     []Instance      `json:"instances"`
	Configuration InferenceConfig `json:"configuration"`
}

// Validate checks instances, output types, and quantile strings.
func (r InferenceRequest) Validate() error {
	if len(r.Instances) == 0 {
		return fmt.Errorf("no instances")
	}
	if r.Configuration.NumSamples <= 0 {
		return fmt.Errorf("num_samples must be positive, got %d", r.Configuration.NumSamples)
	}
	if len(r.Configuration.OutputTypes) == 0 {
		return fmt.Errorf("no output types")
	}
	for _, ot := range r.Configuration.OutputTypes {
		switch ot {
		case OutputMean, OutputQuantiles, OutputSamples:
		default:
			return fmt.Errorf("unrecognized output type %q", ot)
		}
	}
	for _, q := range r.Configuration.Quantiles {
		v, err := strconv.ParseFloat(q, 64)
		if err != nil {
			return fmt.Errorf("quantile %q is not a number: %w", q, err)
		}
		if v <= 0 || v >= 1 {
			return fmt.Errorf("quantile %q outside (0, 1)", q)
		}
	}
	return nil
}

// FormatQuantiles stringifies quantile levels for the request payload,
// rejecting values outside (0, 1).
func FormatQuantiles(levels []float64) ([]string, error) {
	out := make([]string, 0, len(levels))
	for _, v := range levels {
		if v <= 0 || v >= 1 {
			return nil, fmt.Errorf("quantile %v outside (0, 1)", v)
		}
		out = append(out, strconv.FormatFloat(v, 'g', -1, 64))
	}
	return out, nil
}
