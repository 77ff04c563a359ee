// ABOUTME: HTTP client driving the external forecasting service
// ABOUTME: Submits training jobs and inference requests, treats responses as opaque
package forecast

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to a managed DeepAR-style forecasting service. The service is
// a black box: this client supplies configuration values and payloads but
// never interprets what comes back.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// TrainingJob is the opaque handle returned when a training job is accepted.
type TrainingJob struct {
	JobID string          `json:"job_id"`
	Raw   json.RawMessage `json:"-"`
}

type trainingRequest struct {
	Hyperparameters map[string]string `json:"hyperparameters"`
	TrainChannel    string            `json:"train_channel"`
	TestChannel     string            `json:"test_channel"`
}

// StartTraining submits a training job over the two dataset channels and
// returns the service's job handle.
func (c *Client) StartTraining(ctx context.Context, cfg TrainingConfig, trainChannel, testChannel string) (*TrainingJob, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid training config: %w", err)
	}

	body, err := c.post(ctx, "/training-jobs", trainingRequest{
		Hyperparameters: cfg.Hyperparameters(),
		TrainChannel:    trainChannel,
		TestChannel:     testChannel,
	})
	if err != nil {
		return nil, err
	}

	job := &TrainingJob{Raw: body}
	// Best effort: surface a job id if the response carries one.
	_ = json.Unmarshal(body, job)
	return job, nil
}

// Predict posts an inference request and returns the raw per-instance
// forecast distributions for display.
func (c *Client) Predict(ctx context.Context, req InferenceRequest) (json.RawMessage, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid inference request: %w", err)
	}
	return c.post(ctx, "/invocations", req)
}

func (c *Client) post(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("POST %s: %w", path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet := respBody
		if len(snippet) > 512 {
			snippet = snippet[:512]
		}
		return nil, fmt.Errorf("POST %s: %s: %s", path, resp.Status, snippet)
	}
	return respBody, nil
}
