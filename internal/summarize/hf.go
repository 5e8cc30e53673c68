package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultHFModel is the summarization model used when none is configured.
const DefaultHFModel = "sshleifer/distilbart-cnn-12-6"

// HFClient calls the Hugging Face Inference API summarization task.
type HFClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewHFClient(apiKey, model string) *HFClient {
	if model == "" {
		model = DefaultHFModel
	}
	return &HFClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: "https://api-inference.huggingface.co",
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type hfParameters struct {
	MinLength int  `json:"min_length"`
	MaxLength int  `json:"max_length"`
	DoSample  bool `json:"do_sample"`
}

type hfOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
	Options    hfOptions    `json:"options"`
}

type hfResult struct {
	SummaryText string `json:"summary_text"`
}

type hfError struct {
	Error string `json:"error"`
}

// Summarize runs one inference call and returns the best summary. Failures
// are terminal for the run; there is no retry.
func (c *HFClient) Summarize(ctx context.Context, text string, opts Options) (string, error) {
	reqBody := hfRequest{
		Inputs: text,
		Parameters: hfParameters{
			MinLength: opts.MinLength,
			MaxLength: opts.MaxLength,
			DoSample:  opts.Sample,
		},
		Options: hfOptions{WaitForModel: true},
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := c.baseURL + "/models/" + c.model
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("inference api: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr hfError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
			return "", fmt.Errorf("inference api status %d: %s", resp.StatusCode, apiErr.Error)
		}
		return "", fmt.Errorf("inference api status %d: %s", resp.StatusCode, truncate(string(respBody), 200))
	}

	var results []hfResult
	if err := json.Unmarshal(respBody, &results); err != nil {
		return "", fmt.Errorf("decode response: %w (raw: %s)", err, truncate(string(respBody), 200))
	}
	if len(results) == 0 {
		return "", fmt.Errorf("empty response from inference api")
	}

	return results[0].SummaryText, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Close releases resources.
func (c *HFClient) Close() {
	c.httpClient.CloseIdleConnections()
}
