package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"hermes/internal/models"

	"golang.org/x/sync/errgroup"
)

// NetworkError is a request that never produced an HTTP response.
type NetworkError struct {
	Dataset models.Dataset
	Err     error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Dataset, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPStatusError is a non-success response. Message carries the service's
// "erro" field when the body had one.
type HTTPStatusError struct {
	Dataset    models.Dataset
	StatusCode int
	Message    string
}

func (e *HTTPStatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: HTTP error %d: %s", e.Dataset, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: HTTP error %d", e.Dataset, e.StatusCode)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Transfers(ctx context.Context) ([]models.TransferRecord, error) {
	var records []models.TransferRecord
	if err := c.get(ctx, models.Transfer, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) Phaseouts(ctx context.Context) ([]models.PhaseoutRecord, error) {
	var records []models.PhaseoutRecord
	if err := c.get(ctx, models.Phaseout, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Datasets is the outcome of the startup fetch. A failed dataset has an
// empty list and its own error; the other one is unaffected.
type Datasets struct {
	Transfers   []models.TransferRecord
	Phaseouts   []models.PhaseoutRecord
	TransferErr error
	PhaseoutErr error
}

// Failed reports whether any dataset failed to load.
func (d Datasets) Failed() bool {
	return d.TransferErr != nil || d.PhaseoutErr != nil
}

// FetchAll loads both datasets concurrently and waits for both.
func (c *Client) FetchAll(ctx context.Context) Datasets {
	var (
		out Datasets
		g   errgroup.Group
	)

	// No shared context: a failed dataset must not cancel the other. Wait
	// only reports the first error; both are kept in out.
	g.Go(func() error {
		out.Transfers, out.TransferErr = c.Transfers(ctx)
		return out.TransferErr
	})
	g.Go(func() error {
		out.Phaseouts, out.PhaseoutErr = c.Phaseouts(ctx)
		return out.PhaseoutErr
	})
	_ = g.Wait()

	if out.Transfers == nil {
		out.Transfers = []models.TransferRecord{}
	}
	if out.Phaseouts == nil {
		out.Phaseouts = []models.PhaseoutRecord{}
	}
	return out
}

func (c *Client) get(ctx context.Context, dataset models.Dataset, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+string(dataset), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Dataset: dataset, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &HTTPStatusError{Dataset: dataset, StatusCode: resp.StatusCode}
		var payload struct {
			Erro string `json:"erro"`
		}
		if body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10)); err == nil {
			if json.Unmarshal(body, &payload) == nil {
				statusErr.Message = payload.Erro
			}
		}
		return statusErr
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &NetworkError{Dataset: dataset, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}
