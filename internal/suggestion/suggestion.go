package suggestion

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// ErrNotConfigured is returned when no form endpoint was set.
var ErrNotConfigured = errors.New("suggestion endpoint not configured")

// ErrRejected is a non-success response from the form endpoint.
var ErrRejected = errors.New("suggestion rejected")

type Suggestion struct {
	Name    string
	Email   string
	Message string
}

type Sender struct {
	endpoint string
	http     *http.Client
}

func NewSender(endpoint string, timeout time.Duration) *Sender {
	return &Sender{endpoint: endpoint, http: &http.Client{Timeout: timeout}}
}

func (s *Sender) Enabled() bool {
	return s.endpoint != ""
}

// Submit posts the suggestion as multipart form data. Transport failures
// are returned as-is; a non-2xx response wraps ErrRejected.
func (s *Sender) Submit(ctx context.Context, sg Suggestion) error {
	if !s.Enabled() {
		return ErrNotConfigured
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	for _, field := range []struct{ name, value string }{
		{"name", sg.Name},
		{"email", sg.Email},
		{"message", sg.Message},
	} {
		if err := form.WriteField(field.name, field.value); err != nil {
			return fmt.Errorf("failed to encode form: %w", err)
		}
	}
	if err := form.Close(); err != nil {
		return fmt.Errorf("failed to encode form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, &body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send suggestion: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	}
	return nil
}
