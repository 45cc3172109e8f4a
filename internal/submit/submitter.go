// internal/submit/submitter.go
package submit

import (
	"context"
	"encoding/json"
	"io"
	"time"

	apperrors "agent-intake/internal/common/errors"
	commonhttp "agent-intake/internal/common/http"
	"agent-intake/internal/common/logger"
	"agent-intake/internal/form"
)

// Submitter performs the one-shot remote registration for a validated
// application, or simulates it in mock mode.
type Submitter struct {
	cfg    Config
	client *commonhttp.Client
	logger logger.Logger
}

func NewSubmitter(cfg Config, log logger.Logger) *Submitter {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.MockDelay == 0 {
		cfg.MockDelay = DefaultMockDelay
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Submitter{
		cfg:    cfg,
		client: commonhttp.NewClient(cfg.Timeout),
		logger: log,
	}
}

// Submit sends the application to the backend. The caller guarantees the
// state has already passed validation. On failure the returned error is a
// *errors.StandardError whose Message is safe to surface as the general
// error; transport detail stays in Details.
func (s *Submitter) Submit(ctx context.Context, state *form.State) error {
	if s.cfg.Mock {
		return s.submitMock(ctx)
	}
	return s.submitReal(ctx, state)
}

func (s *Submitter) submitMock(ctx context.Context) error {
	s.logger.Info("mock submission, skipping network", map[string]interface{}{
		"delay": s.cfg.MockDelay.String(),
	})
	select {
	case <-time.After(s.cfg.MockDelay):
		return nil
	case <-ctx.Done():
		return apperrors.NewSubmissionFailedError(ctx.Err())
	}
}

func (s *Submitter) submitReal(ctx context.Context, state *form.State) error {
	body, contentType, err := BuildPayload(state)
	if err != nil {
		return apperrors.NewSubmissionFailedError(err)
	}

	url := s.cfg.BaseURL + s.cfg.Endpoint
	s.logger.Info("submitting application", map[string]interface{}{
		"url":       url,
		"bodyBytes": len(body),
	})

	resp, err := s.client.Post(ctx, url, contentType, body)
	if err != nil {
		s.logger.Error("submission transport failure", map[string]interface{}{
			"error": err.Error(),
		})
		return apperrors.NewSubmissionFailedError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		// Body is ignored on success.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	message := parseServerMessage(resp.Body)
	s.logger.Warn("submission rejected", map[string]interface{}{
		"statusCode": resp.StatusCode,
		"message":    message,
	})
	return apperrors.NewSubmissionRejectedError(message, resp.StatusCode)
}

// parseServerMessage extracts the optional JSON message field from an error
// body. Any parse failure falls back to the empty string, which the error
// constructor replaces with the generic failure message.
func parseServerMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 1<<20))
	if err != nil {
		return ""
	}
	var se serverError
	if err := json.Unmarshal(data, &se); err != nil {
		return ""
	}
	return se.Message
}
