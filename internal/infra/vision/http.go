package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultHTTPTimeout = 60 * time.Second

// maxResponseBytes bounds how much of a provider response is read.
const maxResponseBytes = 8 << 20

// errUnexpectedStatus marks a non-2xx answer from a provider endpoint.
var errUnexpectedStatus = errors.New("unexpected provider status")

// sendJSON posts body as JSON to url and returns the raw response body.
// A non-2xx status is returned as an error together with the body.
func sendJSON(ctx context.Context, client *http.Client, url string, body any, headers map[string]string, logger *slog.Logger) ([]byte, int, error) {
	if client == nil {
		client = newHTTPClient()
	}

	reqID := uuid.New().String()
	start := time.Now()

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, 0, errors.Wrap(err, "encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	logger.Debug("vision.http.request", slog.String("req_id", reqID), slog.String("url", url), slog.Int("content_length", len(payload)))

	resp, err := client.Do(req)
	if err != nil {
		logger.Warn("vision.http.send_error",
			slog.String("req_id", reqID),
			slog.Any("error", err),
			slog.Int64("elapsed_ms", time.Since(start).Milliseconds()),
		)

		return nil, 0, errors.Wrap(err, "send request")
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Warn("vision.http.response_body_close_error", slog.String("req_id", reqID), slog.Any("error", closeErr))
		}
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, resp.StatusCode, errors.Wrap(err, "read response")
	}

	logger.Debug("vision.http.response",
		slog.String("req_id", reqID),
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(raw)),
		slog.Int64("elapsed_ms", time.Since(start).Milliseconds()),
	)

	if resp.StatusCode/100 != 2 {
		return raw, resp.StatusCode, errors.Wrapf(errUnexpectedStatus, "status %d", resp.StatusCode)
	}

	return raw, resp.StatusCode, nil
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: defaultHTTPTimeout}
}
