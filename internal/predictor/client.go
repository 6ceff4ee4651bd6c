package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"fitstart/internal/domain"
)

const (
	DefaultURL     = "http://localhost:5000/predict"
	DefaultTimeout = 10 * time.Second

	maxResponseBytes = 1 << 20
)

// ErrUnavailable agrupa fallas de red, de status o de parseo. Una etiqueta
// desconocida NO es un error: se devuelve como BodyTypeUnknown.
var ErrUnavailable = errors.New("predictor unavailable")

// Client define la interfaz para clasificar el tipo de cuerpo.
type Client interface {
	Predict(ctx context.Context, req domain.ClassificationRequest) (domain.Classification, error)
}

// HTTPClient implementa Client con un POST JSON al endpoint /predict.
type HTTPClient struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// NewHTTPClient construye el cliente con un timeout acotado; timeout <= 0 usa DefaultTimeout.
func NewHTTPClient(url string, timeout time.Duration, logger *zap.Logger) *HTTPClient {
	if strings.TrimSpace(url) == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPClient{
		url:    strings.TrimSpace(url),
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

func (c *HTTPClient) Predict(ctx context.Context, in domain.ClassificationRequest) (domain.Classification, error) {
	bodyBytes, err := json.Marshal(in)
	if err != nil {
		return domain.Classification{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(bodyBytes))
	if err != nil {
		return domain.Classification{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.Classification{}, fmt.Errorf("%w: do request: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return domain.Classification{}, fmt.Errorf("%w: read response: %w", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("predictor error status",
			zap.Int("status", resp.StatusCode),
			zap.String("body", truncate(string(respBody), 512)),
		)
		return domain.Classification{}, fmt.Errorf("%w: status=%d", ErrUnavailable, resp.StatusCode)
	}

	var pr predictResponse
	if err := json.Unmarshal(respBody, &pr); err != nil {
		return domain.Classification{}, fmt.Errorf("%w: unmarshal response: %w", ErrUnavailable, err)
	}
	if pr.Error != "" {
		return domain.Classification{}, fmt.Errorf("%w: predictor error: %s", ErrUnavailable, pr.Error)
	}

	return domain.Classification{
		BodyType: domain.ParseBodyType(pr.BodyType),
		RawLabel: pr.BodyType,
	}, nil
}

type predictResponse struct {
	BodyType string `json:"body_type"`
	Error    string `json:"error,omitempty"`
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
