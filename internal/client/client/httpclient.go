package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/mindanalyzer/internal/client/models"
	"github.com/dmitrijs2005/mindanalyzer/internal/common"
	"github.com/dmitrijs2005/mindanalyzer/internal/logging"
	"github.com/google/uuid"
)

// maxResponseSize caps how much of a response body is read.
const maxResponseSize = 1 << 20

type HTTPClient struct {
	baseURL   *url.URL
	http      *http.Client
	logger    logging.Logger
	requestID func() string
}

// NewHTTPClient builds a client for the backend at serverURL, which must be
// absolute ("http://127.0.0.1:5000"). timeout bounds each call; zero means
// no limit.
func NewHTTPClient(serverURL string, timeout time.Duration, logger logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, serverURL)
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	return &HTTPClient{
		baseURL:   u,
		http:      &http.Client{Timeout: timeout},
		logger:    logger,
		requestID: uuid.NewString,
	}, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, RegisterPath, "", req, &resp); err != nil {
		return nil, err
	}
	if err := validateAuth(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, LoginPath, "", req, &resp); err != nil {
		return nil, err
	}
	if err := validateAuth(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Analyze(ctx context.Context, token string, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	var resp models.AnalysisResult
	if err := c.do(ctx, AnalyzePath, token, req, &resp); err != nil {
		return nil, err
	}
	if err := validateAnalysis(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// do POSTs in as JSON to path and decodes a 2xx body into out. A non-empty
// token is sent as a bearer credential.
func (c *HTTPClient) do(ctx context.Context, path, token string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL.JoinPath(path).String(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	reqID := c.requestID()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, reqID)
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	log := c.logger.With("path", path, "request_id", reqID)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		log.Warn(ctx, "reading response failed", "error", err)
		return fmt.Errorf("%w: read response: %w", ErrUnavailable, err)
	}

	log.Debug(ctx, "request finished", "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newServerError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return nil
}

func validateAuth(resp *models.AuthResponse) error {
	if resp.Token == "" {
		return fmt.Errorf("%w: missing token", ErrInvalidResponse)
	}
	return nil
}

func validateAnalysis(resp *models.AnalysisResult) error {
	if resp.Sentiment == "" {
		return fmt.Errorf("%w: missing sentiment", ErrInvalidResponse)
	}
	score := resp.ConfidenceScore
	if math.IsNaN(score) || score < 0 || score > 1 {
		return fmt.Errorf("%w: confidence_score %v out of [0,1]", ErrInvalidResponse, score)
	}
	if resp.Entities.Emotions == nil {
		resp.Entities.Emotions = []string{}
	}
	if resp.Entities.Skills == nil {
		resp.Entities.Skills = []string{}
	}
	if resp.Distortions == nil {
		resp.Distortions = []string{}
	}
	return nil
}
