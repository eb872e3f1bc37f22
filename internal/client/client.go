package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/numbertheory/internal/infrastructure/logging"
	"github.com/GriffinCanCode/numbertheory/internal/shared/types"
)

var (
	// ErrUnknownTool is returned when the server does not know the tool
	ErrUnknownTool = errors.New("unknown tool")
	// ErrNoResult is returned when /calculations has nothing for the request
	ErrNoResult = errors.New("no result")
)

// codec decodes integers as int64 so results keep exact values
var codec = sonic.Config{UseInt64: true, EscapeHTML: true}.Froze()

// Config defines client behavior
type Config struct {
	BaseURL      string
	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	UserAgent    string
	Logger       *logging.Logger
}

// DefaultConfig returns client defaults for baseURL
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:      baseURL,
		Timeout:      10 * time.Second,
		RetryMax:     3,
		RetryWaitMin: 200 * time.Millisecond,
		RetryWaitMax: 2 * time.Second,
		UserAgent:    "ntp-cli/1.0",
	}
}

// Client talks to a running number theory server
type Client struct {
	resty *resty.Client
}

// New creates a client whose transport retries connection errors and 5xx
// responses with exponential backoff
func New(cfg Config) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryMax
	retryClient.RetryWaitMin = cfg.RetryWaitMin
	retryClient.RetryWaitMax = cfg.RetryWaitMax
	retryClient.Logger = nil
	if cfg.Logger != nil {
		retryClient.Logger = leveledLogger{s: cfg.Logger.Sugar()}
	}

	restyClient := resty.NewWithClient(retryClient.StandardClient()).
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "application/json")
	restyClient.JSONMarshal = codec.Marshal
	restyClient.JSONUnmarshal = codec.Unmarshal

	return &Client{resty: restyClient}
}

// Execute runs a tool on the server. A rejected input comes back as a
// failed Result with a nil error.
func (c *Client) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	req := c.resty.R().
		SetContext(ctx).
		SetBody(types.ExecuteRequest{ToolID: toolID, Params: params})
	if appCtx != nil && appCtx.RequestID != nil {
		req.SetHeader("X-Request-ID", *appCtx.RequestID)
	}

	resp, err := req.Post("/services/execute")
	if err != nil {
		return nil, fmt.Errorf("execute %s: %w", toolID, err)
	}

	switch resp.StatusCode() {
	case http.StatusOK, http.StatusBadRequest:
		var result types.Result
		if err := codec.Unmarshal(resp.Body(), &result); err != nil {
			return nil, fmt.Errorf("decode %s response: %w", toolID, err)
		}
		return &result, nil
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, toolID)
	default:
		return nil, fmt.Errorf("execute %s: server returned %d: %s", toolID, resp.StatusCode(), errorMessage(resp))
	}
}

// Calculate calls GET /calculations for section with one or two numbers
func (c *Client) Calculate(ctx context.Context, section string, numbers []int64, explain bool) (map[string]interface{}, error) {
	req := c.resty.R().
		SetContext(ctx).
		SetQueryParam("section", section).
		SetQueryParam("explain", strconv.FormatBool(explain))

	switch len(numbers) {
	case 1:
		req.SetQueryParam("number", strconv.FormatInt(numbers[0], 10))
	case 2:
		req.SetQueryParam("firstNumber", strconv.FormatInt(numbers[0], 10))
		req.SetQueryParam("secondNumber", strconv.FormatInt(numbers[1], 10))
	default:
		return nil, fmt.Errorf("section %s: expected one or two numbers, got %d", section, len(numbers))
	}

	resp, err := req.Get("/calculations")
	if err != nil {
		return nil, fmt.Errorf("calculate %s: %w", section, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s: %s", ErrNoResult, section, errorMessage(resp))
	}
	if resp.IsError() {
		return nil, fmt.Errorf("calculate %s: server returned %d", section, resp.StatusCode())
	}

	var data map[string]interface{}
	if err := codec.Unmarshal(resp.Body(), &data); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", section, err)
	}
	return data, nil
}

// Health checks that the server is up
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.resty.R().SetContext(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("health check: server returned %d", resp.StatusCode())
	}
	return nil
}

func errorMessage(resp *resty.Response) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := codec.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		return body.Error
	}
	return http.StatusText(resp.StatusCode())
}

// leveledLogger adapts zap to retryablehttp's LeveledLogger
type leveledLogger struct {
	s *zap.SugaredLogger
}

func (l leveledLogger) Error(msg string, kv ...interface{}) { l.s.Errorw(msg, kv...) }
func (l leveledLogger) Info(msg string, kv ...interface{})  { l.s.Infow(msg, kv...) }
func (l leveledLogger) Debug(msg string, kv ...interface{}) { l.s.Debugw(msg, kv...) }
func (l leveledLogger) Warn(msg string, kv ...interface{})  { l.s.Warnw(msg, kv...) }
