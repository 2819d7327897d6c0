package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/trainlog/internal/middleware"
	"github.com/2beens/trainlog/internal/telemetry/tracing"
	"github.com/2beens/trainlog/internal/trainlog"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

const (
	Version        = "0.3.0"
	defaultTimeout = 15 * time.Second
)

// StatusError is returned for any non 2xx answer of the backend.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Code, e.Body)
}

// Client talks to the trainlog backend. It implements the sync queue's
// transport and fetches analytics.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *http.Client
}

// NewClient builds a client on a traced http transport. A nil httpClient
// gets the default one.
func NewClient(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		userAgent:  "trainlog-logsync/" + Version,
		httpClient: httpClient,
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set(middleware.TokenHeader, c.token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Tracef("client: %s %s", method, endpoint)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			Method: method,
			Path:   path,
			Code:   resp.StatusCode,
			Body:   strings.TrimSpace(string(respBytes)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBytes, out); err != nil {
		return fmt.Errorf("unmarshal %s response: %w", path, err)
	}
	return nil
}

func (c *Client) UpsertLog(ctx context.Context, toggle trainlog.ToggleLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "client.logs.upsert")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("goal_id", toggle.GoalID), attribute.String("date", toggle.Date))

	return c.do(ctx, http.MethodPost, "/api/logs/toggle", nil, toggle, nil)
}

func (c *Client) DeleteLog(ctx context.Context, goalID int, date string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "client.logs.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("goal_id", goalID), attribute.String("date", date))

	query := url.Values{}
	query.Set("goal_id", strconv.Itoa(goalID))
	query.Set("date", date)
	return c.do(ctx, http.MethodDelete, "/api/logs/toggle", query, nil, nil)
}

func (c *Client) FetchGoalsWithLogs(ctx context.Context, visibleDays int) (goals []trainlog.GoalWithLogs, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "client.logs.fetch")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("days", visibleDays))

	query := url.Values{}
	if visibleDays > 0 {
		query.Set("days", strconv.Itoa(visibleDays))
	}

	var resp trainlog.LogsResponse
	if err := c.do(ctx, http.MethodGet, "/api/logs", query, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Goals == nil {
		resp.Goals = []trainlog.GoalWithLogs{}
	}
	return resp.Goals, nil
}
