package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/2beens/trainlog/internal/analytics"
	"github.com/2beens/trainlog/internal/telemetry/tracing"
)

// Filters select the analytics range. Empty dates fall back to the backend
// defaults.
type Filters struct {
	StartDate  string
	EndDate    string
	GoalID     *int
	ExerciseID *int
}

func (f Filters) query() url.Values {
	query := url.Values{}
	if f.StartDate != "" {
		query.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		query.Set("end_date", f.EndDate)
	}
	if f.GoalID != nil {
		query.Set("goal_id", strconv.Itoa(*f.GoalID))
	}
	if f.ExerciseID != nil {
		query.Set("exercise_id", strconv.Itoa(*f.ExerciseID))
	}
	return query
}

func (c *Client) Completion(ctx context.Context, f Filters) (resp *analytics.CompletionAnalyticsResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "client.analytics.completion")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	resp = &analytics.CompletionAnalyticsResponse{}
	if err := c.do(ctx, http.MethodGet, "/api/analytics/completion", f.query(), nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) Progression(ctx context.Context, f Filters) (resp *analytics.ProgressionAnalyticsResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "client.analytics.progression")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	resp = &analytics.ProgressionAnalyticsResponse{}
	if err := c.do(ctx, http.MethodGet, "/api/analytics/progression", f.query(), nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) Heatmap(ctx context.Context, f Filters) (resp *analytics.HeatmapAnalyticsResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "client.analytics.heatmap")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	resp = &analytics.HeatmapAnalyticsResponse{}
	if err := c.do(ctx, http.MethodGet, "/api/analytics/heatmap", f.query(), nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
