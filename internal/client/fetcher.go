package client

import (
	"context"
	"errors"
	"sync"

	"github.com/2beens/trainlog/internal/analytics"
)

// ErrSuperseded is returned by a fetch that was cancelled because a newer
// one started.
var ErrSuperseded = errors.New("analytics fetch superseded")

//go:generate mockgen -source=$GOFILE -destination=fetcher_mocks_test.go -package=client_test

type analyticsSource interface {
	Completion(ctx context.Context, f Filters) (*analytics.CompletionAnalyticsResponse, error)
	Progression(ctx context.Context, f Filters) (*analytics.ProgressionAnalyticsResponse, error)
	Heatmap(ctx context.Context, f Filters) (*analytics.HeatmapAnalyticsResponse, error)
}

// Analytics is one complete analytics view for a set of filters.
type Analytics struct {
	Filters     Filters
	Completion  *analytics.CompletionAnalyticsResponse
	Progression *analytics.ProgressionAnalyticsResponse
	Heatmap     *analytics.HeatmapAnalyticsResponse
}

// AnalyticsFetcher keeps at most one analytics fetch in flight. Starting a
// fetch cancels the previous one, so results for stale filters are never
// returned.
type AnalyticsFetcher struct {
	source analyticsSource

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

func NewAnalyticsFetcher(source analyticsSource) *AnalyticsFetcher {
	return &AnalyticsFetcher{
		source: source,
	}
}

func (f *AnalyticsFetcher) begin(ctx context.Context) (context.Context, uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cancel != nil {
		f.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	f.seq++
	f.cancel = cancel
	return ctx, f.seq
}

func (f *AnalyticsFetcher) end(seq uint64) (current bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if seq != f.seq {
		return false
	}
	f.cancel()
	f.cancel = nil
	return true
}

// Fetch loads completion, progression and heatmap for filters, in that
// order. It returns ErrSuperseded when another Fetch started meanwhile.
func (f *AnalyticsFetcher) Fetch(ctx context.Context, filters Filters) (*Analytics, error) {
	fetchCtx, seq := f.begin(ctx)
	result, err := f.fetch(fetchCtx, filters)
	if !f.end(seq) {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (f *AnalyticsFetcher) fetch(ctx context.Context, filters Filters) (*Analytics, error) {
	completion, err := f.source.Completion(ctx, filters)
	if err != nil {
		return nil, err
	}
	progression, err := f.source.Progression(ctx, filters)
	if err != nil {
		return nil, err
	}
	heatmap, err := f.source.Heatmap(ctx, filters)
	if err != nil {
		return nil, err
	}
	return &Analytics{
		Filters:     filters,
		Completion:  completion,
		Progression: progression,
		Heatmap:     heatmap,
	}, nil
}

// Cancel stops the in-flight fetch, if any.
func (f *AnalyticsFetcher) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.seq++
}
