package service

import (
	"context"
	"sync"
	"time"

	"github.com/user/moviescraper/internal/model"
)

// fakeGateway 按查询语句返回预置结果
type fakeGateway struct {
	mu        sync.Mutex
	responses map[string][]model.RawResult
	errs      map[string]error
	delays    map[string]time.Duration
	queries   []string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		responses: map[string][]model.RawResult{},
		errs:      map[string]error{},
		delays:    map[string]time.Duration{},
	}
}

func (f *fakeGateway) Search(ctx context.Context, query string, limit int) ([]model.RawResult, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	delay := f.delays[query]
	err := f.errs[query]
	results := f.responses[query]
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (f *fakeGateway) seen() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.queries))
	copy(out, f.queries)
	return out
}
