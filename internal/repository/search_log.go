package repository

import (
	"github.com/user/moviescraper/internal/model"
)

// RecordQuery 记录一次搜索
func (s *MovieStore) RecordQuery(query string, resultsCount int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, model.SearchHistoryEntry{
		Query:        query,
		Timestamp:    s.now(),
		ResultsCount: resultsCount,
	})
}

// History 返回全部搜索历史（副本），按记录顺序
func (s *MovieStore) History() []model.SearchHistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.SearchHistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}
