package repository

import (
	"sync"
	"time"

	"github.com/user/moviescraper/internal/metrics"
	"github.com/user/moviescraper/internal/model"
)

// MovieStore 内存中的电影集合与搜索历史
// 同一非空 ID 最多保留一条记录，后写入者原位替换；空 ID 始终追加
type MovieStore struct {
	mu      sync.RWMutex
	movies  []model.Movie
	index   map[string]int // ID -> movies 下标
	history []model.SearchHistoryEntry
	now     func() time.Time
}

// NewMovieStore 创建电影仓库
func NewMovieStore() *MovieStore {
	return &MovieStore{
		index: make(map[string]int),
		now:   time.Now,
	}
}

// Upsert 按 ID 插入或原位替换电影
func (s *MovieStore) Upsert(movie model.Movie) {
	movie = cloneMovie(movie)

	s.mu.Lock()
	defer s.mu.Unlock()

	if movie.HasID() {
		if i, ok := s.index[movie.ID]; ok {
			s.movies[i] = movie
			return
		}
		s.index[movie.ID] = len(s.movies)
	}
	s.movies = append(s.movies, movie)
	metrics.StoredMovies.Set(float64(len(s.movies)))
}

// All 返回全部电影（副本）
func (s *MovieStore) All() []model.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Movie, len(s.movies))
	for i, m := range s.movies {
		out[i] = cloneMovie(m)
	}
	return out
}

// cloneMovie 复制切片字段，避免调用方与仓库共享底层数组
func cloneMovie(m model.Movie) model.Movie {
	if m.Genres != nil {
		m.Genres = append([]string{}, m.Genres...)
	}
	if m.Cast != nil {
		m.Cast = append([]model.CastEntry{}, m.Cast...)
	}
	if m.Rating != nil {
		r := *m.Rating
		m.Rating = &r
	}
	return m
}

// Len 当前电影数量
func (s *MovieStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.movies)
}
