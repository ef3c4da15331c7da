package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/user/moviescraper/internal/metrics"
	"github.com/user/moviescraper/internal/model"
	"github.com/user/moviescraper/internal/repository"
	"golang.org/x/sync/errgroup"
)

// ErrEmptyTitle 搜索标题为空
var ErrEmptyTitle = errors.New("movie title is required")

// MovieScraper 电影搜索编排：主搜索 -> 并发提取 + 演员表 -> 写入仓库
type MovieScraper struct {
	gateway         SearchGateway
	extractor       *Extractor
	cast            *CastResolver
	store           *repository.MovieStore
	limit           int
	castErrorsFatal bool
	now             func() time.Time
}

// ScraperOption 编排器可选配置
type ScraperOption func(*MovieScraper)

// WithResultLimit 每次搜索请求的结果数
func WithResultLimit(limit int) ScraperOption {
	return func(s *MovieScraper) {
		if limit > 0 {
			s.limit = limit
		}
	}
}

// WithCastErrorsFatal 演员表查询失败时是否让整批搜索失败
// 默认 false：失败时记录日志并退回到描述中的简易演员表
func WithCastErrorsFatal(fatal bool) ScraperOption {
	return func(s *MovieScraper) {
		s.castErrorsFatal = fatal
	}
}

// WithExtractor 替换字段提取策略
func WithExtractor(e *Extractor) ScraperOption {
	return func(s *MovieScraper) {
		if e != nil {
			s.extractor = e
		}
	}
}

// WithClock 替换时间源
func WithClock(now func() time.Time) ScraperOption {
	return func(s *MovieScraper) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMovieScraper 创建电影搜索服务
func NewMovieScraper(gateway SearchGateway, store *repository.MovieStore, opts ...ScraperOption) *MovieScraper {
	s := &MovieScraper{
		gateway:   gateway,
		extractor: DefaultExtractor(),
		store:     store,
		limit:     5,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.cast = NewCastResolver(gateway, s.limit)
	return s
}

// BuildQuery 构造限定 IMDb 的搜索语句，year 为 0 时不附加年份
func BuildQuery(title string, year int) string {
	if year > 0 {
		return fmt.Sprintf(`site:imdb.com movie "%s" %d`, title, year)
	}
	return fmt.Sprintf(`site:imdb.com movie "%s"`, title)
}

// SearchMovie 搜索电影
// 1. 主搜索失败直接返回错误，不写历史和仓库
// 2. 每条结果并发提取并查询演员表，完成即写入仓库
// 3. 返回顺序与主搜索结果顺序一致，丢弃无法识别的结果
func (s *MovieScraper) SearchMovie(ctx context.Context, title string, year int) ([]model.Movie, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	query := BuildQuery(title, year)
	results, err := observedSearch(ctx, s.gateway, "primary", query, s.limit)
	if err != nil {
		log.Printf("[MovieScraper] 电影搜索失败: %v", err)
		return nil, fmt.Errorf("movie search failed: %w", err)
	}

	s.store.RecordQuery(query, len(results))

	extracted := make([]*model.Movie, len(results))
	var g errgroup.Group
	for i, raw := range results {
		g.Go(func() error {
			movie, err := s.processResult(ctx, raw)
			if err != nil {
				return err
			}
			if movie == nil {
				return nil
			}
			s.store.Upsert(*movie)
			extracted[i] = movie
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("[MovieScraper] 电影搜索失败: %v", err)
		return nil, fmt.Errorf("movie search failed: %w", err)
	}

	movies := make([]model.Movie, 0, len(results))
	for _, m := range extracted {
		if m != nil {
			movies = append(movies, *m)
		}
	}

	log.Printf("[MovieScraper] 搜索完成: %s, 返回 %d 条结果, 识别 %d 部电影", query, len(results), len(movies))
	return movies, nil
}

// processResult 提取单条结果并补全演员表，非电影结果返回 nil
func (s *MovieScraper) processResult(ctx context.Context, raw model.RawResult) (*model.Movie, error) {
	movie, ok := s.extractor.Extract(raw)
	if !ok {
		metrics.ExtractionsTotal.WithLabelValues("discarded").Inc()
		return nil, nil
	}
	metrics.ExtractionsTotal.WithLabelValues("extracted").Inc()

	cast, err := s.cast.Resolve(ctx, movie.ID)
	if err != nil {
		if s.castErrorsFatal {
			return nil, err
		}
		log.Printf("[MovieScraper] 演员表查询失败，使用简易演员表 (ID: %s): %v", movie.ID, err)
		cast = nil
	}

	source := "fullcredits"
	if len(cast) == 0 {
		cast = BasicCast(movie.Description)
		source = "basic"
		if len(cast) == 0 {
			source = "none"
		}
	}
	metrics.CastSourceTotal.WithLabelValues(source).Inc()

	movie.Cast = cast
	movie.LastUpdated = s.now()
	return &movie, nil
}

// GetMovies 返回仓库中全部电影
func (s *MovieScraper) GetMovies() []model.Movie {
	return s.store.All()
}

// GetSearchHistory 返回搜索历史
func (s *MovieScraper) GetSearchHistory() []model.SearchHistoryEntry {
	return s.store.History()
}
