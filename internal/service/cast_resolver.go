package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/user/moviescraper/internal/model"
	"golang.org/x/sync/singleflight"
)

const fullCreditsMarker = "/fullcredits"

var castLinePattern = regexp.MustCompile(`(?i)(.*?)\s+as\s+(.*?)(?:\.|$)`)

// CastResolver 通过二次搜索 IMDb 演职员表页获取演员与角色
type CastResolver struct {
	gateway SearchGateway
	limit   int
	sf      singleflight.Group // 合并同一电影的并发查询
}

// NewCastResolver 创建演员表解析器
func NewCastResolver(gateway SearchGateway, limit int) *CastResolver {
	if limit <= 0 {
		limit = 5
	}
	return &CastResolver{
		gateway: gateway,
		limit:   limit,
	}
}

// CastQuery 演员表二次搜索语句
func CastQuery(movieID string) string {
	return fmt.Sprintf("site:imdb.com %s cast", movieID)
}

// Resolve 查询并解析演员表，movieID 为空时直接返回空列表
func (r *CastResolver) Resolve(ctx context.Context, movieID string) ([]model.CastEntry, error) {
	if movieID == "" {
		return []model.CastEntry{}, nil
	}

	// 共享查询与发起者的取消解耦，每个调用方只受自己的 ctx 约束，超时由 HTTP 客户端控制
	detached := context.WithoutCancel(ctx)
	ch := r.sf.DoChan(movieID, func() (interface{}, error) {
		results, err := observedSearch(detached, r.gateway, "cast", CastQuery(movieID), r.limit)
		if err != nil {
			return nil, err
		}
		return ParseCastResults(results), nil
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return nil, fmt.Errorf("cast search for %s: %w", movieID, ctx.Err())
	}
	if res.Err != nil {
		return nil, fmt.Errorf("cast search for %s: %w", movieID, res.Err)
	}

	shared := res.Val.([]model.CastEntry)
	cast := make([]model.CastEntry, len(shared))
	copy(cast, shared)
	return cast, nil
}

// ParseCastResults 解析演职员表页的搜索摘要
// 每行 "演员 as 角色"，Order 在每条结果内从 1 重新计数
func ParseCastResults(results []model.RawResult) []model.CastEntry {
	cast := []model.CastEntry{}
	for _, result := range results {
		if !strings.Contains(result.URL, fullCreditsMarker) {
			continue
		}

		order := 0
		for _, line := range strings.Split(result.Description, "\n") {
			match := castLinePattern.FindStringSubmatch(line)
			if len(match) < 3 {
				continue
			}
			order++
			cast = append(cast, model.CastEntry{
				Actor:     strings.TrimSpace(match[1]),
				Character: strings.TrimSpace(match[2]),
				Order:     order,
			})
		}
	}
	return cast
}
