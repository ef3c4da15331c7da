package service

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/user/moviescraper/internal/model"
)

// FieldExtractor 单一字段的提取策略
// 返回 false 表示该结果不是电影，整条丢弃
type FieldExtractor interface {
	Extract(raw model.RawResult, movie *model.Movie) bool
}

// TitleYearExtractor 标题与年份（必需）："Inception (2010) ..."
type TitleYearExtractor struct{}

var titleYearPattern = regexp.MustCompile(`^(.*?)\((\d{4})\)`)

func (TitleYearExtractor) Extract(raw model.RawResult, movie *model.Movie) bool {
	match := titleYearPattern.FindStringSubmatch(raw.Title)
	if len(match) < 3 {
		return false
	}
	year, err := strconv.Atoi(match[2])
	if err != nil {
		return false
	}
	movie.Title = strings.TrimSpace(match[1])
	movie.Year = year
	return true
}

// RatingExtractor 评分：标题中 "⭐ 8.8"
type RatingExtractor struct{}

var ratingPattern = regexp.MustCompile(`⭐\x{FE0F}?\s*([0-9.]+)`)

func (RatingExtractor) Extract(raw model.RawResult, movie *model.Movie) bool {
	if match := ratingPattern.FindStringSubmatch(raw.Title); len(match) > 1 {
		movie.Rating = parseLeadingFloat(match[1])
	}
	return true
}

// GenreExtractor 类型：标题末尾 "| Action, Sci-Fi"
type GenreExtractor struct{}

var genrePattern = regexp.MustCompile(`\|(.*?)$`)

func (GenreExtractor) Extract(raw model.RawResult, movie *model.Movie) bool {
	if match := genrePattern.FindStringSubmatch(raw.Title); len(match) > 1 {
		for _, g := range strings.Split(match[1], ",") {
			movie.Genres = append(movie.Genres, strings.TrimSpace(g))
		}
	}
	return true
}

// DirectorExtractor 导演：描述中 "Directed by X."
type DirectorExtractor struct{}

var directorPattern = regexp.MustCompile(`Directed by ([^.]+)`)

func (DirectorExtractor) Extract(raw model.RawResult, movie *model.Movie) bool {
	if match := directorPattern.FindStringSubmatch(raw.Description); len(match) > 1 {
		movie.Director = strings.TrimSpace(match[1])
	}
	return true
}

// IMDbIDExtractor 从链接 ".../title/tt1375666/" 中提取 ID
type IMDbIDExtractor struct{}

var imdbIDPattern = regexp.MustCompile(`title/(tt\d+)`)

func (IMDbIDExtractor) Extract(raw model.RawResult, movie *model.Movie) bool {
	if match := imdbIDPattern.FindStringSubmatch(raw.URL); len(match) > 1 {
		movie.ID = match[1]
	}
	return true
}

// Extractor 按顺序执行各字段提取策略
type Extractor struct {
	fields []FieldExtractor
}

// NewExtractor 使用指定策略创建提取器
func NewExtractor(fields ...FieldExtractor) *Extractor {
	return &Extractor{fields: fields}
}

// DefaultExtractor IMDb 搜索摘要的默认提取器
func DefaultExtractor() *Extractor {
	return NewExtractor(
		TitleYearExtractor{},
		RatingExtractor{},
		GenreExtractor{},
		DirectorExtractor{},
		IMDbIDExtractor{},
	)
}

// Extract 将一条搜索结果解析为电影骨架（演员表稍后填充）
func (e *Extractor) Extract(raw model.RawResult) (model.Movie, bool) {
	movie := model.Movie{
		Genres:      []string{},
		Cast:        []model.CastEntry{},
		URL:         raw.URL,
		Description: raw.Description,
	}
	for _, field := range e.fields {
		if !field.Extract(raw, &movie) {
			return model.Movie{}, false
		}
	}
	return movie, true
}

var (
	basicCastPattern = regexp.MustCompile(`With ([^.]+)`)
	andWordPattern   = regexp.MustCompile(`\band\b`)
)

// BasicCast 从描述中的 "With A, B and C." 解析简易演员表，无角色信息
func BasicCast(description string) []model.CastEntry {
	match := basicCastPattern.FindStringSubmatch(description)
	if len(match) < 2 {
		return []model.CastEntry{}
	}

	cast := []model.CastEntry{}
	for _, name := range strings.Split(match[1], ",") {
		// 只去掉第一个独立的 "and"
		if loc := andWordPattern.FindStringIndex(name); loc != nil {
			name = name[:loc[0]] + name[loc[1]:]
		}
		name = strings.Join(strings.Fields(name), " ")
		if name == "" {
			continue
		}
		cast = append(cast, model.CastEntry{Actor: name})
	}
	return cast
}

// parseLeadingFloat 解析 "8.8." 这类带尾随点的数字，无有效数字时返回 nil
func parseLeadingFloat(s string) *float64 {
	if first := strings.Index(s, "."); first >= 0 {
		if second := strings.Index(s[first+1:], "."); second >= 0 {
			s = s[:first+1+second]
		}
	}
	s = strings.TrimSuffix(s, ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
