package model

import (
	"time"
)

// RawResult 搜索引擎返回的单条网页结果
type RawResult struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CastEntry 演员及其饰演角色
// Order 为单次解析中的分配顺序，并非官方演职员表顺序
type CastEntry struct {
	Actor     string `json:"actor"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

// Movie 从搜索结果中提取的电影信息
type Movie struct {
	ID          string      `json:"id,omitempty"` // IMDb 标题 ID (tt...)，为空时不参与去重
	Title       string      `json:"title"`
	Year        int         `json:"year"`
	Rating      *float64    `json:"rating"`
	Genres      []string    `json:"genres"`
	Director    string      `json:"director"`
	Cast        []CastEntry `json:"cast"`
	URL         string      `json:"url"`
	Description string      `json:"description"`
	LastUpdated time.Time   `json:"last_updated"`
}

// HasID 是否带有可用于去重的标识
func (m *Movie) HasID() bool {
	return m.ID != ""
}

// SearchHistoryEntry 搜索历史
type SearchHistoryEntry struct {
	Query        string    `json:"query"`
	Timestamp    time.Time `json:"timestamp"`
	ResultsCount int       `json:"results_count"`
}
