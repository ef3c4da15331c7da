package utils

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripMarkup 去除搜索摘要中的 HTML 标签（如 <strong> 高亮）并解码实体
// 保留原有换行，演员表按行解析依赖换行
func StripMarkup(s string) string {
	if s == "" {
		return ""
	}
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(doc.Text())
}
