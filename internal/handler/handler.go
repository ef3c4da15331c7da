package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/user/moviescraper/internal/config"
	"github.com/user/moviescraper/internal/model"
	"github.com/user/moviescraper/internal/service"
)

// MovieSearcher 电影搜索服务
type MovieSearcher interface {
	SearchMovie(ctx context.Context, title string, year int) ([]model.Movie, error)
	GetMovies() []model.Movie
	GetSearchHistory() []model.SearchHistoryEntry
}

// Handler HTTP 处理器
type Handler struct {
	Scraper MovieSearcher
	Config  *config.Config
}

// NewHandler 创建处理器
func NewHandler(scraper MovieSearcher, cfg *config.Config) *Handler {
	return &Handler{
		Scraper: scraper,
		Config:  cfg,
	}
}

// SearchRequest 搜索参数，year 为 0 表示不限年份
type SearchRequest struct {
	Title string `form:"title" binding:"required"`
	Year  int    `form:"year" binding:"omitempty,min=1870,max=2100"`
}

// RenderData 统一封装公共渲染数据
func (h *Handler) RenderData(c *gin.Context, data gin.H) gin.H {
	res := gin.H{
		"SiteName": h.Config.SiteName,
		"Path":     c.Request.URL.Path,
	}
	for k, v := range data {
		res[k] = v
	}
	return res
}

// bindingMessage 将参数校验错误转为可读提示
func bindingMessage(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return "参数格式错误"
	}

	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s 不能为空", strings.ToLower(fe.Field())))
		case "min", "max":
			msgs = append(msgs, fmt.Sprintf("%s 必须在 1870 到 2100 之间", strings.ToLower(fe.Field())))
		default:
			msgs = append(msgs, fmt.Sprintf("%s 无效", strings.ToLower(fe.Field())))
		}
	}
	return strings.Join(msgs, "; ")
}

// searchErrorStatus 搜索错误对应的 HTTP 状态码
func searchErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrEmptyTitle):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrGateway):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
