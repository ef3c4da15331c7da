package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/moviescraper/internal/utils"
)

// SearchMovies 搜索电影 API
// GET /api/movies/search?title=Inception&year=2010
func (h *Handler) SearchMovies(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.BadRequest(c, bindingMessage(err))
		return
	}

	movies, err := h.Scraper.SearchMovie(c.Request.Context(), req.Title, req.Year)
	if err != nil {
		log.Printf("[API] 电影搜索失败 (title: %s): %v", req.Title, err)
		status := searchErrorStatus(err)
		if status == http.StatusInternalServerError {
			// 内部错误不向调用方暴露细节
			utils.InternalServerError(c, "服务器内部错误")
			return
		}
		utils.Error(c, status, "电影搜索失败: "+err.Error())
		return
	}

	utils.Success(c, movies)
}

// ListMovies 已收录的全部电影
func (h *Handler) ListMovies(c *gin.Context) {
	utils.Success(c, h.Scraper.GetMovies())
}

// SearchHistory 搜索历史
func (h *Handler) SearchHistory(c *gin.Context) {
	utils.Success(c, h.Scraper.GetSearchHistory())
}
