package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Home 首页，展示搜索框和已收录电影
func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "search.html", h.RenderData(c, gin.H{
		"Title":  h.Config.SiteName,
		"Query":  "",
		"Movies": h.Scraper.GetMovies(),
	}))
}

// SearchPage 搜索结果页
func (h *Handler) SearchPage(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		if c.Query("title") == "" {
			c.Redirect(http.StatusFound, "/")
			return
		}
		c.HTML(http.StatusBadRequest, "search.html", h.RenderData(c, gin.H{
			"Title": h.Config.SiteName,
			"Query": c.Query("title"),
			"Error": bindingMessage(err),
		}))
		return
	}

	movies, err := h.Scraper.SearchMovie(c.Request.Context(), req.Title, req.Year)
	data := gin.H{
		"Title":    req.Title + " - " + h.Config.SiteName,
		"Query":    req.Title,
		"Year":     req.Year,
		"Movies":   movies,
		"Searched": true,
	}
	if err != nil {
		data["Error"] = "搜索失败，请稍后重试"
		c.HTML(searchErrorStatus(err), "search.html", h.RenderData(c, data))
		return
	}

	c.HTML(http.StatusOK, "search.html", h.RenderData(c, data))
}
