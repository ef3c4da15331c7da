package router

import (
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/user/moviescraper/internal/handler"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ==================== 页面 ====================
	r.GET("/", h.Home)
	r.GET("/search", h.SearchPage)

	// ==================== API ====================
	api := r.Group("/api")
	{
		api.GET("/movies/search", h.SearchMovies)
		api.GET("/movies", h.ListMovies)
		api.GET("/search/history", h.SearchHistory)
	}
}

// LoadTemplates 使用 multitemplate 加载模板，解决模板继承问题
func LoadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	partials, err := filepath.Glob(templatesDir + "/partials/*.html")
	if err != nil {
		panic(err)
	}

	assemble := func(view string) []string {
		files := make([]string, 0, len(layouts)+len(partials)+1)
		files = append(files, layouts...)
		files = append(files, partials...)
		files = append(files, view)
		return files
	}

	r.AddFromFilesFuncs("search.html", TemplateFuncs(), assemble(templatesDir+"/pages/search.html")...)
	return r
}

// TemplateFuncs 模板函数
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"default": func(defaultValue, value interface{}) interface{} {
			switch v := value.(type) {
			case string:
				if v == "" {
					return defaultValue
				}
			case int:
				if v == 0 {
					return defaultValue
				}
			case nil:
				return defaultValue
			}
			return value
		},
		"join": func(items []string) string {
			return strings.Join(items, ", ")
		},
		"rating": func(r *float64) string {
			if r == nil {
				return "暂无"
			}
			return fmt.Sprintf("%.1f", *r)
		},
	}
}
