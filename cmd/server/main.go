package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/user/moviescraper/internal/config"
	"github.com/user/moviescraper/internal/handler"
	"github.com/user/moviescraper/internal/metrics"
	"github.com/user/moviescraper/internal/middleware"
	"github.com/user/moviescraper/internal/repository"
	"github.com/user/moviescraper/internal/router"
	"github.com/user/moviescraper/internal/service"
	"github.com/user/moviescraper/internal/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	// 加载环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用系统环境变量")
	}

	// 加载配置，缺少 API 密钥时无法提供任何搜索
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}
	log.Printf("MovieScraper 初始化完成, API key: %s", cfg.APIKeyPreview())

	metrics.Register(prometheus.DefaultRegisterer)

	// 链路追踪，未配置 OTLP 地址时为空操作
	shutdownTracer, err := telemetry.Init(context.Background(), "moviescraper")
	if err != nil {
		log.Printf("[Telemetry] 初始化失败: %v", err)
	}

	// 初始化搜索服务
	gateway := service.NewBraveGateway(service.BraveConfig{
		Endpoint:  cfg.BraveEndpoint,
		APIKey:    cfg.BraveAPIKey,
		Timeout:   cfg.RequestTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})
	scraper := service.NewMovieScraper(gateway, repository.NewMovieStore(),
		service.WithResultLimit(cfg.ResultCount),
		service.WithCastErrorsFatal(cfg.CastErrorsFatal),
	)

	// 初始化 Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// 启用 gzip，默认压缩级别
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 加载模板（使用 multitemplate 解决继承问题）
	r.HTMLRender = router.LoadTemplates("./web/templates")

	// 中间件
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Security())
	r.Use(middleware.CORS())

	h := handler.NewHandler(scraper, cfg)
	router.RegisterRoutes(r, h)

	// 一次搜索包含主搜索和若干演员表搜索，写超时需覆盖两轮请求
	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        otelhttp.NewHandler(r, "moviescraper"),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   2*cfg.RequestTimeout + 5*time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("服务器启动于 http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务器启动失败: %v", err)
		}
	}()

	// 等待中断信号以优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("服务器强制关闭:", err)
	}
	if err := shutdownTracer(ctx); err != nil {
		log.Printf("[Telemetry] 关闭失败: %v", err)
	}

	log.Println("服务器已退出")
}
