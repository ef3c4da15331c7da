package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/user/moviescraper/internal/metrics"
	"github.com/user/moviescraper/internal/model"
	"github.com/user/moviescraper/internal/utils"
)

// ErrGateway 搜索接口返回异常（非 2xx、响应结构不符等）
var ErrGateway = errors.New("search gateway error")

// SearchGateway 网页搜索接口
type SearchGateway interface {
	Search(ctx context.Context, query string, limit int) ([]model.RawResult, error)
}

// BraveConfig Brave Search 客户端配置
type BraveConfig struct {
	Endpoint  string
	APIKey    string
	Timeout   time.Duration
	Transport http.RoundTripper
}

// BraveGateway Brave Search Web API 客户端
type BraveGateway struct {
	endpoint string
	client   *utils.HTTPClient
}

// NewBraveGateway 创建 Brave Search 客户端
func NewBraveGateway(cfg BraveConfig) *BraveGateway {
	return &BraveGateway{
		endpoint: cfg.Endpoint,
		client: utils.NewHTTPClient(cfg.Timeout, cfg.Transport, map[string]string{
			"Accept":               "application/json",
			"Accept-Encoding":      "gzip",
			"X-Subscription-Token": cfg.APIKey,
		}),
	}
}

// braveResponse Brave 响应中我们关心的部分
type braveResponse struct {
	Web *struct {
		Results []struct {
			URL         string `json:"url"`
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"results"`
	} `json:"web"`
}

// Search 执行一次网页搜索，结果中的 HTML 高亮会被去除
func (g *BraveGateway) Search(ctx context.Context, query string, limit int) ([]model.RawResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("count", strconv.Itoa(limit))
	apiURL := g.endpoint + "?" + params.Encode()

	log.Printf("[BraveSearch] 请求参数: %s", params.Encode())

	var resp braveResponse
	if err := g.client.GetJSON(ctx, apiURL, &resp); err != nil {
		var statusErr *utils.StatusError
		if errors.As(err, &statusErr) {
			return nil, fmt.Errorf("%w: Brave Search API error: %d %s", ErrGateway, statusErr.StatusCode, statusErr.Body)
		}
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	if resp.Web == nil || resp.Web.Results == nil {
		return nil, fmt.Errorf("%w: invalid API response format", ErrGateway)
	}

	results := make([]model.RawResult, 0, len(resp.Web.Results))
	for _, item := range resp.Web.Results {
		results = append(results, model.RawResult{
			URL:         item.URL,
			Title:       utils.StripMarkup(item.Title),
			Description: utils.StripMarkup(item.Description),
		})
	}
	return results, nil
}

// observedSearch 调用搜索接口并记录指标，kind 为 primary 或 cast
func observedSearch(ctx context.Context, gateway SearchGateway, kind, query string, limit int) ([]model.RawResult, error) {
	start := time.Now()
	results, err := gateway.Search(ctx, query, limit)
	metrics.GatewayRequestDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())

	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.GatewayRequestsTotal.WithLabelValues(kind, status).Inc()
	return results, err
}
