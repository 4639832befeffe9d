// Package geo 将访客 IP 解析为粗粒度的地理位置描述。
// 解析器保证有界等待，任何失败都退化为 Unknown，绝不向上传播错误。
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Unknown 是所有解析失败路径的统一返回值。
const Unknown = "Unknown"

// Resolver 把 IP 地址映射为 "City, Country" 形式的位置描述。
type Resolver interface {
	Resolve(ctx context.Context, ip string) string
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

const defaultLookupTimeout = 5 * time.Second

// HTTPResolver 调用 ip-api.com 风格的 JSON 接口完成解析。
type HTTPResolver struct {
	http    httpDoer
	baseURL string
}

// NewHTTPResolver 创建带 5 秒超时的 HTTP 解析器。
func NewHTTPResolver(baseURL string) *HTTPResolver {
	return &HTTPResolver{
		http:    &http.Client{Timeout: defaultLookupTimeout},
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
	}
}

// SetHTTPClient 允许测试注入替身客户端。
func (r *HTTPResolver) SetHTTPClient(client httpDoer) {
	if client == nil {
		r.http = &http.Client{Timeout: defaultLookupTimeout}
		return
	}
	r.http = client
}

type lookupResponse struct {
	Status  string `json:"status"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Resolve 查询单个 IP，超时、非 2xx、响应异常均返回 Unknown。
func (r *HTTPResolver) Resolve(ctx context.Context, ip string) string {
	if strings.TrimSpace(ip) == "" {
		return Unknown
	}

	url := fmt.Sprintf("%s/json/%s", r.baseURL, ip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Unknown
	}

	resp, err := r.http.Do(req)
	if err != nil {
		return Unknown
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Unknown
	}

	var payload lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Unknown
	}

	if payload.Status == "fail" {
		return Unknown
	}

	return formatLocation(payload.City, payload.Country)
}

func formatLocation(city, country string) string {
	city = strings.TrimSpace(city)
	country = strings.TrimSpace(country)

	switch {
	case city != "" && country != "":
		return fmt.Sprintf("%s, %s", city, country)
	case country != "":
		return country
	case city != "":
		return city
	default:
		return Unknown
	}
}
