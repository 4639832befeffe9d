package geo

import (
	"context"
	"net"

	"github.com/oschwald/geoip2-golang"
)

// MaxMindResolver 基于本地 GeoLite2 City 数据库解析，避免每次请求的出网调用。
type MaxMindResolver struct {
	reader *geoip2.Reader
}

// NewMaxMindResolver 打开指定路径的 MaxMind 数据库。
func NewMaxMindResolver(path string) (*MaxMindResolver, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, err
	}
	return &MaxMindResolver{reader: reader}, nil
}

// Resolve 在本地数据库中查询 IP，对无效 IP 或缺失记录返回 Unknown。
func (r *MaxMindResolver) Resolve(_ context.Context, ip string) string {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return Unknown
	}

	record, err := r.reader.City(parsed)
	if err != nil {
		return Unknown
	}

	return formatLocation(record.City.Names["en"], record.Country.Names["en"])
}

// Close 释放底层数据库句柄。
func (r *MaxMindResolver) Close() error {
	return r.reader.Close()
}
