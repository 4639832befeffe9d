package handler

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	visitorCookieName   = "ag_visitor_id"
	visitorCookieMaxAge = 365 * 24 * 60 * 60

	visitorContextKey = "__visitor_identity"
)

// visitorIdentity 是身份中间件向后续处理器显式传递的结果。
type visitorIdentity struct {
	Token string
	New   bool
}

// TrackVisitor 在每个请求上解析访客身份：
// 带 Cookie 时按令牌查找或补建访客记录，无 Cookie 时铸造新令牌并下发一年期 Cookie。
// 地理位置解析失败只会让位置退化为 Unknown，不会影响请求本身。
func (a *API) TrackVisitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := clientIP(c)
		location := a.resolver.Resolve(c.Request.Context(), ip)

		identity := visitorIdentity{}
		if token, err := c.Cookie(visitorCookieName); err == nil && strings.TrimSpace(token) != "" {
			identity.Token = strings.TrimSpace(token)
		} else {
			identity.Token = uuid.NewString()
			identity.New = true
		}

		if _, err := a.visitors.LookupOrCreate(identity.Token, ip, location, time.Now().UTC()); err != nil {
			// 访客落库失败不阻断请求，只记录
			c.Error(err)
		} else if identity.New {
			secure := c.Request.TLS != nil
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     visitorCookieName,
				Value:    identity.Token,
				Path:     "/",
				HttpOnly: true,
				Secure:   secure,
				MaxAge:   visitorCookieMaxAge,
				Expires:  time.Now().Add(365 * 24 * time.Hour),
				SameSite: http.SameSiteLaxMode,
			})
		}

		c.Set(visitorContextKey, identity)
		c.Next()
	}
}

// currentVisitor 读取中间件写入的身份结果。
func currentVisitor(c *gin.Context) (visitorIdentity, bool) {
	value, exists := c.Get(visitorContextKey)
	if !exists {
		return visitorIdentity{}, false
	}
	identity, ok := value.(visitorIdentity)
	return identity, ok
}

// clientIP 优先取 X-Forwarded-For 的第一跳，否则回退到直连地址。
func clientIP(c *gin.Context) string {
	forwarded := c.GetHeader("X-Forwarded-For")
	if forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if first != "" {
			return first
		}
	}

	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}
