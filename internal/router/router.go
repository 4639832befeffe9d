package router

import (
	"github.com/angali/internal/handler"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, sessionSecret string, log *zap.Logger) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handler.RequestLogger(log))

	// 跨域：埋点接口由落地页前端直接调用，Cookie 需要随请求携带
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOriginFunc = func(origin string) bool { return true }
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	// 配置会话中间件（后台登录态）
	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("angali_session", store))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// 落地页与埋点：访客身份中间件在进入处理器前解析或铸造身份令牌
	public := r.Group("/", api.TrackVisitor())
	{
		public.GET("", api.ShowLanding)
		public.POST("track/start/", api.TrackStart)
		public.POST("track/end/", api.TrackEnd)
	}

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.POST("/login", api.Login)
		admin.POST("/logout", api.Logout)

		// 需要认证的后台路由
		auth := admin.Group("/api")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/overview", api.GetOverview)
			auth.GET("/visitors", api.GetVisitors)
			auth.GET("/sessions", api.GetSessions)
			auth.POST("/sessions/:id/reset-duration", api.ResetSessionDuration)

			auth.GET("/heroes", api.GetHeroes)
			auth.POST("/heroes", api.CreateHero)
			auth.PUT("/heroes/:id", api.UpdateHero)
			auth.DELETE("/heroes/:id", api.DeleteHero)

			auth.GET("/testimonials", api.GetTestimonials)
			auth.POST("/testimonials", api.CreateTestimonial)
			auth.PUT("/testimonials/:id", api.UpdateTestimonial)
			auth.DELETE("/testimonials/:id", api.DeleteTestimonial)

			auth.GET("/footer-links", api.GetFooterLinks)
			auth.POST("/footer-links", api.CreateFooterLink)
			auth.PUT("/footer-links/:id", api.UpdateFooterLink)
			auth.DELETE("/footer-links/:id", api.DeleteFooterLink)

			auth.GET("/faqs", api.GetFAQs)
			auth.POST("/faqs", api.CreateFAQ)
			auth.PUT("/faqs/:id", api.UpdateFAQ)
			auth.DELETE("/faqs/:id", api.DeleteFAQ)

			auth.POST("/upload", api.UploadImage)
		}
	}

	return r
}
