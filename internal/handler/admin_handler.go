package handler

import (
	"errors"
	"net/http"

	"github.com/angali/internal/db"
	"github.com/angali/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login 处理后台登录请求，校验通过后写入会话。
func (a *API) Login(c *gin.Context) {
	var payload loginPayload
	if !bindJSON(c, &payload, "请求格式不正确") {
		return
	}

	var user db.User
	if err := a.db.Where("username = ?", payload.Username).First(&user).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "用户名或密码错误")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "用户名或密码错误")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("username", user.Username)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "会话保存失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "登录成功", "username": user.Username})
}

// Logout 处理后台登出。
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.JSON(http.StatusOK, gin.H{"message": "已退出"})
}

// AuthRequired 是一个简单的认证中间件
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get("user_id") == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "未登录"})
			return
		}
		c.Next()
	}
}

// GetVisitors 返回访客列表及每个访客的会话数。
func (a *API) GetVisitors(c *gin.Context) {
	limit := parsePositiveInt(c.DefaultQuery("limit", "25"), 25)
	page := parsePositiveInt(c.DefaultQuery("page", "1"), 1)

	visitors, err := a.stats.Visitors(limit, (page-1)*limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取访客列表失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"visitors": visitors, "page": page})
}

// GetSessions 返回会话列表及每个会话的交互数。
func (a *API) GetSessions(c *gin.Context) {
	limit := parsePositiveInt(c.DefaultQuery("limit", "25"), 25)
	page := parsePositiveInt(c.DefaultQuery("page", "1"), 1)

	sessionRows, err := a.stats.Sessions(limit, (page-1)*limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取会话列表失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessionRows, "page": page})
}

// GetOverview 返回站点级访问概览。
func (a *API) GetOverview(c *gin.Context) {
	limit := parsePositiveInt(c.DefaultQuery("top", "5"), 5)

	overview, err := a.stats.Overview(limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取统计概览失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"overview": overview})
}

// ResetSessionDuration 将指定会话的时长归零并清除结束时间。
func (a *API) ResetSessionDuration(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的 ID")
		return
	}

	if err := a.stats.ResetDuration(id); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			respondError(c, http.StatusNotFound, "会话不存在")
			return
		}
		respondError(c, http.StatusInternalServerError, "重置失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "会话时长已重置"})
}
