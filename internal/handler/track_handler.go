package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/angali/internal/service"
	"github.com/gin-gonic/gin"
)

type startSessionPayload struct {
	SessionID string `json:"session_id"`
	Referrer  string `json:"referrer"`
	UserAgent string `json:"user_agent"`
}

type endSessionPayload struct {
	SessionID       string          `json:"session_id"`
	EndTime         string          `json:"end_time"`
	DurationSeconds uint            `json:"duration_seconds"`
	Sections        []string        `json:"sections"`
	MaxScroll       uint            `json:"max_scroll"`
	SectionDepths   map[string]uint `json:"section_depths"`
}

// TrackStart 处理会话开始上报。访客身份取自请求 Cookie，
// 本次请求才铸造的令牌不算有效身份。
func (a *API) TrackStart(c *gin.Context) {
	var payload startSessionPayload
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}

	identity, ok := currentVisitor(c)
	if !ok || identity.New || identity.Token == "" {
		respondError(c, http.StatusBadRequest, "Missing visitor ID")
		return
	}

	if strings.TrimSpace(payload.SessionID) == "" {
		respondError(c, http.StatusBadRequest, "Missing session ID")
		return
	}

	if _, err := a.tracking.StartSession(identity.Token, payload.SessionID, payload.Referrer, payload.UserAgent, time.Now().UTC()); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingVisitor):
			respondError(c, http.StatusBadRequest, "Missing visitor ID")
		case errors.Is(err, service.ErrMissingSession):
			respondError(c, http.StatusBadRequest, "Missing session ID")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to start session")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "started"})
}

// TrackEnd 处理会话结束上报。未知 session_id 静默成功，
// 结束时间与批量交互写入在服务层的同一事务内完成。
func (a *API) TrackEnd(c *gin.Context) {
	var payload endSessionPayload
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}

	if strings.TrimSpace(payload.SessionID) == "" {
		respondError(c, http.StatusBadRequest, "Missing session ID")
		return
	}

	endTime, err := time.Parse(time.RFC3339, strings.TrimSpace(payload.EndTime))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid end_time")
		return
	}

	input := service.EndSessionInput{
		SessionID:       payload.SessionID,
		EndTime:         endTime.UTC(),
		DurationSeconds: payload.DurationSeconds,
		Sections:        payload.Sections,
		MaxScroll:       payload.MaxScroll,
		SectionDepths:   payload.SectionDepths,
	}

	if err := a.tracking.EndSession(input, time.Now().UTC()); err != nil {
		if errors.Is(err, service.ErrMissingSession) {
			respondError(c, http.StatusBadRequest, "Missing session ID")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to end session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ended"})
}
