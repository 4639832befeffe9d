package service

import (
	"errors"
	"strings"
	"time"

	"github.com/angali/internal/db"
	"github.com/mssola/useragent"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrMissingVisitor = errors.New("missing visitor id")
	ErrMissingSession = errors.New("missing session id")
)

// TrackingService 负责会话的开启、关闭以及区块停留事实的落库。
type TrackingService struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewTrackingService 创建 TrackingService。
func NewTrackingService(gdb *gorm.DB, log *zap.Logger) *TrackingService {
	if log == nil {
		log = zap.NewNop()
	}
	return &TrackingService{db: gdb, log: log}
}

// StartSession 为已知访客开启一次会话，开始时间由服务端指定。
// 同一 session_id 的重复调用会产生多行，接口层不做幂等保证。
func (s *TrackingService) StartSession(visitorToken, sessionID, referrer, userAgent string, now time.Time) (*db.VisitorSession, error) {
	token := strings.TrimSpace(visitorToken)
	if token == "" {
		return nil, ErrMissingVisitor
	}
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrMissingSession
	}

	var visitor db.Visitor
	if err := s.db.Where("uuid = ?", token).First(&visitor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMissingVisitor
		}
		return nil, err
	}

	browser, osName, deviceType := classifyUserAgent(userAgent)

	session := db.VisitorSession{
		VisitorID:  visitor.ID,
		SessionID:  sessionID,
		Referrer:   referrer,
		UserAgent:  userAgent,
		Browser:    browser,
		OS:         osName,
		DeviceType: deviceType,
		StartTime:  now,
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}

	return &session, nil
}

// EndSessionInput 汇总一次会话关闭上报的全部字段。
type EndSessionInput struct {
	SessionID       string
	EndTime         time.Time
	DurationSeconds uint
	Sections        []string
	MaxScroll       uint
	// SectionDepths 可选：按区块覆盖滚动深度，缺省回退到 MaxScroll
	SectionDepths map[string]uint
}

// EndSession 关闭会话并批量写入区块停留记录。
// 未知 session_id 静默成功（仅内部记录日志）；更新与批量插入在同一事务内完成。
func (s *TrackingService) EndSession(in EndSessionInput, now time.Time) error {
	if strings.TrimSpace(in.SessionID) == "" {
		return ErrMissingSession
	}

	var session db.VisitorSession
	if err := s.db.Where("session_id = ?", in.SessionID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Info("end session for unknown session id",
				zap.String("session_id", in.SessionID))
			return nil
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		endTime := in.EndTime
		updates := map[string]interface{}{
			"end_time":         endTime,
			"duration_seconds": in.DurationSeconds,
		}
		if err := tx.Model(&db.VisitorSession{}).
			Where("id = ?", session.ID).
			Updates(updates).Error; err != nil {
			return err
		}

		for _, sectionID := range in.Sections {
			depth := in.MaxScroll
			if override, ok := in.SectionDepths[sectionID]; ok {
				depth = override
			}

			interaction := db.PageInteraction{
				SessionID:   session.ID,
				SectionID:   sectionID,
				Timestamp:   now,
				ScrollDepth: depth,
			}
			if err := tx.Create(&interaction).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// classifyUserAgent 从原始 UA 解析浏览器、操作系统与设备类型，解析不到时返回空串。
func classifyUserAgent(raw string) (browser, osName, deviceType string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", "", ""
	}

	ua := useragent.New(trimmed)
	browser, _ = ua.Browser()
	osName = ua.OS()

	switch {
	case ua.Mobile():
		deviceType = "mobile"
	case ua.Bot():
		deviceType = "bot"
	default:
		deviceType = "desktop"
	}

	return browser, osName, deviceType
}
