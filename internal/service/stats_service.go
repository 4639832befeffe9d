package service

import (
	"errors"
	"time"

	"github.com/angali/internal/db"
	"gorm.io/gorm"
)

// ErrSessionNotFound 表示按主键查不到会话记录。
var ErrSessionNotFound = errors.New("session not found")

// StatsService 为后台提供访客/会话维度的只读聚合。
type StatsService struct {
	db *gorm.DB
}

// NewStatsService 创建 StatsService。
func NewStatsService(gdb *gorm.DB) *StatsService {
	return &StatsService{db: gdb}
}

// VisitorSummary 描述访客列表行及其会话数。
type VisitorSummary struct {
	ID           uint
	UUID         string
	IPAddress    string
	Location     string
	VisitDate    time.Time
	SessionCount int64
}

// Visitors 按首次访问时间倒序返回访客及会话数。
func (s *StatsService) Visitors(limit, offset int) ([]VisitorSummary, error) {
	if limit <= 0 {
		limit = 25
	}
	if offset < 0 {
		offset = 0
	}

	var rows []VisitorSummary
	if err := s.db.Table("visitors v").
		Select("v.id, v.uuid, v.ip_address, v.location, v.visit_date, COUNT(vs.id) AS session_count").
		Joins("LEFT JOIN visitor_sessions vs ON vs.visitor_id = v.id").
		Group("v.id").
		Order("v.visit_date DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SessionSummary 描述会话列表行及其交互数。
type SessionSummary struct {
	ID               uint
	SessionID        string
	VisitorIP        string
	StartTime        time.Time
	EndTime          *time.Time
	DurationSeconds  uint
	Referrer         string
	Browser          string
	DeviceType       string
	InteractionCount int64
}

// Sessions 按开始时间倒序返回会话及交互数。
func (s *StatsService) Sessions(limit, offset int) ([]SessionSummary, error) {
	if limit <= 0 {
		limit = 25
	}
	if offset < 0 {
		offset = 0
	}

	var rows []SessionSummary
	if err := s.db.Table("visitor_sessions vs").
		Select("vs.id, vs.session_id, v.ip_address AS visitor_ip, vs.start_time, vs.end_time, vs.duration_seconds, vs.referrer, vs.browser, vs.device_type, COUNT(pi.id) AS interaction_count").
		Joins("JOIN visitors v ON v.id = vs.visitor_id").
		Joins("LEFT JOIN page_interactions pi ON pi.session_id = vs.id").
		Group("vs.id").
		Order("vs.start_time DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SectionStat 描述单个区块的交互次数。
type SectionStat struct {
	SectionID    string
	Interactions int64
}

// SiteOverview 汇总站点层面的访客/会话/交互数据。
type SiteOverview struct {
	TotalVisitors      int64
	TotalSessions      int64
	TotalInteractions  int64
	AvgDurationSeconds float64
	TopSections        []SectionStat
}

// Overview 汇总全站数据，limit 控制热门区块条数。
func (s *StatsService) Overview(limit int) (SiteOverview, error) {
	if limit <= 0 {
		limit = 5
	}

	var overview SiteOverview

	if err := s.db.Model(&db.Visitor{}).Count(&overview.TotalVisitors).Error; err != nil {
		return overview, err
	}
	if err := s.db.Model(&db.VisitorSession{}).Count(&overview.TotalSessions).Error; err != nil {
		return overview, err
	}
	if err := s.db.Model(&db.PageInteraction{}).Count(&overview.TotalInteractions).Error; err != nil {
		return overview, err
	}

	var avg struct {
		AvgDuration float64
	}
	if err := s.db.Model(&db.VisitorSession{}).
		Select("COALESCE(AVG(duration_seconds), 0) AS avg_duration").
		Scan(&avg).Error; err != nil {
		return overview, err
	}
	overview.AvgDurationSeconds = avg.AvgDuration

	var topSections []SectionStat
	if err := s.db.Table("page_interactions").
		Select("section_id, COUNT(*) AS interactions").
		Group("section_id").
		Order("interactions DESC").
		Limit(limit).
		Scan(&topSections).Error; err != nil {
		return overview, err
	}
	overview.TopSections = topSections

	return overview, nil
}

// ResetDuration 将会话时长归零并清除结束时间，对应后台的重置操作。
func (s *StatsService) ResetDuration(sessionPK uint) error {
	result := s.db.Model(&db.VisitorSession{}).
		Where("id = ?", sessionPK).
		Updates(map[string]interface{}{
			"duration_seconds": 0,
			"end_time":         nil,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}
