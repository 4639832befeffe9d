package service

import (
	"errors"
	"strings"
	"time"

	"github.com/angali/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrVisitorTokenMissing = errors.New("visitor token is required")
	ErrVisitorNotFound     = errors.New("visitor not found")
)

// VisitorService 维护身份令牌到访客记录的持久映射。
type VisitorService struct {
	db *gorm.DB
}

// NewVisitorService 创建 VisitorService。
func NewVisitorService(gdb *gorm.DB) *VisitorService {
	return &VisitorService{db: gdb}
}

// LookupOrCreate 按令牌查找访客，不存在时创建。
// 并发的首次请求依赖 uuid 列唯一索引 + OnConflict DoNothing 收敛到同一行，
// 已存在的访客不会刷新 IP 与位置（首触归因）。
func (s *VisitorService) LookupOrCreate(token, ip, location string, now time.Time) (*db.Visitor, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return nil, ErrVisitorTokenMissing
	}

	visitor := db.Visitor{
		UUID:      trimmed,
		IPAddress: ip,
		Location:  location,
		VisitDate: now,
	}

	insert := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uuid"}},
		DoNothing: true,
	}).Create(&visitor)
	if insert.Error != nil {
		return nil, insert.Error
	}

	if insert.RowsAffected == 1 {
		return &visitor, nil
	}

	// 冲突说明另一请求已建行，读取既有记录继续
	var existing db.Visitor
	if err := s.db.Where("uuid = ?", trimmed).First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// GetByUUID 按令牌读取访客。
func (s *VisitorService) GetByUUID(token string) (*db.Visitor, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return nil, ErrVisitorTokenMissing
	}

	var visitor db.Visitor
	if err := s.db.Where("uuid = ?", trimmed).First(&visitor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVisitorNotFound
		}
		return nil, err
	}
	return &visitor, nil
}
