package db

import "time"

// VisitorSession 记录访客的一次完整浏览，由前端上报开始与结束。
type VisitorSession struct {
	ID        uint    `gorm:"primaryKey"`
	VisitorID uint    `gorm:"index;not null"`
	Visitor   Visitor `gorm:"constraint:OnDelete:CASCADE"`

	// SessionID 由客户端生成，预期唯一但不做唯一约束
	SessionID string `gorm:"size:100;index"`
	Referrer  string `gorm:"size:500"`
	UserAgent string `gorm:"type:text"`

	// 从 UserAgent 解析出的派生字段，解析失败时留空
	Browser    string `gorm:"size:64"`
	OS         string `gorm:"size:64"`
	DeviceType string `gorm:"size:16"`

	StartTime       time.Time
	EndTime         *time.Time
	DurationSeconds uint `gorm:"default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName 指定自定义表名。
func (VisitorSession) TableName() string {
	return "visitor_sessions"
}

// PageInteraction 记录会话内对页面某个区块的一次停留事实，写入后不再修改。
type PageInteraction struct {
	ID        uint           `gorm:"primaryKey"`
	SessionID uint           `gorm:"index;not null"`
	Session   VisitorSession `gorm:"constraint:OnDelete:CASCADE"`

	SectionID   string `gorm:"size:255"`
	Timestamp   time.Time
	ScrollDepth uint `gorm:"default:0"` // 百分比

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName 指定自定义表名。
func (PageInteraction) TableName() string {
	return "page_interactions"
}
