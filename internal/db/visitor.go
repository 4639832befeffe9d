package db

import "time"

// Visitor 表示通过身份 Cookie 识别出来的独立访客。
// UUID 由客户端持有并跨会话复用，IP 与地理位置仅在首次记录时写入。
type Visitor struct {
	ID        uint      `gorm:"primaryKey"`
	UUID      string    `gorm:"size:64;uniqueIndex;not null"`
	IPAddress string    `gorm:"size:64"`
	Location  string    `gorm:"size:255"`
	VisitDate time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName 指定自定义表名。
func (Visitor) TableName() string {
	return "visitors"
}
