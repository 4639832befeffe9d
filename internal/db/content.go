package db

import "gorm.io/gorm"

// HeroSection 是落地页顶部的主视觉区块。
type HeroSection struct {
	gorm.Model
	Title    string `gorm:"not null"`
	Subtitle string `gorm:"size:500"`
	ImageURL string `gorm:"size:500"`
	CTALabel string `gorm:"size:100"`
	CTAURL   string `gorm:"size:500"`
	Position int    `gorm:"default:0;index"`
	Active   bool   `gorm:"default:true;index"`
}

// TableName 指定自定义表名。
func (HeroSection) TableName() string {
	return "hero_sections"
}

// Testimonial 是落地页展示的用户评价，正文为 Markdown。
type Testimonial struct {
	gorm.Model
	Author   string `gorm:"not null"`
	Role     string `gorm:"size:255"`
	Body     string `gorm:"type:text"`
	Position int    `gorm:"default:0;index"`
	Active   bool   `gorm:"default:true;index"`
}

// TableName 指定自定义表名。
func (Testimonial) TableName() string {
	return "testimonials"
}

// FooterLink 是页脚链接条目。
type FooterLink struct {
	gorm.Model
	Label    string `gorm:"not null"`
	URL      string `gorm:"size:500;not null"`
	Position int    `gorm:"default:0;index"`
	Active   bool   `gorm:"default:true;index"`
}

// TableName 指定自定义表名。
func (FooterLink) TableName() string {
	return "footer_links"
}

// FAQEntry 是常见问题条目，答案为 Markdown。
type FAQEntry struct {
	gorm.Model
	Question string `gorm:"not null"`
	Answer   string `gorm:"type:text"`
	Position int    `gorm:"default:0;index"`
	Active   bool   `gorm:"default:true;index"`
}

// TableName 指定自定义表名。
func (FAQEntry) TableName() string {
	return "faq_entries"
}
