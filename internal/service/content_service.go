package service

import (
	"errors"
	"strings"

	"github.com/angali/internal/db"
	"gorm.io/gorm"
)

var (
	ErrContentNotFound         = errors.New("content not found")
	ErrHeroTitleMissing        = errors.New("hero title is required")
	ErrTestimonialAuthorEmpty  = errors.New("testimonial author is required")
	ErrFooterLinkFieldsMissing = errors.New("footer link label and url are required")
	ErrFAQQuestionMissing      = errors.New("faq question is required")
)

// ContentService 提供落地页内容的读取与后台 CRUD。
type ContentService struct {
	db *gorm.DB
}

// NewContentService 创建 ContentService。
func NewContentService(gdb *gorm.DB) *ContentService {
	return &ContentService{db: gdb}
}

// ListHeroes 返回主视觉区块，activeOnly 时仅返回启用项，按 position 排序。
func (s *ContentService) ListHeroes(activeOnly bool) ([]db.HeroSection, error) {
	var heroes []db.HeroSection
	query := s.db.Order("position ASC, id ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Find(&heroes).Error; err != nil {
		return nil, err
	}
	return heroes, nil
}

// HeroInput 描述创建/更新主视觉区块的字段。
type HeroInput struct {
	Title    string
	Subtitle string
	ImageURL string
	CTALabel string
	CTAURL   string
	Position int
	Active   bool
}

// CreateHero 创建主视觉区块。
func (s *ContentService) CreateHero(in HeroInput) (*db.HeroSection, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrHeroTitleMissing
	}

	hero := db.HeroSection{
		Title:    strings.TrimSpace(in.Title),
		Subtitle: in.Subtitle,
		ImageURL: in.ImageURL,
		CTALabel: in.CTALabel,
		CTAURL:   in.CTAURL,
		Position: in.Position,
		Active:   in.Active,
	}
	if err := s.db.Create(&hero).Error; err != nil {
		return nil, err
	}
	return &hero, nil
}

// UpdateHero 更新主视觉区块。
func (s *ContentService) UpdateHero(id uint, in HeroInput) (*db.HeroSection, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrHeroTitleMissing
	}

	var hero db.HeroSection
	if err := s.db.First(&hero, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	hero.Title = strings.TrimSpace(in.Title)
	hero.Subtitle = in.Subtitle
	hero.ImageURL = in.ImageURL
	hero.CTALabel = in.CTALabel
	hero.CTAURL = in.CTAURL
	hero.Position = in.Position
	hero.Active = in.Active

	if err := s.db.Save(&hero).Error; err != nil {
		return nil, err
	}
	return &hero, nil
}

// DeleteHero 删除主视觉区块。
func (s *ContentService) DeleteHero(id uint) error {
	result := s.db.Delete(&db.HeroSection{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContentNotFound
	}
	return nil
}

// ListTestimonials 返回用户评价列表。
func (s *ContentService) ListTestimonials(activeOnly bool) ([]db.Testimonial, error) {
	var items []db.Testimonial
	query := s.db.Order("position ASC, id ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// TestimonialInput 描述创建/更新用户评价的字段。
type TestimonialInput struct {
	Author   string
	Role     string
	Body     string
	Position int
	Active   bool
}

// CreateTestimonial 创建用户评价。
func (s *ContentService) CreateTestimonial(in TestimonialInput) (*db.Testimonial, error) {
	if strings.TrimSpace(in.Author) == "" {
		return nil, ErrTestimonialAuthorEmpty
	}

	item := db.Testimonial{
		Author:   strings.TrimSpace(in.Author),
		Role:     in.Role,
		Body:     in.Body,
		Position: in.Position,
		Active:   in.Active,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateTestimonial 更新用户评价。
func (s *ContentService) UpdateTestimonial(id uint, in TestimonialInput) (*db.Testimonial, error) {
	if strings.TrimSpace(in.Author) == "" {
		return nil, ErrTestimonialAuthorEmpty
	}

	var item db.Testimonial
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	item.Author = strings.TrimSpace(in.Author)
	item.Role = in.Role
	item.Body = in.Body
	item.Position = in.Position
	item.Active = in.Active

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteTestimonial 删除用户评价。
func (s *ContentService) DeleteTestimonial(id uint) error {
	result := s.db.Delete(&db.Testimonial{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContentNotFound
	}
	return nil
}

// ListFooterLinks 返回页脚链接列表。
func (s *ContentService) ListFooterLinks(activeOnly bool) ([]db.FooterLink, error) {
	var items []db.FooterLink
	query := s.db.Order("position ASC, id ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FooterLinkInput 描述创建/更新页脚链接的字段。
type FooterLinkInput struct {
	Label    string
	URL      string
	Position int
	Active   bool
}

// CreateFooterLink 创建页脚链接。
func (s *ContentService) CreateFooterLink(in FooterLinkInput) (*db.FooterLink, error) {
	if strings.TrimSpace(in.Label) == "" || strings.TrimSpace(in.URL) == "" {
		return nil, ErrFooterLinkFieldsMissing
	}

	item := db.FooterLink{
		Label:    strings.TrimSpace(in.Label),
		URL:      strings.TrimSpace(in.URL),
		Position: in.Position,
		Active:   in.Active,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateFooterLink 更新页脚链接。
func (s *ContentService) UpdateFooterLink(id uint, in FooterLinkInput) (*db.FooterLink, error) {
	if strings.TrimSpace(in.Label) == "" || strings.TrimSpace(in.URL) == "" {
		return nil, ErrFooterLinkFieldsMissing
	}

	var item db.FooterLink
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	item.Label = strings.TrimSpace(in.Label)
	item.URL = strings.TrimSpace(in.URL)
	item.Position = in.Position
	item.Active = in.Active

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteFooterLink 删除页脚链接。
func (s *ContentService) DeleteFooterLink(id uint) error {
	result := s.db.Delete(&db.FooterLink{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContentNotFound
	}
	return nil
}

// ListFAQs 返回常见问题列表。
func (s *ContentService) ListFAQs(activeOnly bool) ([]db.FAQEntry, error) {
	var items []db.FAQEntry
	query := s.db.Order("position ASC, id ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FAQInput 描述创建/更新常见问题的字段。
type FAQInput struct {
	Question string
	Answer   string
	Position int
	Active   bool
}

// CreateFAQ 创建常见问题。
func (s *ContentService) CreateFAQ(in FAQInput) (*db.FAQEntry, error) {
	if strings.TrimSpace(in.Question) == "" {
		return nil, ErrFAQQuestionMissing
	}

	item := db.FAQEntry{
		Question: strings.TrimSpace(in.Question),
		Answer:   in.Answer,
		Position: in.Position,
		Active:   in.Active,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateFAQ 更新常见问题。
func (s *ContentService) UpdateFAQ(id uint, in FAQInput) (*db.FAQEntry, error) {
	if strings.TrimSpace(in.Question) == "" {
		return nil, ErrFAQQuestionMissing
	}

	var item db.FAQEntry
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	item.Question = strings.TrimSpace(in.Question)
	item.Answer = in.Answer
	item.Position = in.Position
	item.Active = in.Active

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteFAQ 删除常见问题。
func (s *ContentService) DeleteFAQ(id uint) error {
	result := s.db.Delete(&db.FAQEntry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContentNotFound
	}
	return nil
}
