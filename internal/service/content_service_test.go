package service

import (
	"errors"
	"testing"

	"github.com/angali/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupContentTestDB(t *testing.T) func() {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.HeroSection{}, &db.Testimonial{}, &db.FooterLink{}, &db.FAQEntry{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	db.DB = gdb

	return func() {
		sqlDB, err := db.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestHeroCRUD(t *testing.T) {
	cleanup := setupContentTestDB(t)
	defer cleanup()

	svc := NewContentService(db.DB)

	hero, err := svc.CreateHero(HeroInput{Title: "欢迎来到 Angali", Subtitle: "一站式落地页", Position: 1, Active: true})
	if err != nil {
		t.Fatalf("create hero failed: %v", err)
	}

	updated, err := svc.UpdateHero(hero.ID, HeroInput{Title: "新标题", CTALabel: "立即体验", CTAURL: "https://angali.example.com/signup", Position: 2, Active: false})
	if err != nil {
		t.Fatalf("update hero failed: %v", err)
	}
	if updated.Title != "新标题" || updated.CTALabel != "立即体验" || updated.Active {
		t.Fatalf("unexpected hero after update: %+v", updated)
	}

	if err := svc.DeleteHero(hero.ID); err != nil {
		t.Fatalf("delete hero failed: %v", err)
	}
	if err := svc.DeleteHero(hero.ID); !errors.Is(err, ErrContentNotFound) {
		t.Fatalf("expected ErrContentNotFound on second delete, got %v", err)
	}
}

func TestCreateHeroRequiresTitle(t *testing.T) {
	cleanup := setupContentTestDB(t)
	defer cleanup()

	svc := NewContentService(db.DB)
	if _, err := svc.CreateHero(HeroInput{Title: "   "}); !errors.Is(err, ErrHeroTitleMissing) {
		t.Fatalf("expected ErrHeroTitleMissing, got %v", err)
	}
}

func TestListActiveOrdersByPosition(t *testing.T) {
	cleanup := setupContentTestDB(t)
	defer cleanup()

	svc := NewContentService(db.DB)

	if _, err := svc.CreateFAQ(FAQInput{Question: "如何开始？", Answer: "注册即可", Position: 2, Active: true}); err != nil {
		t.Fatalf("create faq failed: %v", err)
	}
	if _, err := svc.CreateFAQ(FAQInput{Question: "价格如何？", Answer: "免费", Position: 1, Active: true}); err != nil {
		t.Fatalf("create faq failed: %v", err)
	}
	if _, err := svc.CreateFAQ(FAQInput{Question: "隐藏条目", Answer: "不显示", Position: 0, Active: false}); err != nil {
		t.Fatalf("create faq failed: %v", err)
	}

	active, err := svc.ListFAQs(true)
	if err != nil {
		t.Fatalf("list faqs failed: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected two active faqs, got %d", len(active))
	}
	if active[0].Question != "价格如何？" || active[1].Question != "如何开始？" {
		t.Fatalf("faqs must be ordered by position: %+v", active)
	}

	all, err := svc.ListFAQs(false)
	if err != nil {
		t.Fatalf("list all faqs failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected three faqs total, got %d", len(all))
	}
}

func TestFooterLinkValidation(t *testing.T) {
	cleanup := setupContentTestDB(t)
	defer cleanup()

	svc := NewContentService(db.DB)
	if _, err := svc.CreateFooterLink(FooterLinkInput{Label: "关于", URL: ""}); !errors.Is(err, ErrFooterLinkFieldsMissing) {
		t.Fatalf("expected ErrFooterLinkFieldsMissing, got %v", err)
	}

	link, err := svc.CreateFooterLink(FooterLinkInput{Label: "关于", URL: "https://angali.example.com/about", Active: true})
	if err != nil {
		t.Fatalf("create footer link failed: %v", err)
	}
	if link.Label != "关于" {
		t.Fatalf("unexpected footer link: %+v", link)
	}
}

func TestUpdateTestimonialNotFound(t *testing.T) {
	cleanup := setupContentTestDB(t)
	defer cleanup()

	svc := NewContentService(db.DB)
	if _, err := svc.UpdateTestimonial(999, TestimonialInput{Author: "张三"}); !errors.Is(err, ErrContentNotFound) {
		t.Fatalf("expected ErrContentNotFound, got %v", err)
	}
}
