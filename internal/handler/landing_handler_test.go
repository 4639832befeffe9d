package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/angali/internal/db"
)

type landingPayload struct {
	Hero         []map[string]interface{} `json:"hero"`
	Testimonials []map[string]interface{} `json:"testimonials"`
	FooterLinks  []map[string]interface{} `json:"footer_links"`
	FAQs         []map[string]interface{} `json:"faqs"`
}

func decodeLanding(t *testing.T, body []byte) landingPayload {
	t.Helper()

	var payload landingPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("landing payload must be valid json: %v", err)
	}
	return payload
}

func TestShowLandingRendersContent(t *testing.T) {
	r, cleanup := setupTrackTest(t, "Berlin, Germany")
	defer cleanup()

	seed := []interface{}{
		&db.HeroSection{Title: "Build faster", Subtitle: "Ship today", Position: 1, Active: true},
		&db.HeroSection{Title: "Hidden hero", Position: 2, Active: false},
		&db.Testimonial{Author: "Ada", Role: "CTO", Body: "**Great** product", Position: 1, Active: true},
		&db.FooterLink{Label: "About", URL: "https://angali.example.com/about", Position: 1, Active: true},
		&db.FAQEntry{Question: "Is it free?", Answer: "Yes, *for now*.", Position: 1, Active: true},
		&db.FAQEntry{Question: "Hidden question", Answer: "No", Position: 2, Active: false},
	}
	for _, record := range seed {
		if err := db.DB.Create(record).Error; err != nil {
			t.Fatalf("failed to seed content: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	payload := decodeLanding(t, w.Body.Bytes())
	if len(payload.Hero) != 1 || len(payload.Testimonials) != 1 || len(payload.FooterLinks) != 1 || len(payload.FAQs) != 1 {
		t.Fatalf("inactive records must be filtered out, got %+v", payload)
	}

	if payload.Hero[0]["title"] != "Build faster" {
		t.Fatalf("unexpected hero: %+v", payload.Hero[0])
	}

	body, _ := payload.Testimonials[0]["body"].(string)
	if !strings.Contains(body, "<strong>Great</strong>") {
		t.Fatalf("testimonial markdown should render to html, got %q", body)
	}

	answer, _ := payload.FAQs[0]["answer"].(string)
	if !strings.Contains(answer, "<em>for now</em>") {
		t.Fatalf("faq markdown should render to html, got %q", answer)
	}
}

func TestShowLandingSanitizesMarkdown(t *testing.T) {
	r, cleanup := setupTrackTest(t, "Berlin, Germany")
	defer cleanup()

	faq := db.FAQEntry{
		Question: "XSS?",
		Answer:   "safe <script>alert('pwn')</script> text",
		Active:   true,
	}
	if err := db.DB.Create(&faq).Error; err != nil {
		t.Fatalf("failed to seed faq: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	payload := decodeLanding(t, w.Body.Bytes())
	if len(payload.FAQs) != 1 {
		t.Fatalf("expected one faq, got %d", len(payload.FAQs))
	}
	answer, _ := payload.FAQs[0]["answer"].(string)
	if strings.Contains(answer, "<script>") {
		t.Fatalf("script tags must be sanitized away: %q", answer)
	}
	if !strings.Contains(answer, "safe") {
		t.Fatalf("benign text should survive sanitization: %q", answer)
	}
}
