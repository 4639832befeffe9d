package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/angali/internal/db"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func seedAdminUser(t *testing.T, username, password string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := db.DB.Create(&db.User{Username: username, Password: string(hashed)}).Error; err != nil {
		t.Fatalf("failed to seed admin user: %v", err)
	}
}

func adminLogin(t *testing.T, r *gin.Engine, username, password string) []*http.Cookie {
	t.Helper()

	raw, _ := json.Marshal(gin.H{"username": username, "password": password})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}
	return w.Result().Cookies()
}

func adminGet(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAdminLoginRejectsBadPassword(t *testing.T) {
	r, cleanup := setupTrackTest(t, "Berlin, Germany")
	defer cleanup()

	seedAdminUser(t, "root", "correct-horse")

	raw, _ := json.Marshal(gin.H{"username": "root", "password": "wrong"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAdminAPIRequiresLogin(t *testing.T) {
	r, cleanup := setupTrackTest(t, "Berlin, Germany")
	defer cleanup()

	w := adminGet(r, "/admin/api/overview", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", w.Code)
	}
}

func TestAdminOverviewAndLists(t *testing.T) {
	r, cleanup := setupTrackTest(t, "Berlin, Germany")
	defer cleanup()

	seedAdminUser(t, "root", "correct-horse")

	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	visitor := db.Visitor{UUID: "v1", IPAddress: "203.0.113.9", Location: "Berlin, Germany", VisitDate: base}
	if err := db.DB.Create(&visitor).Error; err != nil {
		t.Fatalf("failed to seed visitor: %v", err)
	}
	session := db.VisitorSession{VisitorID: visitor.ID, SessionID: "S1", StartTime: base, DurationSeconds: 90}
	if err := db.DB.Create(&session).Error; err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}
	interaction := db.PageInteraction{SessionID: session.ID, SectionID: "hero", Timestamp: base, ScrollDepth: 70}
	if err := db.DB.Create(&interaction).Error; err != nil {
		t.Fatalf("failed to seed interaction: %v", err)
	}

	cookies := adminLogin(t, r, "root", "correct-horse")

	overview := adminGet(r, "/admin/api/overview", cookies)
	if overview.Code != http.StatusOK {
		t.Fatalf("overview failed: %d %s", overview.Code, overview.Body.String())
	}
	if !strings.Contains(overview.Body.String(), `"TotalVisitors":1`) {
		t.Fatalf("unexpected overview body: %s", overview.Body.String())
	}

	visitors := adminGet(r, "/admin/api/visitors", cookies)
	if visitors.Code != http.StatusOK || !strings.Contains(visitors.Body.String(), `"SessionCount":1`) {
		t.Fatalf("unexpected visitors body: %d %s", visitors.Code, visitors.Body.String())
	}

	sessionsResp := adminGet(r, "/admin/api/sessions", cookies)
	if sessionsResp.Code != http.StatusOK || !strings.Contains(sessionsResp.Body.String(), `"InteractionCount":1`) {
		t.Fatalf("unexpected sessions body: %d %s", sessionsResp.Code, sessionsResp.Body.String())
	}
}

func TestAdminResetSessionDuration(t *testing.T) {
	r, cleanup := setupTrackTest(t, "Berlin, Germany")
	defer cleanup()

	seedAdminUser(t, "root", "correct-horse")

	base := time.Now().UTC()
	end := base.Add(time.Minute)
	visitor := db.Visitor{UUID: "v1", IPAddress: "203.0.113.9", VisitDate: base}
	if err := db.DB.Create(&visitor).Error; err != nil {
		t.Fatalf("failed to seed visitor: %v", err)
	}
	session := db.VisitorSession{VisitorID: visitor.ID, SessionID: "S1", StartTime: base, EndTime: &end, DurationSeconds: 60}
	if err := db.DB.Create(&session).Error; err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}

	cookies := adminLogin(t, r, "root", "correct-horse")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/admin/api/sessions/%d/reset-duration", session.ID), nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("reset failed: %d %s", w.Code, w.Body.String())
	}

	var reloaded db.VisitorSession
	if err := db.DB.First(&reloaded, session.ID).Error; err != nil {
		t.Fatalf("failed to reload session: %v", err)
	}
	if reloaded.DurationSeconds != 0 || reloaded.EndTime != nil {
		t.Fatalf("expected reset session, got %+v", reloaded)
	}
}

func TestAdminContentCRUDOverHTTP(t *testing.T) {
	r, cleanup := setupTrackTest(t, "Berlin, Germany")
	defer cleanup()

	seedAdminUser(t, "root", "correct-horse")
	cookies := adminLogin(t, r, "root", "correct-horse")

	raw, _ := json.Marshal(gin.H{"title": "Hero A", "subtitle": "sub", "position": 1, "active": true})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/api/heroes", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("create hero failed: %d %s", w.Code, w.Body.String())
	}

	var count int64
	db.DB.Model(&db.HeroSection{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected one hero row, got %d", count)
	}

	list := adminGet(r, "/admin/api/heroes", cookies)
	if list.Code != http.StatusOK || !strings.Contains(list.Body.String(), "Hero A") {
		t.Fatalf("unexpected hero list: %d %s", list.Code, list.Body.String())
	}
}
