package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"bdconsulting/internal/config"
	"bdconsulting/internal/entity"
	"bdconsulting/internal/model/sql"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newContentHandler(t *testing.T) (*HTTPHandler, *sql.GormRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.DbContent{}); err != nil {
		t.Fatalf("migrate schema: %v", err)
	}
	repo := sql.NewGormRepository(db)

	h, err := NewHTTPHandler(config.Config{JWTSecret: "content-test-secret"}, repo, nil, nil)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	return h, repo
}

func TestUpsertContentTrimsTriple(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, repo := newContentHandler(t)

	body := bytes.NewBufferString(`{"page":" home ","section":" hero ","key":" title ","value":"Welcome","type":"text"}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/content", body)
	c.Request.Header.Set("Content-Type", "application/json")

	h.UpsertContent(c)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	items, err := repo.ListContentByPage(context.Background(), "home")
	if err != nil {
		t.Fatalf("list content: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected the padded triple to land on page %q, got %d rows", "home", len(items))
	}
	if items[0].Page != "home" || items[0].Section != "hero" || items[0].Key != "title" {
		t.Errorf("stored triple = (%q, %q, %q), want trimmed values", items[0].Page, items[0].Section, items[0].Key)
	}
}

func TestUpsertContentRejectsBlankTriple(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, _ := newContentHandler(t)

	body := bytes.NewBufferString(`{"page":"  ","section":"hero","key":"title","value":"Welcome"}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/content", body)
	c.Request.Header.Set("Content-Type", "application/json")

	h.UpsertContent(c)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
