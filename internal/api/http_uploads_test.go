package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bdconsulting/internal/config"
	"bdconsulting/internal/storage"

	"github.com/gin-gonic/gin"
)

func newUploadHandler(t *testing.T) (*HTTPHandler, string) {
	t.Helper()

	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("new local storage: %v", err)
	}
	h, err := NewHTTPHandler(config.Config{JWTSecret: "upload-test-secret"}, nil, store, nil)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	return h, dir
}

func performUpload(t *testing.T, h *HTTPHandler, filename, payload string) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(payload)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.WriteField("category", "blog"); err != nil {
		t.Fatalf("write category field: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/uploads", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.Request = req

	h.UploadMedia(c)
	return w
}

func TestUploadMediaRepeatedFilenameKeepsBothFiles(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, dir := newUploadHandler(t)

	first := performUpload(t, h, "photo.png", "first image bytes")
	if first.Code != http.StatusCreated {
		t.Fatalf("first upload status = %d, body %s", first.Code, first.Body.String())
	}
	second := performUpload(t, h, "photo.png", "second image bytes")
	if second.Code != http.StatusCreated {
		t.Fatalf("second upload status = %d, body %s", second.Code, second.Body.String())
	}

	var firstResp, secondResp struct {
		Path string `json:"path"`
		URL  string `json:"url"`
	}
	if err := json.Unmarshal(first.Body.Bytes(), &firstResp); err != nil {
		t.Fatalf("decode first response: %v", err)
	}
	if err := json.Unmarshal(second.Body.Bytes(), &secondResp); err != nil {
		t.Fatalf("decode second response: %v", err)
	}

	if firstResp.Path == secondResp.Path {
		t.Fatalf("both uploads stored at %q, same-name files must not collide", firstResp.Path)
	}
	for _, p := range []string{firstResp.Path, secondResp.Path} {
		if !strings.HasPrefix(p, "blog/") {
			t.Errorf("path %q missing category prefix", p)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(firstResp.Path)))
	if err != nil {
		t.Fatalf("read first upload back: %v", err)
	}
	if string(data) != "first image bytes" {
		t.Errorf("first upload content = %q, earlier file was overwritten", data)
	}
}
