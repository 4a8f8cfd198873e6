package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubBlobStore struct {
	storeFn  func(data []byte, originalName string) (string, error)
	removeFn func(url string) error
}

func (s *stubBlobStore) Store(data []byte, originalName string) (string, error) {
	return s.storeFn(data, originalName)
}

func (s *stubBlobStore) RemoveByURL(url string) error {
	return s.removeFn(url)
}

func multipartRequest(t *testing.T, fieldName, fileName, content string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(fieldName, fileName)
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	_ = w.Close()

	req := httptest.NewRequest(http.MethodPost, "/v1/uploads", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req, httptest.NewRecorder()
}

func TestUploadHandler_Upload_Success(t *testing.T) {
	var gotName string
	var gotData []byte
	store := &stubBlobStore{
		storeFn: func(data []byte, originalName string) (string, error) {
			gotName, gotData = originalName, data
			return "/uploads/abc123.png", nil
		},
	}
	h := NewUploadHandler(store, zerolog.Nop())

	e := echo.New()
	req, rec := multipartRequest(t, "file", "logo.png", "png-bytes")
	c := e.NewContext(req, rec)

	if err := h.Upload(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotName != "logo.png" {
		t.Errorf("filename: got %q", gotName)
	}
	if string(gotData) != "png-bytes" {
		t.Errorf("content: got %q", gotData)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["url"] != "/uploads/abc123.png" {
		t.Errorf("url: got %v", resp["url"])
	}
}

func TestUploadHandler_Upload_NoFile(t *testing.T) {
	store := &stubBlobStore{
		storeFn: func([]byte, string) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	h := NewUploadHandler(store, zerolog.Nop())

	e := echo.New()
	// Wrong field name: the handler only reads "file".
	req, rec := multipartRequest(t, "attachment", "logo.png", "png-bytes")
	c := e.NewContext(req, rec)

	_ = h.Upload(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUploadHandler_Upload_StoreError(t *testing.T) {
	store := &stubBlobStore{
		storeFn: func([]byte, string) (string, error) {
			return "", errors.New("disk full")
		},
	}
	h := NewUploadHandler(store, zerolog.Nop())

	e := echo.New()
	req, rec := multipartRequest(t, "file", "logo.png", "png-bytes")
	c := e.NewContext(req, rec)

	_ = h.Upload(c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestUploadHandler_Remove_Success(t *testing.T) {
	var gotURL string
	store := &stubBlobStore{
		removeFn: func(url string) error {
			gotURL = url
			return nil
		},
	}
	h := NewUploadHandler(store, zerolog.Nop())

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodDelete, "/v1/uploads", strings.NewReader(`{"url":"/uploads/abc123.png"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Remove(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotURL != "/uploads/abc123.png" {
		t.Errorf("url: got %q", gotURL)
	}
}

func TestUploadHandler_Remove_MissingURL(t *testing.T) {
	store := &stubBlobStore{
		removeFn: func(string) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	h := NewUploadHandler(store, zerolog.Nop())

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodDelete, "/v1/uploads", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = h.Remove(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
