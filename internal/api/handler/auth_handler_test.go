package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/saddam-69/zcardgen/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, name, email, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
	logoutFn   func(ctx context.Context, jti string, expiresAt time.Time) error
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	return s.registerFn(ctx, name, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	return s.logoutFn(ctx, jti, expiresAt)
}

func newAuthContext(body, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, name, email, password string) (*domain.User, error) {
			if name != "Alice" || email != "alice@example.com" {
				t.Fatalf("unexpected args: %s %s", name, email)
			}
			return &domain.User{ID: "user-1", Name: name, Email: email}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(`{"name":"Alice","email":"alice@example.com","password":"secret1"}`, "/auth/register")
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["email"] != "alice@example.com" {
		t.Errorf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["passwordHash"]; leaked {
		t.Error("password hash must never be serialized")
	}
}

func TestAuthHandler_Register_UserExists(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, string, string, string) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(`{"name":"Bob","email":"bob@example.com","password":"secret1"}`, "/auth/register")
	_ = h.Register(c)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, string, string, string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(`{"name":"Bob","email":"bob@example.com","password":"abc"}`, "/auth/register")
	_ = h.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_RepoErrorNotLeaked(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, string, string, string) (*domain.User, error) {
			return nil, errors.New("insert user: pq: connection refused")
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(`{"name":"Bob","email":"bob@example.com","password":"secret1"}`, "/auth/register")
	err := h.Register(c)

	// Unknown failures propagate to the central error handler instead of
	// being rendered here with the raw cause.
	if err == nil {
		t.Fatal("expected the error to propagate")
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Fatalf("driver detail leaked to the client: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			if email != "alice@example.com" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.User{ID: "user-1", Email: email}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(`{"email":"alice@example.com","password":"secret1"}`, "/auth/login")
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(`{"email":"alice@example.com","password":"wrong1"}`, "/auth/login")
	_ = h.Login(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_UserNotFound(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrUserNotFound
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(`{"email":"ghost@example.com","password":"secret1"}`, "/auth/login")
	_ = h.Login(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_RepoErrorNotUnauthorized(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, errors.New("find user: dial tcp: connection refused")
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(`{"email":"alice@example.com","password":"secret1"}`, "/auth/login")
	err := h.Login(c)

	// A storage outage is not an authentication verdict.
	if err == nil {
		t.Fatal("expected the error to propagate")
	}
	if rec.Code == http.StatusUnauthorized {
		t.Fatal("storage failure must not map to 401")
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Fatalf("driver detail leaked to the client: %s", rec.Body.String())
	}
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	var gotJTI string
	var gotExpiry time.Time
	stub := &stubAuthService{
		logoutFn: func(_ context.Context, jti string, expiresAt time.Time) error {
			gotJTI, gotExpiry = jti, expiresAt
			return nil
		},
	}
	h := NewAuthHandler(stub)

	expiry := time.Now().Add(time.Hour)
	c, rec := newAuthContext(``, "/auth/logout")
	c.Set("jti", "jti-1")
	c.Set("token_expires", expiry)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotJTI != "jti-1" {
		t.Errorf("jti: got %q", gotJTI)
	}
	if !gotExpiry.Equal(expiry) {
		t.Errorf("expiry: got %v, want %v", gotExpiry, expiry)
	}
}
