package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/marketconnect/backend/internal/model"
	"github.com/marketconnect/backend/internal/session"
)

func newContext(t *testing.T, method, target string, sess *session.Session) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if sess != nil {
		c.Set(ctxSessionKey, sess)
	}
	return c, rec
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestRequireLogin(t *testing.T) {
	m := NewAuthMiddleware(nil)

	t.Run("anonymous redirected to login", func(t *testing.T) {
		c, rec := newContext(t, http.MethodGet, "/vendor/dashboard", nil)
		if err := m.RequireLogin(okHandler)(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
			t.Fatalf("code=%d location=%q", rec.Code, rec.Header().Get("Location"))
		}
	})

	t.Run("logged in passes", func(t *testing.T) {
		c, rec := newContext(t, http.MethodGet, "/vendor/dashboard", &session.Session{UserID: 1})
		if err := m.RequireLogin(okHandler)(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("code=%d want 200", rec.Code)
		}
	})
}

func TestRequireRole(t *testing.T) {
	m := NewAuthMiddleware(nil)
	guard := m.RequireRole(model.UserTypeVendor)(okHandler)

	tests := []struct {
		name         string
		sess         *session.Session
		wantCode     int
		wantLocation string
	}{
		{"anonymous", nil, http.StatusFound, "/login"},
		{"wrong role", &session.Session{UserID: 1, UserType: model.UserTypeCustomer}, http.StatusFound, "/"},
		{"right role", &session.Session{UserID: 1, UserType: model.UserTypeVendor}, http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(t, http.MethodGet, "/vendor/orders", tt.sess)
			if err := guard(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != tt.wantCode {
				t.Fatalf("code=%d want %d", rec.Code, tt.wantCode)
			}
			if tt.wantLocation != "" && rec.Header().Get("Location") != tt.wantLocation {
				t.Fatalf("location=%q want %q", rec.Header().Get("Location"), tt.wantLocation)
			}
		})
	}
}

func TestRequireRoleJSON(t *testing.T) {
	m := NewAuthMiddleware(nil)
	guard := m.RequireRoleJSON(model.UserTypeAdmin)(okHandler)

	tests := []struct {
		name     string
		sess     *session.Session
		wantCode int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"wrong role", &session.Session{UserID: 1, UserType: model.UserTypeVendor}, http.StatusForbidden},
		{"right role", &session.Session{UserID: 1, UserType: model.UserTypeAdmin}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(t, http.MethodPost, "/api/admin/approve-vendor", tt.sess)
			if err := guard(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != tt.wantCode {
				t.Fatalf("code=%d want %d", rec.Code, tt.wantCode)
			}
		})
	}
}

func TestVerifyCSRF(t *testing.T) {
	m := NewAuthMiddleware(nil)
	guard := m.VerifyCSRF(okHandler)
	sess := &session.Session{UserID: 1, CSRFToken: "tok-123"}

	t.Run("get skips check", func(t *testing.T) {
		c, rec := newContext(t, http.MethodGet, "/vendor/orders", sess)
		if err := guard(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("code=%d want 200", rec.Code)
		}
	})

	t.Run("post without token rejected", func(t *testing.T) {
		c, rec := newContext(t, http.MethodPost, "/vendor/orders", sess)
		if err := guard(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusForbidden {
			t.Fatalf("code=%d want 403", rec.Code)
		}
	})

	t.Run("post with form token passes", func(t *testing.T) {
		e := echo.New()
		form := strings.NewReader("csrf_token=tok-123")
		req := httptest.NewRequest(http.MethodPost, "/vendor/orders", form)
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set(ctxSessionKey, sess)
		if err := guard(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("code=%d want 200", rec.Code)
		}
	})

	t.Run("post with header token passes", func(t *testing.T) {
		c, rec := newContext(t, http.MethodPost, "/api/favorites/toggle", sess)
		c.Request().Header.Set("X-CSRF-Token", "tok-123")
		if err := guard(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("code=%d want 200", rec.Code)
		}
	})

	t.Run("wrong token rejected", func(t *testing.T) {
		c, rec := newContext(t, http.MethodPost, "/vendor/orders", sess)
		c.Request().Header.Set("X-CSRF-Token", "tok-999")
		if err := guard(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusForbidden {
			t.Fatalf("code=%d want 403", rec.Code)
		}
	})
}
