package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/marketconnect/backend/internal/model"
	"github.com/marketconnect/backend/internal/session"
)

const (
	ctxSessionKey   = "session"
	ctxSessionIDKey = "sessionID"
)

type AuthMiddleware struct {
	store *session.Store
}

func NewAuthMiddleware(store *session.Store) *AuthMiddleware {
	return &AuthMiddleware{store: store}
}

// LoadSession resolves the session cookie, if any, and hangs the session on
// the request context. It never fails the request; guards below decide.
func (m *AuthMiddleware) LoadSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			return next(c)
		}
		sess, err := m.store.Get(c.Request().Context(), cookie.Value)
		if err != nil {
			if !errors.Is(err, session.ErrNotFound) {
				c.Logger().Errorf("session load: %v", err)
			}
			return next(c)
		}
		c.Set(ctxSessionKey, sess)
		c.Set(ctxSessionIDKey, cookie.Value)
		return next(c)
	}
}

// RequireLogin redirects anonymous page requests to the login form.
func (m *AuthMiddleware) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := CurrentSession(c); !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		return next(c)
	}
}

// RequireRole sends logged-in users of the wrong type back to the home page.
func (m *AuthMiddleware) RequireRole(role model.UserType) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := CurrentSession(c)
			if !ok {
				return c.Redirect(http.StatusFound, "/login")
			}
			if sess.UserType != role {
				return c.Redirect(http.StatusFound, "/")
			}
			return next(c)
		}
	}
}

// RequireRoleJSON is the API variant: 401/403 payloads instead of redirects.
func (m *AuthMiddleware) RequireRoleJSON(role model.UserType) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := CurrentSession(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}
			if sess.UserType != role {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// VerifyCSRF checks the per-session token on mutating form posts.
func (m *AuthMiddleware) VerifyCSRF(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Method == http.MethodGet || c.Request().Method == http.MethodHead {
			return next(c)
		}
		sess, ok := CurrentSession(c)
		if !ok {
			return next(c)
		}
		token := c.FormValue("csrf_token")
		if token == "" {
			token = c.Request().Header.Get("X-CSRF-Token")
		}
		if token != sess.CSRFToken {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "invalid_csrf_token"})
		}
		return next(c)
	}
}

func CurrentSession(c echo.Context) (*session.Session, bool) {
	sess, ok := c.Get(ctxSessionKey).(*session.Session)
	return sess, ok && sess != nil
}

func CurrentSessionID(c echo.Context) string {
	id, _ := c.Get(ctxSessionIDKey).(string)
	return id
}
