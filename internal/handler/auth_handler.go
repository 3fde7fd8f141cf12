package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	appmw "github.com/marketconnect/backend/internal/middleware"
	"github.com/marketconnect/backend/internal/model"
	"github.com/marketconnect/backend/internal/service"
	"github.com/marketconnect/backend/internal/session"
)

type AuthHandler struct {
	auth         service.AuthService
	catalog      service.CatalogService
	store        *session.Store
	cookieSecure bool
}

func NewAuthHandler(auth service.AuthService, catalog service.CatalogService, store *session.Store, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, catalog: catalog, store: store, cookieSecure: cookieSecure}
}

func homeFor(t model.UserType) string {
	switch t {
	case model.UserTypeAdmin:
		return "/admin/dashboard"
	case model.UserTypeVendor:
		return "/vendor/dashboard"
	default:
		return "/"
	}
}

func (h *AuthHandler) ShowLogin(c echo.Context) error {
	if sess, ok := appmw.CurrentSession(c); ok {
		return c.Redirect(http.StatusFound, homeFor(sess.UserType))
	}
	d := pageData(c, "Login")
	d["Email"] = ""
	if c.QueryParam("registered") == "1" {
		d["Message"] = "Registration successful! Please log in."
	}
	return c.Render(http.StatusOK, "login", d)
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	user, err := h.auth.Login(ctx, c.FormValue("email"), c.FormValue("password"))
	if err != nil {
		msg := "Invalid email or password"
		switch {
		case service.IsValidation(err):
			msg = err.Error()
		case errors.Is(err, service.ErrInvalidCredentials):
		default:
			c.Logger().Errorf("login: %v", err)
			msg = "Something went wrong. Please try again."
		}
		d := pageData(c, "Login")
		d["Email"] = c.FormValue("email")
		d["Error"] = msg
		return c.Render(http.StatusOK, "login", d)
	}

	id, err := h.store.Create(ctx, &session.Session{
		UserID:   user.ID,
		UserType: user.UserType,
		FullName: user.FullName,
		Email:    user.Email,
	})
	if err != nil {
		c.Logger().Errorf("session create: %v", err)
		d := pageData(c, "Login")
		d["Email"] = c.FormValue("email")
		d["Error"] = "Something went wrong. Please try again."
		return c.Render(http.StatusOK, "login", d)
	}
	h.setSessionCookie(c, id, int(h.store.TTL().Seconds()))
	return c.Redirect(http.StatusFound, homeFor(user.UserType))
}

func (h *AuthHandler) ShowRegister(c echo.Context) error {
	if sess, ok := appmw.CurrentSession(c); ok {
		return c.Redirect(http.StatusFound, homeFor(sess.UserType))
	}
	return c.Render(http.StatusOK, "register", h.registerData(c, service.RegisterInput{}, ""))
}

func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()
	in := service.RegisterInput{
		UserType:        c.FormValue("user_type"),
		FullName:        c.FormValue("full_name"),
		Email:           c.FormValue("email"),
		PhoneNumber:     c.FormValue("phone_number"),
		Password:        c.FormValue("password"),
		ConfirmPassword: c.FormValue("confirm_password"),
		BusinessName:    c.FormValue("business_name"),
		MarketName:      c.FormValue("market_name"),
		Category:        c.FormValue("category"),
	}
	if _, err := h.auth.Register(ctx, in); err != nil {
		msg := "Something went wrong. Please try again."
		switch {
		case service.IsValidation(err):
			msg = err.Error()
		case errors.Is(err, service.ErrEmailTaken):
			msg = "Email address is already registered"
		default:
			c.Logger().Errorf("register: %v", err)
		}
		return c.Render(http.StatusOK, "register", h.registerData(c, in, msg))
	}
	return c.Redirect(http.StatusFound, "/login?registered=1")
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if id := appmw.CurrentSessionID(c); id != "" {
		if err := h.store.Destroy(c.Request().Context(), id); err != nil {
			c.Logger().Errorf("session destroy: %v", err)
		}
	}
	h.setSessionCookie(c, "", -1)
	return c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) registerData(c echo.Context, form service.RegisterInput, errMsg string) echo.Map {
	d := pageData(c, "Register")
	d["Form"] = form
	if errMsg != "" {
		d["Error"] = errMsg
	}
	cats, err := h.catalog.Categories(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("categories: %v", err)
	}
	d["Categories"] = cats
	return d
}

func (h *AuthHandler) setSessionCookie(c echo.Context, value string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
