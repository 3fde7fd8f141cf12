package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	appmw "github.com/marketconnect/backend/internal/middleware"
)

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error errorPayload `json:"error"`
}

func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: errorPayload{
			Code:    code,
			Message: message,
		},
	}
}

// pageData seeds the common template keys: title, the viewer's session (when
// logged in) and flash messages carried over a redirect.
func pageData(c echo.Context, title string) echo.Map {
	d := echo.Map{"Title": title}
	if sess, ok := appmw.CurrentSession(c); ok {
		d["Session"] = sess
		d["CSRFToken"] = sess.CSRFToken
	}
	if msg := c.QueryParam("msg"); msg != "" {
		d["Message"] = msg
	}
	if errMsg := c.QueryParam("err"); errMsg != "" {
		d["Error"] = errMsg
	}
	return d
}

func redirectWithMessage(c echo.Context, path, msg string) error {
	return c.Redirect(http.StatusFound, path+sep(path)+"msg="+url.QueryEscape(msg))
}

func redirectWithError(c echo.Context, path, msg string) error {
	return c.Redirect(http.StatusFound, path+sep(path)+"err="+url.QueryEscape(msg))
}

func sep(path string) string {
	if strings.Contains(path, "?") {
		return "&"
	}
	return "?"
}
