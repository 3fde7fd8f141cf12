package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRendererParsesEmbeddedTemplates(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("renderer init: %v", err)
	}
	for _, name := range []string{"home", "login", "register", "vendor_dashboard", "vendor_products", "vendor_orders", "vendor_messages", "admin_dashboard"} {
		if r.templates.Lookup(name) == nil {
			t.Fatalf("template %q not defined", name)
		}
	}
}

func TestRendererExecutesLogin(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("renderer init: %v", err)
	}
	var buf bytes.Buffer
	data := echo.Map{"Title": "Login", "Email": "", "Error": "Invalid email or password"}
	if err := r.Render(&buf, "login", data, nil); err != nil {
		t.Fatalf("render login: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Invalid email or password") {
		t.Fatalf("error message not rendered")
	}
	if !strings.Contains(out, `action="/login"`) {
		t.Fatalf("login form missing")
	}
}
