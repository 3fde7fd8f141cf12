package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/marketconnect/backend/internal/service"
)

type AdminHandler struct {
	admin service.AdminService
}

func NewAdminHandler(admin service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

func (h *AdminHandler) Dashboard(c echo.Context) error {
	dash, err := h.admin.Dashboard(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("admin dashboard: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	d := pageData(c, "Admin")
	d["Dashboard"] = dash
	return c.Render(http.StatusOK, "admin_dashboard", d)
}

type approveVendorRequest struct {
	VendorID uint64 `json:"vendorId"`
}

func (h *AdminHandler) ApproveVendor(c echo.Context) error {
	var req approveVendorRequest
	if err := c.Bind(&req); err != nil || req.VendorID == 0 {
		return c.JSON(http.StatusBadRequest, apiFailure("Invalid vendor ID"))
	}
	if err := h.admin.ApproveVendor(c.Request().Context(), req.VendorID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, apiFailure("Vendor not found"))
		}
		c.Logger().Errorf("approve vendor: %v", err)
		return c.JSON(http.StatusInternalServerError, apiFailure("Failed to approve vendor"))
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
