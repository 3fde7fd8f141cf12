package handler

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/marketconnect/backend/internal/service"
)

type CatalogHandler struct {
	catalog service.CatalogService
}

func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) Home(c echo.Context) error {
	ctx := c.Request().Context()
	vendors, err := h.catalog.ListVendors(ctx)
	if err != nil {
		c.Logger().Errorf("list vendors: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	cats, err := h.catalog.Categories(ctx)
	if err != nil {
		c.Logger().Errorf("list categories: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	raw, err := json.Marshal(vendors)
	if err != nil {
		return err
	}
	d := pageData(c, "Home")
	d["Vendors"] = vendors
	d["Categories"] = cats
	d["VendorsJSON"] = template.JS(raw)
	return c.Render(http.StatusOK, "home", d)
}

// The vendor-details payload keeps the snake_case field names the home page
// script consumes.
type vendorPayload struct {
	VendorID      uint64   `json:"vendor_id"`
	BusinessName  string   `json:"business_name"`
	MarketName    string   `json:"market_name"`
	StallNumber   string   `json:"stall_number"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	RatingAverage float64  `json:"rating_average"`
	TotalReviews  int      `json:"total_reviews"`
	LocationLat   *float64 `json:"location_lat"`
	LocationLng   *float64 `json:"location_lng"`
	IsFeatured    bool     `json:"is_featured"`
	IsVerified    bool     `json:"is_verified"`
	FullName      string   `json:"full_name"`
	Email         string   `json:"email"`
	PhoneNumber   string   `json:"phone_number"`
}

type productPayload struct {
	ProductID     uint64  `json:"product_id"`
	ProductName   string  `json:"product_name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Unit          string  `json:"unit"`
	StockQuantity int     `json:"stock_quantity"`
	ImageURL      *string `json:"image_url"`
}

type photoPayload struct {
	PhotoURL string  `json:"photo_url"`
	Caption  *string `json:"caption"`
}

type vendorDetailsResponse struct {
	Success  bool             `json:"success"`
	Vendor   vendorPayload    `json:"vendor"`
	Products []productPayload `json:"products"`
	Photos   []photoPayload   `json:"photos"`
	Stats    struct {
		TotalProducts int `json:"total_products"`
		TotalPhotos   int `json:"total_photos"`
	} `json:"stats"`
}

func apiFailure(message string) echo.Map {
	return echo.Map{"success": false, "message": message}
}

func (h *CatalogHandler) VendorDetails(c echo.Context) error {
	id, err := strconv.ParseUint(c.QueryParam("vendor_id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, apiFailure("Invalid vendor ID"))
	}
	det, err := h.catalog.VendorDetails(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, apiFailure("Vendor not found"))
		}
		c.Logger().Errorf("vendor details: %v", err)
		return c.JSON(http.StatusInternalServerError, apiFailure("Failed to load vendor details"))
	}

	resp := vendorDetailsResponse{
		Success: true,
		Vendor: vendorPayload{
			VendorID:      det.Vendor.ID,
			BusinessName:  det.Vendor.BusinessName,
			MarketName:    det.Vendor.MarketName,
			StallNumber:   det.Vendor.StallNumber,
			Category:      det.Vendor.Category,
			Description:   det.Vendor.Description,
			RatingAverage: det.Vendor.RatingAverage,
			TotalReviews:  det.Vendor.TotalReviews,
			LocationLat:   det.Vendor.LocationLat,
			LocationLng:   det.Vendor.LocationLng,
			IsFeatured:    det.Vendor.IsFeatured,
			IsVerified:    det.Vendor.IsVerified,
			FullName:      det.Vendor.FullName,
			Email:         det.Vendor.Email,
			PhoneNumber:   det.Vendor.PhoneNumber,
		},
		Products: make([]productPayload, 0, len(det.Products)),
		Photos:   make([]photoPayload, 0, len(det.Photos)),
	}
	for _, p := range det.Products {
		resp.Products = append(resp.Products, productPayload{
			ProductID:     p.ID,
			ProductName:   p.ProductName,
			Description:   p.Description,
			Price:         p.Price,
			Unit:          p.Unit,
			StockQuantity: p.StockQuantity,
			ImageURL:      p.ImageURL,
		})
	}
	for _, ph := range det.Photos {
		resp.Photos = append(resp.Photos, photoPayload{PhotoURL: ph.PhotoURL, Caption: ph.Caption})
	}
	resp.Stats.TotalProducts = len(resp.Products)
	resp.Stats.TotalPhotos = len(resp.Photos)
	return c.JSON(http.StatusOK, resp)
}
