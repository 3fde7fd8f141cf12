package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	appmw "github.com/marketconnect/backend/internal/middleware"
	"github.com/marketconnect/backend/internal/model"
	"github.com/marketconnect/backend/internal/service"
	"github.com/marketconnect/backend/internal/session"
	"github.com/marketconnect/backend/internal/storage"
)

type VendorHandler struct {
	vendors  service.VendorService
	products service.ProductService
	orders   service.OrderService
	convs    service.ConversationService
	catalog  service.CatalogService
	uploader *storage.Uploader
}

func NewVendorHandler(
	vendors service.VendorService,
	products service.ProductService,
	orders service.OrderService,
	convs service.ConversationService,
	catalog service.CatalogService,
	uploader *storage.Uploader,
) *VendorHandler {
	return &VendorHandler{
		vendors:  vendors,
		products: products,
		orders:   orders,
		convs:    convs,
		catalog:  catalog,
		uploader: uploader,
	}
}

// profile resolves the vendor profile behind the logged-in session. The role
// gate runs before every vendor route, so a missing profile is a data bug.
func (h *VendorHandler) profile(c echo.Context) (*model.VendorProfile, *session.Session, error) {
	sess, ok := appmw.CurrentSession(c)
	if !ok {
		return nil, nil, echo.NewHTTPError(http.StatusUnauthorized)
	}
	vp, err := h.vendors.ProfileByUser(c.Request().Context(), sess.UserID)
	if err != nil {
		c.Logger().Errorf("vendor profile for user %d: %v", sess.UserID, err)
		return nil, nil, echo.NewHTTPError(http.StatusInternalServerError)
	}
	return vp, sess, nil
}

func (h *VendorHandler) Dashboard(c echo.Context) error {
	vp, _, err := h.profile(c)
	if err != nil {
		return err
	}
	dash, err := h.vendors.Dashboard(c.Request().Context(), vp.ID)
	if err != nil {
		c.Logger().Errorf("vendor dashboard: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	d := pageData(c, "Dashboard")
	d["Vendor"] = vp
	d["Dashboard"] = dash
	return c.Render(http.StatusOK, "vendor_dashboard", d)
}

func (h *VendorHandler) Products(c echo.Context) error {
	vp, _, err := h.profile(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	list, err := h.products.ListMine(ctx, vp.ID)
	if err != nil {
		c.Logger().Errorf("list products: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	cats, err := h.catalog.Categories(ctx)
	if err != nil {
		c.Logger().Errorf("list categories: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	d := pageData(c, "My Products")
	d["Products"] = list
	d["Categories"] = cats
	return c.Render(http.StatusOK, "vendor_products", d)
}

func (h *VendorHandler) ProductsAction(c echo.Context) error {
	vp, _, err := h.profile(c)
	if err != nil {
		return err
	}
	const page = "/vendor/products"
	ctx := c.Request().Context()

	switch c.FormValue("action") {
	case "add":
		in := productInputFromForm(c)
		p, err := h.products.Add(ctx, vp.ID, in)
		if err != nil {
			return h.productError(c, page, err)
		}
		if msg := h.attachImage(c, vp.ID, p.ID); msg != "" {
			return redirectWithError(c, page, msg)
		}
		return redirectWithMessage(c, page, "Product added")

	case "update":
		productID, perr := formUint(c, "product_id")
		if perr != nil {
			return redirectWithError(c, page, "Invalid product")
		}
		in := productInputFromForm(c)
		in.IsAvailable = c.FormValue("is_available") == "1" || c.FormValue("is_available") == "on"
		if err := h.products.Update(ctx, vp.ID, productID, in); err != nil {
			return h.productError(c, page, err)
		}
		if msg := h.attachImage(c, vp.ID, productID); msg != "" {
			return redirectWithError(c, page, msg)
		}
		return redirectWithMessage(c, page, "Product updated")

	case "delete":
		productID, perr := formUint(c, "product_id")
		if perr != nil {
			return redirectWithError(c, page, "Invalid product")
		}
		if err := h.products.Delete(ctx, vp.ID, productID); err != nil {
			return h.productError(c, page, err)
		}
		return redirectWithMessage(c, page, "Product deleted")
	}
	return redirectWithError(c, page, "Unknown action")
}

// attachImage uploads the optional form file and stores its URL on the
// product. Empty return means nothing to do or success.
func (h *VendorHandler) attachImage(c echo.Context, vendorID, productID uint64) string {
	fh, err := c.FormFile("image")
	if err != nil {
		return ""
	}
	src, err := fh.Open()
	if err != nil {
		c.Logger().Errorf("open upload: %v", err)
		return "Failed to read the uploaded image"
	}
	defer src.Close()

	ctx := c.Request().Context()
	url, err := h.uploader.Upload(ctx, "products", fh.Filename, fh.Header.Get("Content-Type"), src)
	if err != nil {
		if errors.Is(err, storage.ErrDisabled) {
			return "Image uploads are not configured"
		}
		c.Logger().Errorf("upload image: %v", err)
		return "Failed to upload the image"
	}
	if err := h.products.SetImage(ctx, vendorID, productID, url); err != nil {
		c.Logger().Errorf("set image url: %v", err)
		return "Failed to save the image"
	}
	return ""
}

func (h *VendorHandler) productError(c echo.Context, page string, err error) error {
	switch {
	case service.IsValidation(err):
		return redirectWithError(c, page, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return redirectWithError(c, page, "Product not found")
	default:
		c.Logger().Errorf("product action: %v", err)
		return redirectWithError(c, page, "Something went wrong. Please try again.")
	}
}

func productInputFromForm(c echo.Context) service.ProductInput {
	price, _ := strconv.ParseFloat(c.FormValue("price"), 64)
	stock, _ := strconv.Atoi(c.FormValue("stock_quantity"))
	categoryID, _ := strconv.ParseUint(c.FormValue("category_id"), 10, 64)
	return service.ProductInput{
		ProductName:   c.FormValue("product_name"),
		Description:   c.FormValue("description"),
		Price:         price,
		Unit:          c.FormValue("unit"),
		StockQuantity: stock,
		CategoryID:    categoryID,
	}
}

type orderStats struct {
	Total     int64
	Pending   int64
	Confirmed int64
	Ready     int64
	Completed int64
	Cancelled int64
}

var orderStatusChoices = []model.OrderStatus{
	model.OrderStatusPending,
	model.OrderStatusConfirmed,
	model.OrderStatusReady,
	model.OrderStatusCompleted,
	model.OrderStatusCancelled,
}

func (h *VendorHandler) Orders(c echo.Context) error {
	vp, _, err := h.profile(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	statusFilter := c.QueryParam("status")
	search := c.QueryParam("search")

	d := pageData(c, "Orders")
	list, err := h.orders.Search(ctx, vp.ID, statusFilter, search)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			d["Error"] = "Unknown status filter"
		} else {
			c.Logger().Errorf("search orders: %v", err)
			return echo.NewHTTPError(http.StatusInternalServerError)
		}
	}
	counts, err := h.orders.StatusCounts(ctx, vp.ID)
	if err != nil {
		c.Logger().Errorf("order counts: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	stats := orderStats{
		Pending:   counts[model.OrderStatusPending],
		Confirmed: counts[model.OrderStatusConfirmed],
		Ready:     counts[model.OrderStatusReady],
		Completed: counts[model.OrderStatusCompleted],
		Cancelled: counts[model.OrderStatusCancelled],
	}
	for _, n := range counts {
		stats.Total += n
	}

	d["Orders"] = list
	d["Stats"] = stats
	d["Statuses"] = orderStatusChoices
	d["StatusFilter"] = statusFilter
	d["Search"] = search
	return c.Render(http.StatusOK, "vendor_orders", d)
}

func (h *VendorHandler) OrdersAction(c echo.Context) error {
	vp, _, err := h.profile(c)
	if err != nil {
		return err
	}
	const page = "/vendor/orders"
	if c.FormValue("action") != "update_status" {
		return redirectWithError(c, page, "Unknown action")
	}
	orderID, perr := formUint(c, "order_id")
	if perr != nil {
		return redirectWithError(c, page, "Invalid order")
	}
	err = h.orders.UpdateStatus(c.Request().Context(), orderID, c.FormValue("status"), vp.ID)
	switch {
	case err == nil:
		return redirectWithMessage(c, page, fmt.Sprintf("Order #%d updated", orderID))
	case errors.Is(err, service.ErrInvalidStatus):
		return redirectWithError(c, page, "Unknown order status")
	case errors.Is(err, service.ErrIllegalTransition):
		return redirectWithError(c, page, "That status change is not allowed")
	case errors.Is(err, service.ErrNotFound):
		return redirectWithError(c, page, "Order not found")
	default:
		c.Logger().Errorf("update order status: %v", err)
		return redirectWithError(c, page, "Something went wrong. Please try again.")
	}
}

func (h *VendorHandler) Messages(c echo.Context) error {
	vp, sess, err := h.profile(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	d := pageData(c, "Messages")

	// Load the selected thread first so its messages are marked read before
	// the unread badges are computed.
	var selectedID uint64
	if raw := c.QueryParam("conv"); raw != "" {
		selectedID, _ = strconv.ParseUint(raw, 10, 64)
	}
	if selectedID != 0 {
		viewer := service.Participant{UserID: sess.UserID, VendorID: vp.ID}
		msgs, err := h.convs.LoadMessages(ctx, selectedID, viewer)
		switch {
		case err == nil:
			d["Messages"] = msgs
		case errors.Is(err, service.ErrNotFound):
			d["Error"] = "Conversation not found"
			selectedID = 0
		case errors.Is(err, service.ErrForbidden):
			d["Error"] = "You are not part of that conversation"
			selectedID = 0
		default:
			c.Logger().Errorf("load messages: %v", err)
			return echo.NewHTTPError(http.StatusInternalServerError)
		}
	}

	convs, totalUnread, err := h.convs.VendorInbox(ctx, vp.ID, sess.UserID)
	if err != nil {
		c.Logger().Errorf("vendor inbox: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	d["Conversations"] = convs
	d["TotalUnread"] = totalUnread
	if selectedID != 0 {
		for i := range convs {
			if convs[i].ID == selectedID {
				d["Selected"] = &convs[i]
				break
			}
		}
	}
	return c.Render(http.StatusOK, "vendor_messages", d)
}

func (h *VendorHandler) MessagesAction(c echo.Context) error {
	vp, sess, err := h.profile(c)
	if err != nil {
		return err
	}
	if c.FormValue("action") != "send" {
		return redirectWithError(c, "/vendor/messages", "Unknown action")
	}
	convID, perr := formUint(c, "conversation_id")
	if perr != nil {
		return redirectWithError(c, "/vendor/messages", "Invalid conversation")
	}
	page := fmt.Sprintf("/vendor/messages?conv=%d", convID)
	viewer := service.Participant{UserID: sess.UserID, VendorID: vp.ID}
	err = h.convs.SendMessage(c.Request().Context(), convID, viewer, c.FormValue("message"))
	switch {
	case err == nil:
		return c.Redirect(http.StatusFound, page)
	case service.IsValidation(err):
		return redirectWithError(c, page, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return redirectWithError(c, "/vendor/messages", "Conversation not found")
	case errors.Is(err, service.ErrForbidden):
		return redirectWithError(c, "/vendor/messages", "You are not part of that conversation")
	default:
		c.Logger().Errorf("send message: %v", err)
		return redirectWithError(c, page, "Something went wrong. Please try again.")
	}
}

func formUint(c echo.Context, name string) (uint64, error) {
	v, err := strconv.ParseUint(c.FormValue(name), 10, 64)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return v, nil
}
