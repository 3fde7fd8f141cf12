package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	appmw "github.com/marketconnect/backend/internal/middleware"
	"github.com/marketconnect/backend/internal/model"
	"github.com/marketconnect/backend/internal/repository"
	"github.com/marketconnect/backend/internal/service"
	"github.com/marketconnect/backend/internal/session"
	"gorm.io/gorm"
)

// CustomerHandler serves the JSON endpoints the customer-facing pages call.
type CustomerHandler struct {
	customers repository.CustomerRepository
	orders    service.OrderService
	convs     service.ConversationService
	favorites service.FavoriteService
}

func NewCustomerHandler(
	customers repository.CustomerRepository,
	orders service.OrderService,
	convs service.ConversationService,
	favorites service.FavoriteService,
) *CustomerHandler {
	return &CustomerHandler{customers: customers, orders: orders, convs: convs, favorites: favorites}
}

func (h *CustomerHandler) profile(c echo.Context) (*model.CustomerProfile, *session.Session, error) {
	sess, ok := appmw.CurrentSession(c)
	if !ok {
		return nil, nil, c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "login required"))
	}
	cp, err := h.customers.FindByUserID(c.Request().Context(), sess.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, c.JSON(http.StatusForbidden, NewErrorResponse("forbidden", "customer profile required"))
		}
		c.Logger().Errorf("customer profile: %v", err)
		return nil, nil, c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to load profile"))
	}
	return cp, sess, nil
}

type placeOrderRequest struct {
	VendorID        uint64  `json:"vendorId"`
	TotalAmount     float64 `json:"totalAmount"`
	DeliveryAddress string  `json:"deliveryAddress"`
	Notes           string  `json:"notes"`
}

func (h *CustomerHandler) PlaceOrder(c echo.Context) error {
	cp, _, err := h.profile(c)
	if cp == nil {
		return err
	}
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if req.VendorID == 0 {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "vendorId is required"))
	}
	order, err := h.orders.Place(c.Request().Context(), cp.ID, req.VendorID, req.TotalAmount, req.DeliveryAddress, req.Notes)
	if err != nil {
		if service.IsValidation(err) {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
		}
		c.Logger().Errorf("place order: %v", err)
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to place order"))
	}
	return c.JSON(http.StatusCreated, order)
}

func (h *CustomerHandler) ListOrders(c echo.Context) error {
	cp, _, err := h.profile(c)
	if cp == nil {
		return err
	}
	list, err := h.orders.ListByCustomer(c.Request().Context(), cp.ID)
	if err != nil {
		c.Logger().Errorf("list customer orders: %v", err)
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch orders"))
	}
	return c.JSON(http.StatusOK, echo.Map{"orders": list})
}

type startConversationRequest struct {
	VendorID uint64 `json:"vendorId"`
}

func (h *CustomerHandler) StartConversation(c echo.Context) error {
	cp, _, err := h.profile(c)
	if cp == nil {
		return err
	}
	var req startConversationRequest
	if err := c.Bind(&req); err != nil || req.VendorID == 0 {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "vendorId is required"))
	}
	cv, err := h.convs.StartConversation(c.Request().Context(), req.VendorID, cp.ID)
	if err != nil {
		c.Logger().Errorf("start conversation: %v", err)
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to start conversation"))
	}
	return c.JSON(http.StatusOK, cv)
}

type messagePayload struct {
	MessageID   uint64 `json:"messageId"`
	SenderID    uint64 `json:"senderId"`
	SenderName  string `json:"senderName"`
	MessageText string `json:"messageText"`
	IsRead      bool   `json:"isRead"`
	CreatedAt   string `json:"createdAt"`
}

func (h *CustomerHandler) ListMessages(c echo.Context) error {
	cp, sess, err := h.profile(c)
	if cp == nil {
		return err
	}
	convID, perr := strconv.ParseUint(c.Param("id"), 10, 64)
	if perr != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid conversation id"))
	}
	viewer := service.Participant{UserID: sess.UserID, CustomerID: cp.ID}
	msgs, err := h.convs.LoadMessages(c.Request().Context(), convID, viewer)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "conversation not found"))
		case errors.Is(err, service.ErrForbidden):
			return c.JSON(http.StatusForbidden, NewErrorResponse("forbidden", "not a participant"))
		}
		c.Logger().Errorf("load messages: %v", err)
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch messages"))
	}
	out := make([]messagePayload, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, messagePayload{
			MessageID:   m.ID,
			SenderID:    m.SenderID,
			SenderName:  m.SenderName,
			MessageText: m.MessageText,
			IsRead:      m.IsRead,
			CreatedAt:   m.CreatedAt.Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"messages": out})
}

type sendMessageRequest struct {
	Message string `json:"message"`
}

func (h *CustomerHandler) SendMessage(c echo.Context) error {
	cp, sess, err := h.profile(c)
	if cp == nil {
		return err
	}
	convID, perr := strconv.ParseUint(c.Param("id"), 10, 64)
	if perr != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid conversation id"))
	}
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	viewer := service.Participant{UserID: sess.UserID, CustomerID: cp.ID}
	if err := h.convs.SendMessage(c.Request().Context(), convID, viewer, req.Message); err != nil {
		switch {
		case service.IsValidation(err):
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "conversation not found"))
		case errors.Is(err, service.ErrForbidden):
			return c.JSON(http.StatusForbidden, NewErrorResponse("forbidden", "not a participant"))
		}
		c.Logger().Errorf("send message: %v", err)
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to send message"))
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true})
}

type toggleFavoriteRequest struct {
	VendorID uint64 `json:"vendorId"`
}

func (h *CustomerHandler) ToggleFavorite(c echo.Context) error {
	sess, ok := appmw.CurrentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "login required"))
	}
	var req toggleFavoriteRequest
	if err := c.Bind(&req); err != nil || req.VendorID == 0 {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "vendorId is required"))
	}
	favorited, err := h.favorites.Toggle(c.Request().Context(), sess.UserID, req.VendorID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusForbidden, NewErrorResponse("forbidden", "customer profile required"))
		}
		c.Logger().Errorf("toggle favorite: %v", err)
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to toggle favorite"))
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "favorited": favorited})
}
