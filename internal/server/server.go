package server

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/marketconnect/backend/internal/config"
	"github.com/marketconnect/backend/internal/handler"
	appmw "github.com/marketconnect/backend/internal/middleware"
	"github.com/marketconnect/backend/internal/model"
	"github.com/marketconnect/backend/internal/repository"
	"github.com/marketconnect/backend/internal/service"
	"github.com/marketconnect/backend/internal/session"
	"github.com/marketconnect/backend/internal/storage"
	"github.com/marketconnect/backend/internal/view"
	"gorm.io/gorm"
)

type Server struct {
	e *echo.Echo
}

func New(db *gorm.DB, cfg *config.Config, store *session.Store, uploader *storage.Uploader) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) (bool, error) {
			low := strings.ToLower(origin)
			if strings.HasPrefix(low, "http://localhost:") || strings.HasPrefix(low, "http://127.0.0.1:") ||
				strings.HasPrefix(low, "https://localhost:") || strings.HasPrefix(low, "https://127.0.0.1:") {
				return true, nil
			}
			u, err := url.Parse(origin)
			if err != nil {
				return false, nil
			}
			return u.Scheme == "https" && strings.HasSuffix(u.Hostname(), ".marketconnect.ph"), nil
		},
	}))

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	userRepo := repository.NewUserRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	convRepo := repository.NewConversationRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	authSvc := service.NewAuthService(userRepo)
	catalogSvc := service.NewCatalogService(vendorRepo, categoryRepo)
	vendorSvc := service.NewVendorService(vendorRepo, productRepo, orderRepo)
	productSvc := service.NewProductService(productRepo)
	orderSvc := service.NewOrderService(orderRepo, cfg.CommissionRate, cfg.OrderStrictTransitions)
	convSvc := service.NewConversationService(convRepo)
	adminSvc := service.NewAdminService(adminRepo, vendorRepo, cfg.CommissionRate)
	favoriteSvc := service.NewFavoriteService(customerRepo, favoriteRepo)

	authHandler := handler.NewAuthHandler(authSvc, catalogSvc, store, cfg.CookieSecure)
	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	vendorHandler := handler.NewVendorHandler(vendorSvc, productSvc, orderSvc, convSvc, catalogSvc, uploader)
	adminHandler := handler.NewAdminHandler(adminSvc)
	customerHandler := handler.NewCustomerHandler(customerRepo, orderSvc, convSvc, favoriteSvc)

	authMw := appmw.NewAuthMiddleware(store)
	e.Use(authMw.LoadSession)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	})

	e.GET("/", catalogHandler.Home)
	e.GET("/login", authHandler.ShowLogin)
	e.POST("/login", authHandler.Login)
	e.GET("/register", authHandler.ShowRegister)
	e.POST("/register", authHandler.Register)
	e.GET("/logout", authHandler.Logout)

	vendor := e.Group("/vendor", authMw.RequireRole(model.UserTypeVendor), authMw.VerifyCSRF)
	vendor.GET("/dashboard", vendorHandler.Dashboard)
	vendor.GET("/products", vendorHandler.Products)
	vendor.POST("/products", vendorHandler.ProductsAction)
	vendor.GET("/orders", vendorHandler.Orders)
	vendor.POST("/orders", vendorHandler.OrdersAction)
	vendor.GET("/messages", vendorHandler.Messages)
	vendor.POST("/messages", vendorHandler.MessagesAction)

	admin := e.Group("/admin", authMw.RequireRole(model.UserTypeAdmin))
	admin.GET("/dashboard", adminHandler.Dashboard)

	api := e.Group("/api")
	api.GET("/vendor-details", catalogHandler.VendorDetails)

	adminAPI := api.Group("/admin", authMw.RequireRoleJSON(model.UserTypeAdmin), authMw.VerifyCSRF)
	adminAPI.POST("/approve-vendor", adminHandler.ApproveVendor)

	customerAPI := api.Group("", authMw.RequireRoleJSON(model.UserTypeCustomer), authMw.VerifyCSRF)
	customerAPI.POST("/orders", customerHandler.PlaceOrder)
	customerAPI.GET("/me/orders", customerHandler.ListOrders)
	customerAPI.POST("/conversations/start", customerHandler.StartConversation)
	customerAPI.GET("/conversations/:id/messages", customerHandler.ListMessages)
	customerAPI.POST("/conversations/:id/messages", customerHandler.SendMessage)
	customerAPI.POST("/favorites/toggle", customerHandler.ToggleFavorite)

	return &Server{e: e}, nil
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

// Echo exposes the router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.e
}
