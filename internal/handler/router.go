package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/khues-restaurant/khues-restaurant-sub001/internal/handler/api"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/handler/middleware"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	cartHandler *api.CartHandler,
	checkoutHandler *api.CheckoutHandler,
	webhookHandler *api.WebhookHandler,
	orderHandler *api.OrderHandler,
	printHandler *api.PrintHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, cartHandler, checkoutHandler, webhookHandler, orderHandler, printHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	cartHandler *api.CartHandler,
	checkoutHandler *api.CheckoutHandler,
	webhookHandler *api.WebhookHandler,
	orderHandler *api.OrderHandler,
	printHandler *api.PrintHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		cart := apiGroup.Group("/cart")
		cart.Use(authMiddleware.RequireAuth())
		{
			addRoutes(cart, []route{
				{Method: http.MethodPost, Path: "/validate", Handler: cartHandler.ValidateCart},
				{Method: http.MethodPost, Path: "/validate-reorder", Handler: cartHandler.ValidateReorder},
			})
		}

		checkout := apiGroup.Group("/checkout")
		checkout.Use(authMiddleware.RequireAuth())
		{
			addRoutes(checkout, []route{
				{Method: http.MethodPost, Path: "", Handler: checkoutHandler.CreateCheckout},
			})
		}

		// Signature-verified, never behind auth: Stripe calls it directly.
		apiGroup.POST("/stripe/webhook", webhookHandler.StripeWebhook)

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodGet, Path: "", Handler: orderHandler.ListOrders},
				{Method: http.MethodGet, Path: "/:id", Handler: orderHandler.GetOrder},
				{Method: http.MethodPost, Path: "/:id/start", Handler: orderHandler.StartOrder, Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: orderHandler.CompleteOrder, Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},
				{Method: http.MethodPost, Path: "/:id/refund", Handler: orderHandler.RefundOrder, Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},
			})
		}

		printGroup := apiGroup.Group("/print")
		printGroup.Use(middleware.RequireDeviceSecret(cfg.Store.PrintDeviceSecret))
		{
			addRoutes(printGroup, []route{
				{Method: http.MethodGet, Path: "/poll", Handler: printHandler.Poll},
				{Method: http.MethodDelete, Path: "/:token", Handler: printHandler.Delete},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
