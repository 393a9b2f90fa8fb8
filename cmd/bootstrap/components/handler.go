package components

import (
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/handler"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/handler/api"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCartHandler,
		api.NewCheckoutHandler,
		api.NewWebhookHandler,
		api.NewOrderHandler,
		api.NewPrintHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
