package components

import (
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/domain/pricing"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra/payment"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/clock"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/config"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.CheckoutConfig { return cfg.Checkout },
	func(cfg config.Config) config.StoreConfig { return cfg.Store },
	func(cfg config.Config) config.StripeConfig { return cfg.Stripe },
	func(cfg config.Config) (pricing.Calculator, error) {
		return pricing.NewCalculator(cfg.Store.TaxRate)
	},
	fx.Annotate(
		payment.NewStripeGateway,
		fx.As(new(shared.PaymentGateway)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		usecase.NewOrderValidator,
		usecase.NewCheckoutUseCase,
		usecase.NewConfirmationUseCase,
		usecase.NewRefundUseCase,
		usecase.NewOrderUseCase,
		usecase.NewPrintQueueUseCase,
	),
)
