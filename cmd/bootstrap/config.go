package bootstrap

import (
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
