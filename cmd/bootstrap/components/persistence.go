package components

import (
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra/db"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra/readstore"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra/repository"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra/uow"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(shared.CatalogReads)),
		),
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(new(shared.ScheduleReads)),
		),
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(shared.SlotReads)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(shared.UserReads)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(shared.OrderReads)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(shared.OrderRepository)),
		),
		fx.Annotate(
			repository.NewStoredValueRepository,
			fx.As(new(shared.StoredValueRepository)),
		),
		fx.Annotate(
			repository.NewPrintQueueRepository,
			fx.As(new(shared.PrintQueueRepository)),
		),
		fx.Annotate(
			repository.NewDraftStore,
			fx.As(new(shared.DraftStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
