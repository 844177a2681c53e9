package components

import (
	"slotswapper/internal/infra/db"
	"slotswapper/internal/infra/readstore"
	"slotswapper/internal/infra/repository"
	"slotswapper/internal/infra/uow"
	"slotswapper/internal/usecase"
	"slotswapper/internal/usecase/queries"
	"slotswapper/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork opens its own transactions straight from the pool.
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// User writes happen outside the swap transaction boundary.
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotReadStore)),
		),
		fx.Annotate(
			readstore.NewSwapReadStore,
			fx.As(new(queries.SwapReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
