package components

import (
	"raffle-core/internal/infra/readstore"
	"raffle-core/internal/infra/uow"
	"raffle-core/internal/usecase/queries"
	"raffle-core/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Read stores for the query side. Command transactions reach the
		// same stores through the UnitOfWork's lazy getters instead.
		fx.Annotate(
			readstore.NewRaffleReadStore,
			fx.As(new(queries.RaffleViewRepo)),
		),
		fx.Annotate(
			readstore.NewTicketReadStore,
			fx.As(new(queries.TicketViewRepo)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
		fx.Annotate(
			readstore.NewPrizeReadStore,
			fx.As(new(queries.PrizeViewRepo)),
		),
	),
)
