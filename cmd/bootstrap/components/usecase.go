package components

import (
	"raffle-core/internal/domain/reservation"
	"raffle-core/internal/pkg/clock"
	"raffle-core/internal/pkg/config"
	"raffle-core/internal/pkg/draw"
	"raffle-core/internal/usecase"
	"raffle-core/internal/usecase/commands"
	"raffle-core/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	draw.NewCryptoSource,
	func(cfg config.Config, clk clock.Clock) (*reservation.Factory, error) {
		return reservation.NewFactory(clk, reservation.HoldPolicy{
			TTL:          cfg.Reservation.TTL,
			MinTimeToEnd: cfg.Reservation.MinTimeToEnd,
		})
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewPaymentCommands,
		commands.NewTicketCommands,
		commands.NewRaffleAdminCommands,
		commands.NewDrawCommands,
		commands.NewPrizeAdminCommands,
		commands.NewSweepCommands,
		commands.NewLoggingFulfillmentHandler,
		commands.NewFulfillmentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRaffleQueries,
		queries.NewTicketQueries,
		queries.NewReservationQueries,
		queries.NewPrizeQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
