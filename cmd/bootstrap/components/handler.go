package components

import (
	"raffle-core/internal/handler"
	"raffle-core/internal/handler/api"
	"raffle-core/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRaffleHandler,
		api.NewReservationHandler,
		api.NewPaymentHandler,
		api.NewTicketHandler,
		api.NewPrizeHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
