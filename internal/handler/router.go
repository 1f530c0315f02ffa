package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"raffle-core/internal/handler/api"
	"raffle-core/internal/handler/middleware"
	"raffle-core/internal/pkg/config"
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
	raffleHandler *api.RaffleHandler,
	reservationHandler *api.ReservationHandler,
	paymentHandler *api.PaymentHandler,
	ticketHandler *api.TicketHandler,
	prizeHandler *api.PrizeHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, raffleHandler, reservationHandler, paymentHandler, ticketHandler, prizeHandler, authMiddleware)
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
	raffleHandler *api.RaffleHandler,
	reservationHandler *api.ReservationHandler,
	paymentHandler *api.PaymentHandler,
	ticketHandler *api.TicketHandler,
	prizeHandler *api.PrizeHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		raffles := apiGroup.Group("/raffles")
		{
			addRoutes(raffles, []route{
				{Method: http.MethodGet, Path: "", Handler: raffleHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: raffleHandler.Get},
			})

			authRequired := raffles.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/:id/stats", Handler: raffleHandler.Stats},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.Cancel},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/intents", Handler: paymentHandler.CreateIntent},
				{Method: http.MethodPost, Path: "/intents/:id/confirm", Handler: paymentHandler.ConfirmIntent},
			})
		}

		tickets := apiGroup.Group("/tickets")
		tickets.Use(authMiddleware.RequireAuth())
		{
			addRoutes(tickets, []route{
				{Method: http.MethodGet, Path: "", Handler: ticketHandler.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: ticketHandler.Get},
				{Method: http.MethodPost, Path: "/:id/reveal", Handler: ticketHandler.Reveal},
				{Method: http.MethodPost, Path: "/:id/claim", Handler: ticketHandler.Claim},
			})
		}

		prizes := apiGroup.Group("/prizes")
		prizes.Use(authMiddleware.RequireAuth())
		{
			addRoutes(prizes, []route{
				{Method: http.MethodGet, Path: "/won", Handler: prizeHandler.ListWon},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/raffles", Handler: raffleHandler.Create},
				{Method: http.MethodPatch, Path: "/raffles/:id/status", Handler: raffleHandler.ChangeStatus},
				{Method: http.MethodPost, Path: "/raffles/:id/draw", Handler: raffleHandler.ExecuteDraw},
				{Method: http.MethodPost, Path: "/prizes/templates", Handler: prizeHandler.CreateTemplate},
				{Method: http.MethodGet, Path: "/prizes/templates", Handler: prizeHandler.ListTemplates},
				{Method: http.MethodPost, Path: "/prizes/pools", Handler: prizeHandler.CreatePool},
				{Method: http.MethodGet, Path: "/prizes/pools", Handler: prizeHandler.ListPools},
				{Method: http.MethodGet, Path: "/prizes/pools/:id", Handler: prizeHandler.GetPool},
				{Method: http.MethodPost, Path: "/prizes/pools/:id/allocate", Handler: prizeHandler.AllocatePrizes},
				{Method: http.MethodPost, Path: "/prizes/pools/:id/lock", Handler: prizeHandler.LockPool},
				{Method: http.MethodPost, Path: "/prizes/pools/:id/assign", Handler: prizeHandler.AssignPool},
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
