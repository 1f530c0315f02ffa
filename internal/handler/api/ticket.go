package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"raffle-core/internal/domain/prize"
	"raffle-core/internal/domain/ticket"
	reqdto "raffle-core/internal/handler/dto/request"
	"raffle-core/internal/handler/middleware"
	"raffle-core/internal/infra"
	"raffle-core/internal/usecase/commands"
	"raffle-core/internal/usecase/queries"
)

type TicketHandler struct {
	ticketCommands commands.TicketCommands
	ticketQueries  queries.TicketQueries
}

func NewTicketHandler(cmds commands.TicketCommands, tq queries.TicketQueries) *TicketHandler {
	return &TicketHandler{
		ticketCommands: cmds,
		ticketQueries:  tq,
	}
}

// @Summary List my tickets
// @Description List the caller's tickets, optionally scoped to one raffle
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param raffle_id query string false "Raffle ID"
// @Param limit query int false "Max results"
// @Success 200 {array} queries.TicketListItem
// @Router /tickets [get]
func (h *TicketHandler) ListMine(c *gin.Context) {
	buyerID, ok := middleware.GetBuyerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var (
		items []*queries.TicketListItem
		err   error
	)
	if raw := c.Query("raffle_id"); raw != "" {
		raffleID, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid raffle_id"})
			return
		}
		items, err = h.ticketQueries.ListByBuyerAndRaffle(c.Request.Context(), buyerID, raffleID)
	} else {
		items, err = h.ticketQueries.ListByBuyer(c.Request.Context(), buyerID, intQuery(c, "limit", 0))
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": items})
}

// @Summary Get ticket
// @Description Get one of the caller's tickets
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} queries.TicketView
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tickets/{id} [get]
func (h *TicketHandler) Get(c *gin.Context) {
	buyerID, ok := middleware.GetBuyerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.ticketQueries.GetByID(c.Request.Context(), buyerID, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your ticket"})
		case infra.IsKind(err, infra.KindNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Reveal ticket
// @Description Run the one-time instant-win draw on a sold ticket
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} commands.RevealResult
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /tickets/{id}/reveal [post]
func (h *TicketHandler) Reveal(c *gin.Context) {
	buyerID, ok := middleware.GetBuyerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	result, err := h.ticketCommands.Reveal(c.Request.Context(), id, buyerID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTicketNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		case errors.Is(err, ticket.ErrNotTicketOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your ticket"})
		case errors.Is(err, ticket.ErrAlreadyRevealed):
			c.JSON(http.StatusConflict, gin.H{"error": "Ticket already revealed"})
		case errors.Is(err, ticket.ErrTicketVoid):
			c.JSON(http.StatusConflict, gin.H{"error": "Ticket is void"})
		case errors.Is(err, commands.ErrPoolNotAssigned):
			c.JSON(http.StatusConflict, gin.H{"error": "Raffle has no prize pool"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Claim prize
// @Description Convert a revealed instant win into the chosen value form
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Param request body reqdto.ClaimPrizeRequest true "Chosen value type"
// @Success 200 {object} commands.ClaimResult
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /tickets/{id}/claim [post]
func (h *TicketHandler) Claim(c *gin.Context) {
	buyerID, ok := middleware.GetBuyerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req reqdto.ClaimPrizeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.ticketCommands.Claim(c.Request.Context(), id, req, buyerID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTicketNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		case errors.Is(err, ticket.ErrNotTicketOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your ticket"})
		case errors.Is(err, ticket.ErrNotRevealed):
			c.JSON(http.StatusConflict, gin.H{"error": "Ticket has not been revealed"})
		case errors.Is(err, ticket.ErrNoPrizeWon):
			c.JSON(http.StatusConflict, gin.H{"error": "Ticket did not win a prize"})
		case errors.Is(err, ticket.ErrAlreadyClaimed), errors.Is(err, prize.ErrInstanceClaimed):
			c.JSON(http.StatusConflict, gin.H{"error": "Prize already claimed"})
		case errors.Is(err, ticket.ErrTicketVoid):
			c.JSON(http.StatusConflict, gin.H{"error": "Ticket is void"})
		case errors.Is(err, prize.ErrClaimDeadlinePassed):
			c.JSON(http.StatusGone, gin.H{"error": "Claim deadline has passed"})
		case errors.Is(err, prize.ErrInvalidValueType):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown value type"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}
