package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"raffle-core/internal/domain/reservation"
	reqdto "raffle-core/internal/handler/dto/request"
	"raffle-core/internal/handler/middleware"
	"raffle-core/internal/infra"
	"raffle-core/internal/usecase/commands"
	"raffle-core/internal/usecase/queries"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, qs queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: cmds,
		reservationQueries:  qs,
	}
}

// @Summary Reserve tickets
// @Description Place a timed hold on tickets in an active raffle
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReserveTicketsRequest true "Reservation request"
// @Success 201 {object} queries.ReservationView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	buyerID, ok := middleware.GetBuyerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.ReserveTicketsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.reservationCommands.ReserveTickets(c.Request.Context(), req, buyerID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRaffleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Raffle not found"})
		case errors.Is(err, commands.ErrInsufficientTickets):
			c.JSON(http.StatusConflict, gin.H{"error": "Not enough tickets available"})
		case errors.Is(err, reservation.ErrRaffleNotActive):
			c.JSON(http.StatusConflict, gin.H{"error": "Raffle is not open for purchase"})
		case errors.Is(err, reservation.ErrTooCloseToEnd):
			c.JSON(http.StatusConflict, gin.H{"error": "Raffle is closing; holds are no longer accepted"})
		case errors.Is(err, reservation.ErrExceedsPerBuyerMax):
			c.JSON(http.StatusConflict, gin.H{"error": "Per-buyer ticket limit exceeded"})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Domain validation failed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Cancel reservation
// @Description Cancel an active hold and release its tickets; repeat cancels are no-ops
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	buyerID, ok := middleware.GetBuyerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.reservationCommands.CancelReservation(c.Request.Context(), id, buyerID); err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		case errors.Is(err, commands.ErrNotReservationOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your reservation"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get reservation
// @Description Get one of the caller's reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} queries.ReservationView
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	buyerID, ok := middleware.GetBuyerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), buyerID, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your reservation"})
		case infra.IsKind(err, infra.KindNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List my reservations
// @Description List the caller's reservations, newest first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max results"
// @Success 200 {array} queries.ReservationView
// @Router /reservations [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	buyerID, ok := middleware.GetBuyerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.reservationQueries.ListByBuyer(c.Request.Context(), buyerID, intQuery(c, "limit", 0))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": views})
}
