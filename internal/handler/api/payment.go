package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"raffle-core/internal/domain/payment"
	"raffle-core/internal/domain/reservation"
	reqdto "raffle-core/internal/handler/dto/request"
	"raffle-core/internal/handler/middleware"
	"raffle-core/internal/usecase/commands"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
}

func NewPaymentHandler(cmds commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{paymentCommands: cmds}
}

// @Summary Create payment intent
// @Description Create (or return the existing pending) intent for a reservation
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateIntentRequest true "Intent request"
// @Success 201 {object} queries.IntentView
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /payments/intents [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	buyerID, ok := middleware.GetBuyerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateIntentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.paymentCommands.CreateIntent(c.Request.Context(), req, buyerID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		case errors.Is(err, commands.ErrNotReservationOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your reservation"})
		case errors.Is(err, reservation.ErrAlreadyResolved):
			c.JSON(http.StatusConflict, gin.H{"error": "Reservation already resolved"})
		case errors.Is(err, reservation.ErrReservationExpired):
			c.JSON(http.StatusConflict, gin.H{"error": "Reservation has expired"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Confirm payment intent
// @Description Settle an intent; success mints tickets, failure releases the hold. Safe to retry.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Intent ID"
// @Param request body reqdto.ConfirmIntentRequest true "Gateway outcome"
// @Success 200 {object} commands.ConfirmIntentResult
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /payments/intents/{id}/confirm [post]
func (h *PaymentHandler) ConfirmIntent(c *gin.Context) {
	buyerID, ok := middleware.GetBuyerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req reqdto.ConfirmIntentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.paymentCommands.ConfirmIntent(c.Request.Context(), id, req, buyerID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrIntentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment intent not found"})
		case errors.Is(err, commands.ErrNotReservationOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your reservation"})
		case errors.Is(err, commands.ErrInsufficientCredit):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "Insufficient credit balance"})
		case errors.Is(err, payment.ErrAlreadyFailed):
			c.JSON(http.StatusConflict, gin.H{"error": "Payment intent already failed"})
		case errors.Is(err, payment.ErrPaymentFailed):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "Payment failed"})
		case errors.Is(err, reservation.ErrReservationExpired):
			c.JSON(http.StatusConflict, gin.H{"error": "Reservation expired before confirmation"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
