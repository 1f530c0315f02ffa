package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"raffle-core/internal/domain/raffle"
	reqdto "raffle-core/internal/handler/dto/request"
	"raffle-core/internal/infra"
	"raffle-core/internal/usecase/commands"
	"raffle-core/internal/usecase/queries"
)

type RaffleHandler struct {
	raffleQueries queries.RaffleQueries
	adminCommands commands.RaffleAdminCommands
	drawCommands  commands.DrawCommands
}

func NewRaffleHandler(
	raffleQueries queries.RaffleQueries,
	adminCommands commands.RaffleAdminCommands,
	drawCommands commands.DrawCommands,
) *RaffleHandler {
	return &RaffleHandler{
		raffleQueries: raffleQueries,
		adminCommands: adminCommands,
		drawCommands:  drawCommands,
	}
}

// @Summary List raffles
// @Description List raffles in the catalog, optionally filtered by status
// @Tags raffles
// @Produce json
// @Param status query []string false "Status filter"
// @Param limit query int false "Max results"
// @Success 200 {array} queries.RaffleListItem
// @Router /raffles [get]
func (h *RaffleHandler) List(c *gin.Context) {
	statuses := c.QueryArray("status")
	limit := intQuery(c, "limit", 0)

	items, err := h.raffleQueries.List(c.Request.Context(), statuses, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"raffles": items})
}

// @Summary Get raffle
// @Description Get one raffle by ID
// @Tags raffles
// @Produce json
// @Param id path string true "Raffle ID"
// @Success 200 {object} queries.RaffleView
// @Failure 404 {object} map[string]string
// @Router /raffles/{id} [get]
func (h *RaffleHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.raffleQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Raffle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Raffle statistics
// @Description Sales and reveal aggregates for one raffle
// @Tags raffles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Raffle ID"
// @Success 200 {object} queries.RaffleStatsView
// @Failure 404 {object} map[string]string
// @Router /raffles/{id}/stats [get]
func (h *RaffleHandler) Stats(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	stats, err := h.raffleQueries.Stats(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Raffle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Create raffle
// @Description Create a draft raffle
// @Tags raffles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRaffleRequest true "Raffle definition"
// @Success 201 {object} queries.RaffleView
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/raffles [post]
func (h *RaffleHandler) Create(c *gin.Context) {
	var req reqdto.CreateRaffleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.adminCommands.CreateRaffle(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Domain validation failed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Change raffle status
// @Description Move a raffle along its lifecycle
// @Tags raffles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Raffle ID"
// @Param request body reqdto.ChangeRaffleStatusRequest true "Target status"
// @Success 200 {object} queries.RaffleView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/raffles/{id}/status [patch]
func (h *RaffleHandler) ChangeStatus(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req reqdto.ChangeRaffleStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.adminCommands.ChangeStatus(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRaffleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Raffle not found"})
		case errors.Is(err, raffle.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown raffle status"})
		case errors.Is(err, raffle.ErrInvalidTransition),
			errors.Is(err, raffle.ErrActivationWindow),
			errors.Is(err, raffle.ErrActivationNeedsPool),
			errors.Is(err, raffle.ErrComingSoonAfterOpen):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Execute draw
// @Description Resolve the pool's remaining draw-win prizes over the finished raffle's tickets
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Raffle ID"
// @Success 200 {object} commands.DrawResult
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/raffles/{id}/draw [post]
func (h *RaffleHandler) ExecuteDraw(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	result, err := h.drawCommands.ExecuteDraw(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRaffleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Raffle not found"})
		case errors.Is(err, commands.ErrRaffleNotDrawable):
			c.JSON(http.StatusConflict, gin.H{"error": "Raffle must be sold out or ended"})
		case errors.Is(err, commands.ErrPoolNotAssigned):
			c.JSON(http.StatusConflict, gin.H{"error": "Raffle has no prize pool assigned"})
		case errors.Is(err, commands.ErrNoEligibleTickets):
			c.JSON(http.StatusConflict, gin.H{"error": "No eligible tickets for the draw"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
