package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"raffle-core/internal/domain/prize"
	"raffle-core/internal/domain/raffle"
	reqdto "raffle-core/internal/handler/dto/request"
	"raffle-core/internal/handler/middleware"
	"raffle-core/internal/infra"
	"raffle-core/internal/usecase/commands"
	"raffle-core/internal/usecase/queries"
)

type PrizeHandler struct {
	prizeCommands commands.PrizeAdminCommands
	prizeQueries  queries.PrizeQueries
}

func NewPrizeHandler(cmds commands.PrizeAdminCommands, qs queries.PrizeQueries) *PrizeHandler {
	return &PrizeHandler{
		prizeCommands: cmds,
		prizeQueries:  qs,
	}
}

// @Summary List my won prizes
// @Description List prizes discovered or claimed by the caller's tickets
// @Tags prizes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.WonPrizeView
// @Router /prizes/won [get]
func (h *PrizeHandler) ListWon(c *gin.Context) {
	buyerID, ok := middleware.GetBuyerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.prizeQueries.ListWonByBuyer(c.Request.Context(), buyerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"prizes": views})
}

// @Summary Create prize template
// @Tags prizes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTemplateRequest true "Template definition"
// @Success 201 {object} queries.TemplateView
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/prizes/templates [post]
func (h *PrizeHandler) CreateTemplate(c *gin.Context) {
	var req reqdto.CreateTemplateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.prizeCommands.CreateTemplate(c.Request.Context(), req)
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

// @Summary List prize templates
// @Tags prizes
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max results"
// @Success 200 {array} queries.TemplateView
// @Router /admin/prizes/templates [get]
func (h *PrizeHandler) ListTemplates(c *gin.Context) {
	views, err := h.prizeQueries.ListTemplates(c.Request.Context(), intQuery(c, "limit", 0))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": views})
}

// @Summary Create prize pool
// @Tags prizes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePoolRequest true "Pool definition"
// @Success 201 {object} queries.PoolView
// @Failure 400 {object} map[string]string
// @Router /admin/prizes/pools [post]
func (h *PrizeHandler) CreatePool(c *gin.Context) {
	var req reqdto.CreatePoolRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.prizeCommands.CreatePool(c.Request.Context(), req)
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

// @Summary Get prize pool
// @Tags prizes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pool ID"
// @Success 200 {object} queries.PoolView
// @Failure 404 {object} map[string]string
// @Router /admin/prizes/pools/{id} [get]
func (h *PrizeHandler) GetPool(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.prizeQueries.GetPool(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pool not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List prize pools
// @Tags prizes
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max results"
// @Success 200 {array} queries.PoolView
// @Router /admin/prizes/pools [get]
func (h *PrizeHandler) ListPools(c *gin.Context) {
	views, err := h.prizeQueries.ListPools(c.Request.Context(), intQuery(c, "limit", 0))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pools": views})
}

// @Summary Allocate prizes into a pool
// @Description Allocate instances of a template with collective or per-instance odds
// @Tags prizes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pool ID"
// @Param request body reqdto.AllocatePrizesRequest true "Allocation batch"
// @Success 200 {object} queries.PoolView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/prizes/pools/{id}/allocate [post]
func (h *PrizeHandler) AllocatePrizes(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req reqdto.AllocatePrizesRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.prizeCommands.AllocatePrizes(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPoolNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Pool not found"})
		case errors.Is(err, commands.ErrTemplateNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		case errors.Is(err, prize.ErrPoolLocked):
			c.JSON(http.StatusConflict, gin.H{"error": "Pool is locked"})
		case errors.Is(err, prize.ErrOddsExceed100):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Pool odds total would exceed 100%"})
		case errors.Is(err, prize.ErrOddsMismatch), errors.Is(err, prize.ErrInvalidOdds):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, prize.ErrTemplateNotActive):
			c.JSON(http.StatusConflict, gin.H{"error": "Template is not active"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Lock prize pool
// @Description Freeze the pool's composition; warnings are advisory
// @Tags prizes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pool ID"
// @Success 200 {object} commands.LockPoolResult
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/prizes/pools/{id}/lock [post]
func (h *PrizeHandler) LockPool(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	result, err := h.prizeCommands.LockPool(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPoolNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Pool not found"})
		case errors.Is(err, prize.ErrAlreadyLocked):
			c.JSON(http.StatusConflict, gin.H{"error": "Pool is already locked"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Assign pool to raffle
// @Description Bind a locked pool to a raffle; terminal for the pool
// @Tags prizes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pool ID"
// @Param request body reqdto.AssignPoolRequest true "Target raffle"
// @Success 200 {object} queries.PoolView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/prizes/pools/{id}/assign [post]
func (h *PrizeHandler) AssignPool(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req reqdto.AssignPoolRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.prizeCommands.AssignPool(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPoolNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Pool not found"})
		case errors.Is(err, commands.ErrRaffleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Raffle not found"})
		case errors.Is(err, prize.ErrPoolNotLocked):
			c.JSON(http.StatusConflict, gin.H{"error": "Pool must be locked first"})
		case errors.Is(err, prize.ErrAlreadyAssigned):
			c.JSON(http.StatusConflict, gin.H{"error": "Pool is already assigned"})
		case errors.Is(err, raffle.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Raffle cannot accept a pool in its current state"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, view)
}
