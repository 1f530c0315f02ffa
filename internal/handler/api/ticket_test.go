//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"raffle-core/internal/domain/buyer"
	"raffle-core/internal/domain/prize"
	"raffle-core/internal/domain/ticket"
	"raffle-core/internal/handler/api"
	reqdto "raffle-core/internal/handler/dto/request"
	"raffle-core/internal/usecase/commands"
	"raffle-core/internal/usecase/queries"
	"raffle-core/tests/common/httptest"
	commandsmock "raffle-core/tests/mock/commands"
	queriesmock "raffle-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TicketHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTicketCommands
	mockQueries  *queriesmock.MockTicketQueries
	handler      *api.TicketHandler
	buyerID      uuid.UUID
}

func (s *TicketHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTicketCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockTicketQueries(s.mockCtrl)
	s.handler = api.NewTicketHandler(s.mockCommands, s.mockQueries)
	s.buyerID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("buyer_id", s.buyerID)
		c.Set("buyer_role", buyer.RoleBuyer)
		c.Next()
	}

	s.router.GET("/tickets", authMiddleware, s.handler.ListMine)
	s.router.GET("/tickets/:id", authMiddleware, s.handler.Get)
	s.router.POST("/tickets/:id/reveal", authMiddleware, s.handler.Reveal)
	s.router.POST("/tickets/:id/claim", authMiddleware, s.handler.Claim)
}

func (s *TicketHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTicketHandlerSuite(t *testing.T) {
	suite.Run(t, new(TicketHandlerTestSuite))
}

// ================================================================================
// TestReveal
// ================================================================================

func (s *TicketHandlerTestSuite) TestReveal() {
	ticketID := uuid.New()
	url := "/tickets/" + ticketID.String() + "/reveal"

	s.Run("success: reveals a winning ticket", func() {
		prizeName := "Gold Headphones"
		ref := "abc12345-def67890-001"
		deadline := time.Now().Add(72 * time.Hour)
		result := &commands.RevealResult{
			TicketID:      ticketID,
			DisplayNumber: "abc12ispla-007",
			InstantWin:    true,
			PrizeName:     &prizeName,
			InstanceRef:   &ref,
			ClaimDeadline: &deadline,
			RevealedAt:    time.Now(),
		}
		s.mockCommands.EXPECT().Reveal(gomock.Any(), ticketID, s.buyerID).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)

		var got commands.RevealResult
		httptest.DecodeResponseBody(s.T(), rec.Body, &got)
		s.True(got.InstantWin)
		s.Equal(prizeName, *got.PrizeName)
	})

	s.Run("success: reveals a losing ticket", func() {
		result := &commands.RevealResult{
			TicketID:   ticketID,
			InstantWin: false,
			RevealedAt: time.Now(),
		}
		s.mockCommands.EXPECT().Reveal(gomock.Any(), ticketID, s.buyerID).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)

		var got commands.RevealResult
		httptest.DecodeResponseBody(s.T(), rec.Body, &got)
		s.False(got.InstantWin)
		s.Nil(got.PrizeName)
	})

	s.Run("error: second reveal returns 409", func() {
		s.mockCommands.EXPECT().Reveal(gomock.Any(), ticketID, s.buyerID).
			Return(nil, ticket.ErrAlreadyRevealed).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: someone else's ticket returns 403", func() {
		s.mockCommands.EXPECT().Reveal(gomock.Any(), ticketID, s.buyerID).
			Return(nil, ticket.ErrNotTicketOwner).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("error: raffle without pool returns 409", func() {
		s.mockCommands.EXPECT().Reveal(gomock.Any(), ticketID, s.buyerID).
			Return(nil, commands.ErrPoolNotAssigned).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: unknown ticket returns 404", func() {
		s.mockCommands.EXPECT().Reveal(gomock.Any(), ticketID, s.buyerID).
			Return(nil, commands.ErrTicketNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

// ================================================================================
// TestClaim
// ================================================================================

func (s *TicketHandlerTestSuite) TestClaim() {
	ticketID := uuid.New()
	url := "/tickets/" + ticketID.String() + "/claim"
	reqBody := reqdto.ClaimPrizeRequest{ValueType: "credit"}

	s.Run("success: claims a won prize", func() {
		result := &commands.ClaimResult{
			TicketID:    ticketID,
			InstanceRef: "abc12345-def67890-001",
			PrizeName:   "Gold Headphones",
			ValueType:   "credit",
			ValueCents:  9000,
			ClaimedAt:   time.Now(),
		}
		s.mockCommands.EXPECT().Claim(gomock.Any(), ticketID, gomock.Any(), s.buyerID).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)

		var got commands.ClaimResult
		httptest.DecodeResponseBody(s.T(), rec.Body, &got)
		s.Equal(int64(9000), got.ValueCents)
	})

	s.Run("validation: missing value_type returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: unrevealed ticket returns 409", func() {
		s.mockCommands.EXPECT().Claim(gomock.Any(), ticketID, gomock.Any(), s.buyerID).
			Return(nil, ticket.ErrNotRevealed).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: losing ticket returns 409", func() {
		s.mockCommands.EXPECT().Claim(gomock.Any(), ticketID, gomock.Any(), s.buyerID).
			Return(nil, ticket.ErrNoPrizeWon).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: double claim returns 409", func() {
		s.mockCommands.EXPECT().Claim(gomock.Any(), ticketID, gomock.Any(), s.buyerID).
			Return(nil, prize.ErrInstanceClaimed).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: lapsed claim window returns 410", func() {
		s.mockCommands.EXPECT().Claim(gomock.Any(), ticketID, gomock.Any(), s.buyerID).
			Return(nil, prize.ErrClaimDeadlinePassed).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusGone, rec.Code)
	})

	s.Run("error: bogus value type returns 400", func() {
		s.mockCommands.EXPECT().Claim(gomock.Any(), ticketID, gomock.Any(), s.buyerID).
			Return(nil, prize.ErrInvalidValueType).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestListMine / TestGet
// ================================================================================

func (s *TicketHandlerTestSuite) TestListMine() {
	s.Run("success: lists the caller's tickets", func() {
		items := []*queries.TicketListItem{
			{ID: uuid.New(), RaffleID: uuid.New(), DisplayNumber: "abc12345-001", Status: "sold"},
		}
		s.mockQueries.EXPECT().ListByBuyer(gomock.Any(), s.buyerID, 0).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tickets", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: raffle_id query scopes the listing", func() {
		raffleID := uuid.New()
		s.mockQueries.EXPECT().ListByBuyerAndRaffle(gomock.Any(), s.buyerID, raffleID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tickets?raffle_id="+raffleID.String(), nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: malformed raffle_id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tickets?raffle_id=nope", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *TicketHandlerTestSuite) TestGet() {
	ticketID := uuid.New()
	url := "/tickets/" + ticketID.String()

	s.Run("success: returns ticket detail", func() {
		view := &queries.TicketView{
			ID:            ticketID,
			RaffleID:      uuid.New(),
			RaffleTitle:   "Summer Mega Raffle",
			DisplayNumber: "abc12345-007",
			Status:        "revealed",
			InstantWin:    true,
			PurchasedAt:   time.Now(),
		}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.buyerID, ticketID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)

		var got queries.TicketView
		httptest.DecodeResponseBody(s.T(), rec.Body, &got)
		s.Equal("abc12345-007", got.DisplayNumber)
	})

	s.Run("error: other buyer's ticket returns 403", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.buyerID, ticketID).
			Return(nil, queries.ErrForbidden).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusForbidden, rec.Code)
	})
}
