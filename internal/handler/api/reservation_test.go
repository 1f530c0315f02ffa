//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"raffle-core/internal/domain/buyer"
	"raffle-core/internal/domain/reservation"
	"raffle-core/internal/handler/api"
	reqdto "raffle-core/internal/handler/dto/request"
	"raffle-core/internal/infra"
	"raffle-core/internal/usecase/commands"
	"raffle-core/internal/usecase/queries"
	"raffle-core/tests/common/httptest"
	"raffle-core/tests/common/testutil"
	commandsmock "raffle-core/tests/mock/commands"
	queriesmock "raffle-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	buyerID      uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)
	s.buyerID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("buyer_id", s.buyerID)
		c.Set("buyer_role", buyer.RoleBuyer)
		c.Next()
	}

	s.router.POST("/reservations", authMiddleware, s.handler.Create)
	s.router.GET("/reservations", authMiddleware, s.handler.ListMine)
	s.router.GET("/reservations/:id", authMiddleware, s.handler.Get)
	s.router.DELETE("/reservations/:id", authMiddleware, s.handler.Cancel)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) reservationView() *queries.ReservationView {
	now := time.Now()
	return &queries.ReservationView{
		ID:          uuid.New(),
		RaffleID:    uuid.New(),
		RaffleTitle: "Summer Mega Raffle",
		BuyerID:     s.buyerID,
		Quantity:    3,
		AmountCents: 1500,
		Status:      "active",
		ExpiresAt:   now.Add(5 * time.Minute),
		CreatedAt:   now,
	}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"

	reqBody := reqdto.ReserveTicketsRequest{RaffleID: uuid.New(), Quantity: 3}

	s.Run("success: returns 201 Created for valid request", func() {
		view := s.reservationView()
		s.mockCommands.EXPECT().ReserveTickets(gomock.Any(), gomock.Any(), s.buyerID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusCreated, rec.Code)

		var got queries.ReservationView
		httptest.DecodeResponseBody(s.T(), rec.Body, &got)
		s.Equal(view.ID, got.ID)
		s.Equal(int32(3), got.Quantity)
	})

	s.Run("validation: missing raffle_id returns 400", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("raffle_id", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("validation: zero quantity returns 400", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("quantity", 0))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: unknown raffle returns 404", func() {
		s.mockCommands.EXPECT().ReserveTickets(gomock.Any(), gomock.Any(), s.buyerID).
			Return(nil, commands.ErrRaffleNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: sold out returns 409", func() {
		s.mockCommands.EXPECT().ReserveTickets(gomock.Any(), gomock.Any(), s.buyerID).
			Return(nil, commands.ErrInsufficientTickets).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: raffle not open returns 409", func() {
		s.mockCommands.EXPECT().ReserveTickets(gomock.Any(), gomock.Any(), s.buyerID).
			Return(nil, reservation.ErrRaffleNotActive).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: per-buyer limit returns 409", func() {
		s.mockCommands.EXPECT().ReserveTickets(gomock.Any(), gomock.Any(), s.buyerID).
			Return(nil, reservation.ErrExceedsPerBuyerMax).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("auth: missing token returns 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancel() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), reservationID, s.buyerID).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: someone else's reservation returns 403", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), reservationID, s.buyerID).
			Return(commands.ErrNotReservationOwner).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("error: unknown reservation returns 404", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), reservationID, s.buyerID).
			Return(commands.ErrReservationNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: malformed id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/not-a-uuid", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String()

	s.Run("success: returns the caller's reservation", func() {
		view := s.reservationView()
		view.ID = reservationID
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.buyerID, reservationID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)

		var got queries.ReservationView
		httptest.DecodeResponseBody(s.T(), rec.Body, &got)
		s.Equal(reservationID, got.ID)
	})

	s.Run("error: other buyer's reservation returns 403", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.buyerID, reservationID).
			Return(nil, queries.ErrForbidden).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("error: unknown reservation returns 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.buyerID, reservationID).
			Return(nil, infra.NewRepoErr("reservation not found", infra.KindNotFound)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

// ================================================================================
// TestListMine
// ================================================================================

func (s *ReservationHandlerTestSuite) TestListMine() {
	s.Run("success: returns the caller's reservations", func() {
		views := []*queries.ReservationView{s.reservationView(), s.reservationView()}
		s.mockQueries.EXPECT().ListByBuyer(gomock.Any(), s.buyerID, 0).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)

		var got struct {
			Reservations []*queries.ReservationView `json:"reservations"`
		}
		httptest.DecodeResponseBody(s.T(), rec.Body, &got)
		s.Len(got.Reservations, 2)
	})

	s.Run("success: limit query is forwarded", func() {
		s.mockQueries.EXPECT().ListByBuyer(gomock.Any(), s.buyerID, 5).
			Return(nil, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?limit=5", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})
}
