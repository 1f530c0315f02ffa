//go:build e2e

package raffle_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"raffle-core/internal/domain/buyer"
	"raffle-core/internal/handler/dto/request"
	"raffle-core/internal/usecase/commands"
	"raffle-core/internal/usecase/queries"
	"raffle-core/tests/common/authtest"
	"raffle-core/tests/common/dbtest"
	"raffle-core/tests/common/httptest"
	"raffle-core/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	rafflesURL        = "/api/raffles"
	reservationsURL   = "/api/reservations"
	intentsURL        = "/api/payments/intents"
	confirmURLFmt     = "/api/payments/intents/%s/confirm"
	revealURLFmt      = "/api/tickets/%s/reveal"
	claimURLFmt       = "/api/tickets/%s/claim"
	wonPrizesURL      = "/api/prizes/won"
	adminRafflesURL   = "/api/admin/raffles"
	adminTemplatesURL = "/api/admin/prizes/templates"
	adminPoolsURL     = "/api/admin/prizes/pools"
)

type PurchaseFlowSuite struct {
	e2e.SharedSuite
}

func TestPurchaseFlowSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PurchaseFlowSuite))
}

func (s *PurchaseFlowSuite) adminToken(t *testing.T) string {
	adminID := dbtest.CreateTestBuyer(t, s.DB, "admin@example.com", "admin", 0)
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, adminID, buyer.RoleAdmin)
}

func (s *PurchaseFlowSuite) buyerToken(t *testing.T, email string, creditCents int64) (uuid.UUID, string) {
	buyerID := dbtest.CreateTestBuyer(t, s.DB, email, "buyer", creditCents)
	return buyerID, authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, buyerID, buyer.RoleBuyer)
}

// setupActiveRaffle drives the whole admin pipeline through the API:
// template -> pool -> allocate -> lock -> raffle -> assign -> activate.
// The single instance carries the full odds mass so every reveal wins,
// which keeps the flow deterministic.
func (s *PurchaseFlowSuite) setupActiveRaffle(t *testing.T, adminToken string, winOdds float64) uuid.UUID {
	templateReq := request.CreateTemplateRequest{
		Name:               "Gold Headphones",
		Tier:               "gold",
		PrizeType:          "instant_win",
		RetailValueCents:   10000,
		CashValueCents:     8000,
		CreditValueCents:   9000,
		ClaimDeadlineHours: 72,
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminTemplatesURL, templateReq, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var template queries.TemplateView
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &template))

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, adminPoolsURL,
		request.CreatePoolRequest{Name: "Launch Pool"}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var pool queries.PoolView
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &pool))

	allocateReq := request.AllocatePrizesRequest{
		TemplateID:     template.ID,
		Quantity:       1,
		CollectiveOdds: winOdds,
	}
	w = httptest.PerformRequest(t, s.Router, http.MethodPost,
		adminPoolsURL+"/"+pool.ID.String()+"/allocate", allocateReq, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = httptest.PerformRequest(t, s.Router, http.MethodPost,
		adminPoolsURL+"/"+pool.ID.String()+"/lock", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var lockResult commands.LockPoolResult
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &lockResult))
	require.Equal(t, "locked", lockResult.Pool.Status)

	now := time.Now()
	raffleReq := request.CreateRaffleRequest{
		Title:            "Launch Raffle",
		TicketPriceCents: 500,
		TotalTickets:     20,
		MaxPerBuyer:      5,
		StartsAt:         now.Add(-time.Hour),
		EndsAt:           now.Add(24 * time.Hour),
	}
	w = httptest.PerformRequest(t, s.Router, http.MethodPost, adminRafflesURL, raffleReq, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var raffleView queries.RaffleView
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &raffleView))
	require.Equal(t, "draft", raffleView.Status)

	w = httptest.PerformRequest(t, s.Router, http.MethodPost,
		adminPoolsURL+"/"+pool.ID.String()+"/assign",
		request.AssignPoolRequest{RaffleID: raffleView.ID}, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = httptest.PerformRequest(t, s.Router, http.MethodPatch,
		adminRafflesURL+"/"+raffleView.ID.String()+"/status",
		request.ChangeRaffleStatusRequest{Status: "active"}, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	return raffleView.ID
}

func (s *PurchaseFlowSuite) reserve(t *testing.T, token string, raffleID uuid.UUID, quantity int32) queries.ReservationView {
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
		request.ReserveTicketsRequest{RaffleID: raffleID, Quantity: quantity}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var view queries.ReservationView
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &view))
	return view
}

func (s *PurchaseFlowSuite) createIntent(t *testing.T, token string, reservationID uuid.UUID) queries.IntentView {
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, intentsURL,
		request.CreateIntentRequest{ReservationID: reservationID}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var view queries.IntentView
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &view))
	return view
}

func (s *PurchaseFlowSuite) availableTickets(t *testing.T, raffleID uuid.UUID) int32 {
	var available int32
	err := s.DB.QueryRow(t.Context(),
		"SELECT available_tickets FROM raffles WHERE id = $1", raffleID).Scan(&available)
	require.NoError(t, err)
	return available
}

func (s *PurchaseFlowSuite) TestInstantWinPurchaseFlow() {
	s.Run("Normal case: reserve, pay, reveal and claim an instant win", func() {
		t := s.T()

		adminToken := s.adminToken(t)
		raffleID := s.setupActiveRaffle(t, adminToken, 100)
		_, token := s.buyerToken(t, "winner@example.com", 0)

		w0 := httptest.PerformRequest(t, s.Router, http.MethodGet, rafflesURL+"/"+raffleID.String(), nil, "")
		require.Equal(t, http.StatusOK, w0.Code)
		var listed queries.RaffleView
		require.NoError(t, httptest.DecodeResponseBody(t, w0.Body, &listed))

		expected := &queries.RaffleView{
			Title:            "Launch Raffle",
			TicketPriceCents: 500,
			TotalTickets:     20,
			AvailableTickets: 20,
			MaxPerBuyer:      5,
			Status:           "active",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(queries.RaffleView{},
				"ID", "PoolID", "StartsAt", "EndsAt", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &listed, opts...); diff != "" {
			t.Errorf("Raffle view mismatch (-want +got):\n%s", diff)
		}

		reservationView := s.reserve(t, token, raffleID, 1)
		require.Equal(t, "active", reservationView.Status)
		require.Equal(t, int64(500), reservationView.AmountCents)
		require.Equal(t, int32(19), s.availableTickets(t, raffleID))

		intent := s.createIntent(t, token, reservationView.ID)
		require.Equal(t, "pending", intent.Status)
		require.Equal(t, int64(500), intent.AmountCents)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(confirmURLFmt, intent.ID), request.ConfirmIntentRequest{}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var confirmed commands.ConfirmIntentResult
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &confirmed))
		require.False(t, confirmed.IsReplayed)
		require.Len(t, confirmed.Tickets, 1)
		require.Equal(t, "sold", confirmed.Tickets[0].Status)

		ticketID := confirmed.Tickets[0].ID

		// Single instance holding the full odds mass, so this must win.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(revealURLFmt, ticketID), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var reveal commands.RevealResult
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &reveal))
		require.True(t, reveal.InstantWin)
		require.NotNil(t, reveal.PrizeName)
		require.Equal(t, "Gold Headphones", *reveal.PrizeName)
		require.NotNil(t, reveal.ClaimDeadline)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(claimURLFmt, ticketID), request.ClaimPrizeRequest{ValueType: "cash"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var claim commands.ClaimResult
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &claim))
		require.Equal(t, "cash", claim.ValueType)
		require.Equal(t, int64(8000), claim.ValueCents)
		require.Equal(t, "Gold Headphones", claim.PrizeName)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, wonPrizesURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var won struct {
			Prizes []*queries.WonPrizeView `json:"prizes"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &won))
		require.Len(t, won.Prizes, 1)
		require.Equal(t, "claimed", won.Prizes[0].Status)
	})

	s.Run("Normal case: repeated confirmation replays the original tickets", func() {
		t := s.T()

		adminToken := s.adminToken(t)
		raffleID := s.setupActiveRaffle(t, adminToken, 100)
		_, token := s.buyerToken(t, "repeat@example.com", 0)

		reservationView := s.reserve(t, token, raffleID, 2)
		intent := s.createIntent(t, token, reservationView.ID)

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(confirmURLFmt, intent.ID), request.ConfirmIntentRequest{}, token)
		require.Equal(t, http.StatusOK, w1.Code)
		var first commands.ConfirmIntentResult
		require.NoError(t, httptest.DecodeResponseBody(t, w1.Body, &first))
		require.Len(t, first.Tickets, 2)

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(confirmURLFmt, intent.ID), request.ConfirmIntentRequest{}, token)
		require.Equal(t, http.StatusOK, w2.Code)
		var second commands.ConfirmIntentResult
		require.NoError(t, httptest.DecodeResponseBody(t, w2.Body, &second))
		require.True(t, second.IsReplayed)
		require.Len(t, second.Tickets, 2)

		// No double mint.
		require.Equal(t, int32(18), s.availableTickets(t, raffleID))
	})

	s.Run("Error case: declined payment keeps the hold for a retry", func() {
		t := s.T()

		adminToken := s.adminToken(t)
		raffleID := s.setupActiveRaffle(t, adminToken, 100)
		_, token := s.buyerToken(t, "declined@example.com", 0)

		reservationView := s.reserve(t, token, raffleID, 3)
		require.Equal(t, int32(17), s.availableTickets(t, raffleID))

		intent := s.createIntent(t, token, reservationView.ID)

		outcome := request.OutcomeFailure
		reason := "card declined"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(confirmURLFmt, intent.ID),
			request.ConfirmIntentRequest{Outcome: &outcome, FailureReason: &reason}, token)
		require.Equal(t, http.StatusPaymentRequired, w.Code, w.Body.String())

		// Only the intent fails; the hold stays alive.
		var intentStatus, holdStatus string
		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT status FROM payment_intents WHERE id = $1", intent.ID).Scan(&intentStatus))
		require.Equal(t, "failed", intentStatus)
		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT status FROM reservations WHERE id = $1", reservationView.ID).Scan(&holdStatus))
		require.Equal(t, "active", holdStatus)
		require.Equal(t, int32(17), s.availableTickets(t, raffleID))

		// A fresh intent on the same hold settles with another method.
		retryIntent := s.createIntent(t, token, reservationView.ID)
		require.NotEqual(t, intent.ID, retryIntent.ID)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(confirmURLFmt, retryIntent.ID), request.ConfirmIntentRequest{}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// An explicit cancel still releases the declined hold's tickets.
		reservation2 := s.reserve(t, token, raffleID, 1)
		intent2 := s.createIntent(t, token, reservation2.ID)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(confirmURLFmt, intent2.ID),
			request.ConfirmIntentRequest{Outcome: &outcome, FailureReason: &reason}, token)
		require.Equal(t, http.StatusPaymentRequired, w.Code, w.Body.String())
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			reservationsURL+"/"+reservation2.ID.String(), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		require.Equal(t, int32(17), s.availableTickets(t, raffleID))
	})

	s.Run("Credit settlement: succeeds with balance, 402 without", func() {
		t := s.T()

		adminToken := s.adminToken(t)
		raffleID := s.setupActiveRaffle(t, adminToken, 100)

		_, brokeToken := s.buyerToken(t, "broke@example.com", 100)
		brokeReservation := s.reserve(t, brokeToken, raffleID, 1)
		brokeIntent := s.createIntent(t, brokeToken, brokeReservation.ID)

		outcome := request.OutcomeCredit
		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(confirmURLFmt, brokeIntent.ID),
			request.ConfirmIntentRequest{Outcome: &outcome}, brokeToken)
		require.Equal(t, http.StatusPaymentRequired, w.Code, w.Body.String())

		fundedID, fundedToken := s.buyerToken(t, "funded@example.com", 10000)
		fundedReservation := s.reserve(t, fundedToken, raffleID, 1)
		fundedIntent := s.createIntent(t, fundedToken, fundedReservation.ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(confirmURLFmt, fundedIntent.ID),
			request.ConfirmIntentRequest{Outcome: &outcome}, fundedToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var confirmed commands.ConfirmIntentResult
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &confirmed))
		require.Len(t, confirmed.Tickets, 1)

		var balance int64
		err := s.DB.QueryRow(t.Context(),
			"SELECT credit_cents FROM buyers WHERE id = $1", fundedID).Scan(&balance)
		require.NoError(t, err)
		require.Equal(t, int64(9500), balance)
	})

	s.Run("Error case: a ticket reveals exactly once", func() {
		t := s.T()

		adminToken := s.adminToken(t)
		raffleID := s.setupActiveRaffle(t, adminToken, 100)
		_, token := s.buyerToken(t, "once@example.com", 0)

		reservationView := s.reserve(t, token, raffleID, 1)
		intent := s.createIntent(t, token, reservationView.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(confirmURLFmt, intent.ID), request.ConfirmIntentRequest{}, token)
		require.Equal(t, http.StatusOK, w.Code)
		var confirmed commands.ConfirmIntentResult
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &confirmed))
		ticketID := confirmed.Tickets[0].ID

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(revealURLFmt, ticketID), nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(revealURLFmt, ticketID), nil, token)
		require.Equal(t, http.StatusConflict, w.Code, "second reveal must be rejected")
	})
}

func (s *PurchaseFlowSuite) TestReservationLifecycle() {
	s.Run("Normal case: cancelling a reservation restores availability", func() {
		t := s.T()

		adminToken := s.adminToken(t)
		raffleID := s.setupActiveRaffle(t, adminToken, 100)
		_, token := s.buyerToken(t, "canceller@example.com", 0)

		reservationView := s.reserve(t, token, raffleID, 4)
		require.Equal(t, int32(16), s.availableTickets(t, raffleID))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			reservationsURL+"/"+reservationView.ID.String(), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		require.Equal(t, int32(20), s.availableTickets(t, raffleID))

		// A retried cancel is a no-op: same status, no double release.
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			reservationsURL+"/"+reservationView.ID.String(), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		require.Equal(t, int32(20), s.availableTickets(t, raffleID))
	})

	s.Run("Error case: per-buyer cap is enforced across reservations", func() {
		t := s.T()

		adminToken := s.adminToken(t)
		raffleID := s.setupActiveRaffle(t, adminToken, 100)
		_, token := s.buyerToken(t, "greedy@example.com", 0)

		s.reserve(t, token, raffleID, 5)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			request.ReserveTicketsRequest{RaffleID: raffleID, Quantity: 1}, token)
		require.Equal(t, http.StatusConflict, w.Code, "max_per_buyer is 5")
	})
}

func (s *PurchaseFlowSuite) TestConcurrency() {
	s.Run("Concurrency: exactly one of two reservations wins the last ticket", func() {
		t := s.T()

		raffleID := dbtest.CreateTestRaffle(t, s.DB, dbtest.RaffleFixture{
			Title:        "Last Ticket",
			TotalTickets: 1,
			MaxPerBuyer:  1,
		})
		_, token1 := s.buyerToken(t, "racer1@example.com", 0)
		_, token2 := s.buyerToken(t, "racer2@example.com", 0)

		codes := make(chan int, 2)
		for _, token := range []string{token1, token2} {
			go func(tok string) {
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
					request.ReserveTicketsRequest{RaffleID: raffleID, Quantity: 1}, tok)
				codes <- w.Code
			}(token)
		}

		first, second := <-codes, <-codes
		got := []int{first, second}
		require.Contains(t, got, http.StatusCreated)
		require.Contains(t, got, http.StatusConflict)
		require.Equal(t, int32(0), s.availableTickets(t, raffleID))
	})
}

func (s *PurchaseFlowSuite) TestEndOfRaffleDraw() {
	s.Run("Normal case: the draw resolves draw-win prizes over the sold tickets", func() {
		t := s.T()
		adminToken := s.adminToken(t)

		templateReq := request.CreateTemplateRequest{
			Name:               "Festival Trip",
			Tier:               "platinum",
			PrizeType:          "draw_win",
			RetailValueCents:   50000,
			CashValueCents:     40000,
			CreditValueCents:   45000,
			ClaimDeadlineHours: 72,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminTemplatesURL, templateReq, adminToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var template queries.TemplateView
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &template))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, adminPoolsURL,
			request.CreatePoolRequest{Name: "Finale Pool"}, adminToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var pool queries.PoolView
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &pool))

		allocateReq := request.AllocatePrizesRequest{
			TemplateID:     template.ID,
			Quantity:       1,
			CollectiveOdds: 10,
		}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			adminPoolsURL+"/"+pool.ID.String()+"/allocate", allocateReq, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			adminPoolsURL+"/"+pool.ID.String()+"/lock", nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		now := time.Now()
		raffleReq := request.CreateRaffleRequest{
			Title:            "Finale Raffle",
			TicketPriceCents: 500,
			TotalTickets:     2,
			MaxPerBuyer:      2,
			StartsAt:         now.Add(-time.Hour),
			EndsAt:           now.Add(24 * time.Hour),
		}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, adminRafflesURL, raffleReq, adminToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var raffleView queries.RaffleView
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &raffleView))
		raffleID := raffleView.ID

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			adminPoolsURL+"/"+pool.ID.String()+"/assign",
			request.AssignPoolRequest{RaffleID: raffleID}, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch,
			adminRafflesURL+"/"+raffleID.String()+"/status",
			request.ChangeRaffleStatusRequest{Status: "active"}, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// The draw refuses a raffle still selling.
		drawURL := adminRafflesURL + "/" + raffleID.String() + "/draw"
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, drawURL, nil, adminToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		buyerID, token := s.buyerToken(t, "finalist@example.com", 0)
		reservationView := s.reserve(t, token, raffleID, 2)
		intent := s.createIntent(t, token, reservationView.ID)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(confirmURLFmt, intent.ID), request.ConfirmIntentRequest{}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var confirmed commands.ConfirmIntentResult
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &confirmed))
		require.Len(t, confirmed.Tickets, 2)

		// Buying out the raffle made it sold_out, so the draw can run.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, drawURL, nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var result commands.DrawResult
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &result))
		require.Len(t, result.Winners, 1)
		require.Equal(t, buyerID, result.Winners[0].BuyerID)
		require.Equal(t, "Festival Trip", result.Winners[0].PrizeName)

		soldIDs := []uuid.UUID{confirmed.Tickets[0].ID, confirmed.Tickets[1].ID}
		require.Contains(t, soldIDs, result.Winners[0].TicketID)

		// The winner converts the prize like any other discovered win.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(claimURLFmt, result.Winners[0].TicketID),
			request.ClaimPrizeRequest{ValueType: "cash"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var claim commands.ClaimResult
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &claim))
		require.Equal(t, int64(40000), claim.ValueCents)

		// A repeat draw finds no instance left and awards nothing new.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, drawURL, nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var rerun commands.DrawResult
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rerun))
		require.Empty(t, rerun.Winners)
	})
}

func (s *PurchaseFlowSuite) TestSoldOut() {
	s.Run("Normal case: outstanding holds defer the sold_out flip", func() {
		t := s.T()

		raffleID := dbtest.CreateTestRaffle(t, s.DB, dbtest.RaffleFixture{
			Title: "Nearly Gone", TotalTickets: 3, MaxPerBuyer: 2,
		})
		_, tokenA := s.buyerToken(t, "holder@example.com", 0)
		_, tokenB := s.buyerToken(t, "closer@example.com", 0)

		holdA := s.reserve(t, tokenA, raffleID, 2)
		holdB := s.reserve(t, tokenB, raffleID, 1)
		require.Equal(t, int32(0), s.availableTickets(t, raffleID))

		// B pays while A's hold is still pending. The counter is zero but
		// A's tickets may yet come back, so the raffle must stay active.
		intentB := s.createIntent(t, tokenB, holdB.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(confirmURLFmt, intentB.ID), request.ConfirmIntentRequest{}, tokenB)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var status string
		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT status FROM raffles WHERE id = $1", raffleID).Scan(&status))
		require.Equal(t, "active", status)

		// A's hold lapses and its tickets return to sale.
		_, err := s.DB.Exec(t.Context(),
			"UPDATE reservations SET expires_at = now() - interval '1 minute' WHERE id = $1",
			holdA.ID)
		require.NoError(t, err)
		expired, err := s.Sweeps.ExpireReservations(t.Context(), 10)
		require.NoError(t, err)
		require.Equal(t, 1, expired)
		require.Equal(t, int32(2), s.availableTickets(t, raffleID))

		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT status FROM raffles WHERE id = $1", raffleID).Scan(&status))
		require.Equal(t, "active", status)

		// Confirming the true last tickets flips the raffle.
		holdA2 := s.reserve(t, tokenA, raffleID, 2)
		intentA := s.createIntent(t, tokenA, holdA2.ID)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(confirmURLFmt, intentA.ID), request.ConfirmIntentRequest{}, tokenA)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT status FROM raffles WHERE id = $1", raffleID).Scan(&status))
		require.Equal(t, "sold_out", status)
	})
}

func (s *PurchaseFlowSuite) TestExpirySweep() {
	s.Run("Normal case: the sweep releases lapsed holds", func() {
		t := s.T()

		raffleID := dbtest.CreateTestRaffle(t, s.DB, dbtest.RaffleFixture{Title: "Sweepable"})
		_, token := s.buyerToken(t, "sleeper@example.com", 0)

		reservationView := s.reserve(t, token, raffleID, 2)
		require.Equal(t, int32(98), s.availableTickets(t, raffleID))

		// Age the hold past its TTL instead of waiting it out.
		_, err := s.DB.Exec(t.Context(),
			"UPDATE reservations SET expires_at = now() - interval '1 minute' WHERE id = $1",
			reservationView.ID)
		require.NoError(t, err)

		expired, err := s.Sweeps.ExpireReservations(t.Context(), 10)
		require.NoError(t, err)
		require.Equal(t, 1, expired)

		require.Equal(t, int32(100), s.availableTickets(t, raffleID))

		var status string
		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT status FROM reservations WHERE id = $1", reservationView.ID).Scan(&status))
		require.Equal(t, "expired", status)

		// An expired hold cannot be paid for.
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, intentsURL,
			request.CreateIntentRequest{ReservationID: reservationView.ID}, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Normal case: a lapsed claim window forfeits the prize for good", func() {
		t := s.T()

		adminToken := s.adminToken(t)
		raffleID := s.setupActiveRaffle(t, adminToken, 100)
		_, token := s.buyerToken(t, "latecomer@example.com", 0)

		reservationView := s.reserve(t, token, raffleID, 1)
		intent := s.createIntent(t, token, reservationView.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(confirmURLFmt, intent.ID), request.ConfirmIntentRequest{}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var confirmed commands.ConfirmIntentResult
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &confirmed))
		ticketID := confirmed.Tickets[0].ID

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(revealURLFmt, ticketID), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var reveal commands.RevealResult
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &reveal))
		require.True(t, reveal.InstantWin)

		// Age the claim window past its deadline instead of waiting it out.
		_, err := s.DB.Exec(t.Context(),
			"UPDATE prize_instances SET claim_deadline = now() - interval '1 minute' WHERE ticket_id = $1",
			ticketID)
		require.NoError(t, err)

		forfeited, err := s.Sweeps.ExpireClaimWindows(t.Context(), 10)
		require.NoError(t, err)
		require.Equal(t, 1, forfeited)

		// The instance is retired, not returned to the pool.
		var instStatus string
		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT status FROM prize_instances WHERE ticket_id = $1", ticketID).Scan(&instStatus))
		require.Equal(t, "forfeited", instStatus)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(claimURLFmt, ticketID), request.ClaimPrizeRequest{ValueType: "cash"}, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		// The forfeited prize is never served to a later reveal.
		reservation2 := s.reserve(t, token, raffleID, 1)
		intent2 := s.createIntent(t, token, reservation2.ID)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(confirmURLFmt, intent2.ID), request.ConfirmIntentRequest{}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var confirmed2 commands.ConfirmIntentResult
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &confirmed2))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(revealURLFmt, confirmed2.Tickets[0].ID), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var reveal2 commands.RevealResult
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &reveal2))
		require.False(t, reveal2.InstantWin)
	})
}

func (s *PurchaseFlowSuite) TestAuthorization() {
	s.Run("Auth test - reservation endpoints require a token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			request.ReserveTicketsRequest{RaffleID: uuid.New(), Quantity: 1}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Auth test - admin endpoints reject buyer tokens", func() {
		t := s.T()

		_, token := s.buyerToken(t, "plain@example.com", 0)

		now := time.Now()
		raffleReq := request.CreateRaffleRequest{
			Title:            "Forbidden",
			TicketPriceCents: 100,
			TotalTickets:     10,
			MaxPerBuyer:      2,
			StartsAt:         now,
			EndsAt:           now.Add(time.Hour),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminRafflesURL, raffleReq, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Auth test - expired tokens are rejected", func() {
		t := s.T()

		buyerID := dbtest.CreateTestBuyer(t, s.DB, "expired@example.com", "buyer", 0)
		token := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(t, buyerID, buyer.RoleBuyer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Normal case: raffle catalog is public", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, rafflesURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
	})
}
