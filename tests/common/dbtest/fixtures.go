//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestBuyer(t *testing.T, db DBLike, email, role string, creditCents int64) uuid.UUID {
	t.Helper()

	buyerID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO buyers (id, email, role, credit_cents) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		buyerID, email, role, creditCents)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM buyers WHERE email = $1", email).Scan(&buyerID))
	}

	return buyerID
}

type RaffleFixture struct {
	Title            string
	TicketPriceCents int64
	TotalTickets     int32
	MaxPerBuyer      int32
	Status           string
	StartsAt         time.Time
	EndsAt           time.Time
	PoolID           *uuid.UUID
}

func CreateTestRaffle(t *testing.T, db DBLike, f RaffleFixture) uuid.UUID {
	t.Helper()

	if f.Title == "" {
		f.Title = "Test Raffle"
	}
	if f.TicketPriceCents == 0 {
		f.TicketPriceCents = 500
	}
	if f.TotalTickets == 0 {
		f.TotalTickets = 100
	}
	if f.MaxPerBuyer == 0 {
		f.MaxPerBuyer = 10
	}
	if f.Status == "" {
		f.Status = "active"
	}
	if f.StartsAt.IsZero() {
		f.StartsAt = time.Now().Add(-time.Hour)
	}
	if f.EndsAt.IsZero() {
		f.EndsAt = time.Now().Add(24 * time.Hour)
	}

	raffleID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO raffles (id, title, ticket_price_cents, total_tickets, available_tickets,
		                     max_per_buyer, starts_at, ends_at, status, pool_id)
		VALUES ($1, $2, $3, $4, $4, $5, $6, $7, $8, $9)`,
		raffleID, f.Title, f.TicketPriceCents, f.TotalTickets,
		f.MaxPerBuyer, f.StartsAt, f.EndsAt, f.Status, f.PoolID)
	require.NoError(t, err)

	return raffleID
}

func CreateTestTemplate(t *testing.T, db DBLike, name, tier, prizeType string) uuid.UUID {
	t.Helper()

	templateID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO prize_templates (id, name, tier, prize_type, retail_value_cents,
		                             cash_value_cents, credit_value_cents, claim_deadline_hours,
		                             auto_claim_credit, status)
		VALUES ($1, $2, $3, $4, 10000, 8000, 9000, 72, false, 'active')`,
		templateID, name, tier, prizeType)
	require.NoError(t, err)

	return templateID
}

func CreateTestPool(t *testing.T, db DBLike, name, status string) uuid.UUID {
	t.Helper()

	poolID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO prize_pools (id, name, status) VALUES ($1, $2, $3)",
		poolID, name, status)
	require.NoError(t, err)

	return poolID
}

func CreateTestInstance(t *testing.T, db DBLike, poolID, templateID uuid.UUID, ref string, odds float64) uuid.UUID {
	t.Helper()

	instanceID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO prize_instances (id, instance_ref, pool_id, template_id, odds, status)
		VALUES ($1, $2, $3, $4, $5, 'available')`,
		instanceID, ref, poolID, templateID, odds)
	require.NoError(t, err)

	return instanceID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var tbl string
			if err := rows.Scan(&tbl); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, tbl)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
