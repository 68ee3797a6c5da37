package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/slicelab/pizzacart/internal/domain"
	"github.com/slicelab/pizzacart/internal/port"
)

type bonusRepository struct {
	db dbtx
}

func NewBonus(pool *pgxpool.Pool) port.BonusRepository {
	return &bonusRepository{db: pool}
}

func NewBonusWithTx(tx pgx.Tx) port.BonusRepository {
	return &bonusRepository{db: tx}
}

// ReplaceAll swaps the owner's ledger for the server's authoritative list in
// one transaction.
func (r *bonusRepository) ReplaceAll(ctx context.Context, ownerID string, entries []domain.Bonus) error {
	_, err := withTx(ctx, r.db, func(q dbtx) (struct{}, error) {
		if _, err := q.Exec(ctx, `DELETE FROM bonuses WHERE owner_id = $1`, ownerID); err != nil {
			return struct{}{}, fmt.Errorf("q.Exec delete: %w", err)
		}

		for _, entry := range entries {
			entryID := entry.ID
			if entryID == uuid.Nil {
				entryID = uuid.New()
			}
			_, err := q.Exec(ctx, `
				INSERT INTO bonuses (id, owner_id, amount, order_sum, currency, earned_at)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				entryID, ownerID, entry.Amount.Amount, entry.OrderSum.Amount,
				entry.Amount.Currency.String(), entry.Date,
			)
			if err != nil {
				return struct{}{}, fmt.Errorf("q.Exec insert: %w", err)
			}
		}

		return struct{}{}, nil
	})
	if err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}

func (r *bonusRepository) ListBonuses(ctx context.Context, ownerID string) ([]domain.Bonus, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, amount, order_sum, currency, earned_at
		FROM bonuses
		WHERE owner_id = $1
		ORDER BY earned_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db.Query: %w", err)
	}
	defer rows.Close()

	var entries []domain.Bonus
	for rows.Next() {
		var (
			b            domain.Bonus
			amount       decimal.Decimal
			orderSum     decimal.Decimal
			currencyCode string
		)
		if err := rows.Scan(&b.ID, &amount, &orderSum, &currencyCode, &b.Date); err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}

		parsedCurrency, err := currency.ParseISO(currencyCode)
		if err != nil {
			return nil, fmt.Errorf("currency[%s] is not valid: %w", currencyCode, err)
		}

		b.Amount = domain.Money{Amount: amount, Currency: parsedCurrency}
		b.OrderSum = domain.Money{Amount: orderSum, Currency: parsedCurrency}
		entries = append(entries, b)
	}

	return entries, rows.Err()
}

func (r *bonusRepository) Balance(ctx context.Context, ownerID string) (domain.Money, error) {
	var total decimal.Decimal

	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM bonuses WHERE owner_id = $1`, ownerID,
	).Scan(&total)
	if err != nil {
		return domain.Money{}, fmt.Errorf("db.QueryRow: %w", err)
	}

	return domain.NewMoney(total, domain.DefaultCurrency), nil
}
