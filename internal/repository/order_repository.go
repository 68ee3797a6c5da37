package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/slicelab/pizzacart/internal/domain"
	"github.com/slicelab/pizzacart/internal/port"
)

var (
	ErrNotFound = errors.New("order not found")
)

type orderRepository struct {
	db dbtx
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{db: pool}
}

func NewOrderWithTx(tx pgx.Tx) port.OrderRepository {
	return &orderRepository{db: tx}
}

const orderColumns = `id, owner_id, status, created_at, total_amount, total_currency,
       push_enabled, promo_code, pickup, operator_phone, dishes`

func (r *orderRepository) InsertOrder(ctx context.Context, order domain.Order) (uuid.UUID, error) {
	if len(order.Dishes) == 0 {
		return uuid.Nil, errors.New("no dishes in order")
	}

	orderID := order.ID
	if orderID == uuid.Nil {
		orderID = uuid.New()
	}

	createdAt := order.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	dishes, err := json.Marshal(mapOrderedDishesToDocs(order.Dishes))
	if err != nil {
		return uuid.Nil, fmt.Errorf("json.Marshal: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO orders (id, owner_id, status, created_at, total_amount, total_currency,
		                    push_enabled, promo_code, pickup, operator_phone, dishes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		orderID, order.OwnerID, order.StatusCode, createdAt,
		order.Total.Amount, order.Total.Currency.String(),
		order.PushEnabled, order.PromoCode, order.Pickup, order.OperatorPhone, dishes,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("db.Exec: %w", err)
	}

	return orderID, nil
}

func (r *orderRepository) GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error) {
	var o domain.Order

	row := r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderID)

	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return o, fmt.Errorf("scanOrder: %w", ErrNotFound)
		}
		return o, fmt.Errorf("scanOrder: %w", err)
	}

	return order, nil
}

func (r *orderRepository) SearchOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	if err := filter.Validate(); err != nil {
		return nil, fmt.Errorf("filter.Validate: %w", err)
	}

	var createdAfter, createdBefore *time.Time
	if filter.CreatedAt != nil {
		createdAfter = filter.CreatedAt.After
		createdBefore = filter.CreatedAt.Before
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE ($1::uuid[] IS NULL OR id = ANY($1))
		  AND ($2::text[] IS NULL OR owner_id = ANY($2))
		  AND ($3::text[] IS NULL OR status = ANY($3))
		  AND ($4::boolean IS NULL OR pickup = $4)
		  AND ($5::timestamptz IS NULL OR created_at >= $5)
		  AND ($6::timestamptz IS NULL OR created_at <= $6)
		ORDER BY created_at DESC`,
		nilSliceIfEmpty(filter.IDs),
		nilSliceIfEmpty(filter.OwnerIDs),
		nilSliceIfEmpty(filter.StatusCodes),
		filter.Pickup,
		createdAfter,
		createdBefore,
	)
	if err != nil {
		return nil, fmt.Errorf("db.Query: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanOrder: %w", err)
		}
		orders = append(orders, order)
	}

	return orders, rows.Err()
}

func (r *orderRepository) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	if orderID == uuid.Nil {
		return fmt.Errorf("orderID is empty")
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("db.Exec: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("db.Exec: %w", ErrNotFound)
	}

	return nil
}

func scanOrder(row pgx.Row) (domain.Order, error) {
	var (
		o            domain.Order
		totalAmount  decimal.Decimal
		currencyCode string
		dishesJSON   []byte
	)

	err := row.Scan(&o.ID, &o.OwnerID, &o.StatusCode, &o.CreatedAt, &totalAmount, &currencyCode,
		&o.PushEnabled, &o.PromoCode, &o.Pickup, &o.OperatorPhone, &dishesJSON)
	if err != nil {
		return o, err
	}

	parsedCurrency, err := currency.ParseISO(currencyCode)
	if err != nil {
		return o, fmt.Errorf("currency[%s] is not valid: %w", currencyCode, err)
	}
	o.Total = domain.Money{Amount: totalAmount, Currency: parsedCurrency}

	var docs []orderedDishDoc
	if err := json.Unmarshal(dishesJSON, &docs); err != nil {
		return o, fmt.Errorf("json.Unmarshal: %w", err)
	}

	o.Dishes, err = mapDocsToOrderedDishes(docs)
	if err != nil {
		return o, fmt.Errorf("mapDocsToOrderedDishes: %w", err)
	}

	return o, nil
}

func nilSliceIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}
