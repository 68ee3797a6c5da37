package repository_test

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"go.uber.org/goleak"
	"golang.org/x/text/currency"

	"github.com/slicelab/pizzacart/internal/domain"
	"github.com/slicelab/pizzacart/internal/port"
	"github.com/slicelab/pizzacart/internal/repository"
)

type orderRepositorySuite struct {
	suite.Suite

	pool      *pgxpool.Pool
	repo      port.OrderRepository
	container testcontainers.Container
}

// entry point to run the tests in the suite
func TestOrderRepositorySuite(t *testing.T) {
	// Verifies no leaks after all tests in the suite run.
	defer goleak.VerifyNone(t)

	suite.Run(t, new(orderRepositorySuite))
}

// before all tests in the suite
func (suite *orderRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	var (
		connStr string
		err     error
	)

	suite.container, connStr, err = startPostgres(ctx)
	suite.NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.NoError(err)

	suite.NoError(repository.EnsureSchema(ctx, suite.pool))

	suite.repo = repository.NewOrder(suite.pool)
}

// after all tests in the suite
func (suite *orderRepositorySuite) TearDownSuite() {
	ctx := suite.T().Context()

	if suite.pool != nil {
		suite.pool.Close()
	}
	if suite.container != nil {
		suite.NoError(suite.container.Terminate(ctx))
	}
}

func (suite *orderRepositorySuite) TestInsertOrder() {
	tests := []struct {
		name      string
		orderFunc func() domain.Order
		wantError string
	}{
		{
			name:      "valid order with all fields: ok",
			orderFunc: fakeOrder,
		},
		{
			name: "valid order, no options on dishes: ok",
			orderFunc: func() domain.Order {
				o := fakeOrder()
				for i := range o.Dishes {
					o.Dishes[i].Dough = nil
					o.Dishes[i].CheeseBorder = nil
					o.Dishes[i].Toppings = nil
				}
				return o
			},
		},
		{
			name: "invalid order, no dishes: fail",
			orderFunc: func() domain.Order {
				o := fakeOrder()
				o.Dishes = nil
				return o
			},
			wantError: "no dishes in order",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			ttOrder := tt.orderFunc()

			orderID, err := suite.repo.InsertOrder(ctx, ttOrder)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			actualOrder, err := suite.repo.GetOrder(ctx, orderID)
			require.NoError(t, err)

			expected := ttOrder
			expected.ID = orderID

			assertOrder(t, expected, actualOrder)
		})
	}
}

func (suite *orderRepositorySuite) TestGetOrderNotFound() {
	t := suite.T()

	_, err := suite.repo.GetOrder(t.Context(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func (suite *orderRepositorySuite) TestSearchOrders() {
	t := suite.T()
	ctx := t.Context()

	ownerID := gofakeit.UUID()

	pickupOrder := fakeOrder()
	pickupOrder.OwnerID = ownerID
	pickupOrder.Pickup = true

	deliveryOrder := fakeOrder()
	deliveryOrder.OwnerID = ownerID
	deliveryOrder.Pickup = false
	deliveryOrder.StatusCode = "done"

	_, err := suite.repo.InsertOrder(ctx, pickupOrder)
	require.NoError(t, err)
	_, err = suite.repo.InsertOrder(ctx, deliveryOrder)
	require.NoError(t, err)

	tests := []struct {
		name      string
		filter    domain.OrderFilter
		wantCount int
		wantError string
	}{
		{
			name:      "by owner: both",
			filter:    domain.OrderFilter{OwnerIDs: []string{ownerID}},
			wantCount: 2,
		},
		{
			name:      "by owner and pickup: one",
			filter:    domain.OrderFilter{OwnerIDs: []string{ownerID}, Pickup: lo.ToPtr(true)},
			wantCount: 1,
		},
		{
			name:      "by owner and status: one",
			filter:    domain.OrderFilter{OwnerIDs: []string{ownerID}, StatusCodes: []string{"done"}},
			wantCount: 1,
		},
		{
			name:      "by unknown owner: none",
			filter:    domain.OrderFilter{OwnerIDs: []string{gofakeit.UUID()}},
			wantCount: 0,
		},
		{
			name:      "empty filter: fail",
			filter:    domain.OrderFilter{},
			wantError: "filter.Validate: all fields are empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			orders, err := suite.repo.SearchOrders(t.Context(), tt.filter)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Len(t, orders, tt.wantCount)
		})
	}
}

func (suite *orderRepositorySuite) TestDeleteOrder() {
	t := suite.T()
	ctx := t.Context()

	orderID, err := suite.repo.InsertOrder(ctx, fakeOrder())
	require.NoError(t, err)

	require.NoError(t, suite.repo.DeleteOrder(ctx, orderID))

	_, err = suite.repo.GetOrder(ctx, orderID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = suite.repo.DeleteOrder(ctx, orderID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func fakeMoney() domain.Money {
	return domain.Money{
		Amount:   decimal.NewFromFloat(gofakeit.Price(1, 100)),
		Currency: domain.DefaultCurrency,
	}
}

func fakeOrder() domain.Order {
	return domain.Order{
		OwnerID:       gofakeit.UUID(),
		StatusCode:    "accepted",
		CreatedAt:     time.Now().UTC().Truncate(time.Millisecond),
		Total:         fakeMoney(),
		PushEnabled:   gofakeit.Bool(),
		PromoCode:     gofakeit.Word(),
		Pickup:        gofakeit.Bool(),
		OperatorPhone: gofakeit.Phone(),
		Dishes: []domain.OrderedDish{
			{
				DishID:      gofakeit.UUID(),
				Name:        gofakeit.Word(),
				VariantID:   gofakeit.UUID(),
				VariantType: "small",
				VariantName: "25 см",
				Unit:        "шт",
				Dough: &domain.OrderedDough{
					ID:      gofakeit.UUID(),
					GroupID: gofakeit.UUID(),
					Name:    domain.ThinDoughName,
				},
				CheeseBorder: &domain.OrderedCheeseBorder{
					ID:      gofakeit.UUID(),
					GroupID: gofakeit.UUID(),
					Name:    "Сырный борт",
					Price:   fakeMoney(),
				},
				Toppings: []domain.OrderedTopping{
					{
						ID:      gofakeit.UUID(),
						GroupID: gofakeit.UUID(),
						Name:    gofakeit.Word(),
						Price:   fakeMoney(),
						Count:   gofakeit.Number(1, 5),
					},
				},
				Quantity: gofakeit.Number(1, 5),
			},
		},
	}
}

func assertOrder(t *testing.T, expected, actual domain.Order) {
	t.Helper()

	diff := cmp.Diff(expected, actual, cmpOptions()...)
	assert.Empty(t, diff)
}

func cmpOptions() []cmp.Option {
	// Custom comparers for the Money fields: decimals compare by value,
	// currencies by code.
	return []cmp.Option{
		cmp.Comparer(func(x, y decimal.Decimal) bool {
			return x.Equal(y)
		}),
		cmp.Comparer(func(x, y currency.Unit) bool {
			return x.String() == y.String()
		}),
		cmpopts.EquateApproxTime(time.Second),
		cmpopts.EquateEmpty(),
	}
}
