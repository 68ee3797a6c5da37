// Package port declares the collaborator interfaces the ordering core
// consumes. Transport, persistence engines and push plumbing live behind
// them; the core never talks to the network itself.
package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/slicelab/pizzacart/internal/domain"
)

// CatalogProvider is the menu sync. The cart reacts to each snapshot
// replacement by running its validation pass.
type CatalogProvider interface {
	CurrentSnapshot() domain.CatalogSnapshot
	OnSnapshotReplaced(fn func(domain.CatalogSnapshot)) (cancel func())
}

// OrderSubmitter executes the order submission and returns the new order id.
type OrderSubmitter interface {
	Submit(ctx context.Context, body map[string]any) (uuid.UUID, error)
}

type OrderFetcher interface {
	FetchOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error)
}

// PushRegistrar obtains a push token. The bool reports whether the user
// actually granted permission.
type PushRegistrar interface {
	RegisterForPush(ctx context.Context) (bool, error)
}

// OrderRepository keeps the local order history.
type OrderRepository interface {
	InsertOrder(ctx context.Context, order domain.Order) (uuid.UUID, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error)
	SearchOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	DeleteOrder(ctx context.Context, orderID uuid.UUID) error
}

// BonusRepository keeps the local copy of the loyalty ledger; the server's
// list is authoritative and replaces it wholesale on sync.
type BonusRepository interface {
	ReplaceAll(ctx context.Context, ownerID string, entries []domain.Bonus) error
	ListBonuses(ctx context.Context, ownerID string) ([]domain.Bonus, error)
	Balance(ctx context.Context, ownerID string) (domain.Money, error)
}
