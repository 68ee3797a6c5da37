package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderedDough, OrderedCheeseBorder and OrderedTopping are frozen copies of
// the options chosen at purchase time. They carry enough data to display and
// to attempt re-resolution against a later catalog, but they are not live
// catalog references.
type OrderedDough struct {
	ID      string
	GroupID string
	Name    string
}

type OrderedCheeseBorder struct {
	ID      string
	GroupID string
	Name    string
	Price   Money
}

type OrderedTopping struct {
	ID      string
	GroupID string
	Name    string
	Price   Money
	Count   int
}

// OrderedDish is an immutable historical record of one purchased line item,
// decoupled from the live catalog so past orders display correctly after
// menu changes.
type OrderedDish struct {
	DishID       string
	Name         string
	VariantID    string
	VariantType  string
	VariantName  string
	Unit         string
	Dough        *OrderedDough
	CheeseBorder *OrderedCheeseBorder
	Toppings     []OrderedTopping
	Quantity     int
}

// Snapshot freezes the item's current configuration into an OrderedDish.
// Zero-count topping selections are not part of the purchase record.
func (li *LineItem) Snapshot() OrderedDish {
	od := OrderedDish{
		DishID:      li.Dish.ID,
		Name:        li.Dish.Name,
		VariantID:   li.Variant.ID,
		VariantType: li.Variant.Type,
		VariantName: li.Variant.Name,
		Unit:        li.Variant.Unit,
		Quantity:    li.Quantity,
	}
	if li.Dough != nil {
		od.Dough = &OrderedDough{
			ID:      li.Dough.ID,
			GroupID: li.Dough.GroupID,
			Name:    li.Dough.Name,
		}
	}
	if li.CheeseBorder != nil {
		od.CheeseBorder = &OrderedCheeseBorder{
			ID:      li.CheeseBorder.ID,
			GroupID: li.Variant.CheeseBorderGroupID,
			Name:    li.CheeseBorder.Name,
			Price:   li.CheeseBorder.Price,
		}
	}
	for _, sel := range li.Toppings {
		if sel.Count <= 0 {
			continue
		}
		od.Toppings = append(od.Toppings, OrderedTopping{
			ID:      sel.Topping.ID,
			GroupID: li.Dish.ToppingGroupID,
			Name:    sel.Topping.Name,
			Price:   sel.Topping.Price,
			Count:   sel.Count,
		})
	}
	return od
}

// Order is a submitted order as echoed or re-fetched from the backend.
type Order struct {
	ID            uuid.UUID
	OwnerID       string
	StatusCode    string
	CreatedAt     time.Time
	Total         Money
	PushEnabled   bool
	PromoCode     string
	Pickup        bool
	OperatorPhone string
	Dishes        []OrderedDish
}

func (o Order) DisplayStatus() DisplayStatus {
	return DisplayStatusFor(o.StatusCode, o.Pickup)
}

// Bonus is one loyalty-ledger entry: points earned for an order sum on a
// date. The ledger is append/reconcile-only.
type Bonus struct {
	ID       uuid.UUID
	Amount   Money
	OrderSum Money
	Date     time.Time
}
