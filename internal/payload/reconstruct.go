package payload

import (
	"github.com/slicelab/pizzacart/internal/domain"
)

// ReconstructLineItem resolves a historical ordered dish against the live
// catalog for "repeat this order". Options re-attach only when both their id
// and group id still match the current catalog; anything stale is dropped
// silently. Returns false when the base dish or variant no longer resolves
// at all — a fully-stale dish cannot be repeated.
func ReconstructLineItem(snapshot domain.CatalogSnapshot, od domain.OrderedDish) (*domain.LineItem, bool) {
	dish, variant, ok := snapshot.Variant(od.DishID, od.VariantID)
	if !ok {
		return nil, false
	}

	item := domain.NewLineItem(dish, variant)
	item.AddQuantity(od.Quantity - 1)

	if od.Dough != nil {
		if dough, ok := variant.DoughByID(od.Dough.ID); ok && dough.GroupID == od.Dough.GroupID {
			item.SetDough(&dough)
		}
	}

	// The thin-dough rule applies symmetrically on reconstruction:
	// SetCheeseBorder is a no-op unless the resolved dough is thin.
	if od.CheeseBorder != nil && variant.CheeseBorder != nil &&
		variant.CheeseBorderGroupID == od.CheeseBorder.GroupID &&
		variant.CheeseBorder.ID == od.CheeseBorder.ID {
		border := *variant.CheeseBorder
		item.SetCheeseBorder(&border)
	}

	for _, ot := range od.Toppings {
		if dish.ToppingGroupID != ot.GroupID {
			continue
		}
		if topping, ok := dish.ToppingByID(ot.ID); ok {
			item.SetToppingCount(topping, ot.Count)
		}
	}

	return item, true
}

// ReconstructOrder maps every dish of a historical order that still
// resolves; the second result reports how many were dropped so the caller
// can show a partial-success notice.
func ReconstructOrder(snapshot domain.CatalogSnapshot, order domain.Order) ([]*domain.LineItem, int) {
	var (
		items   []*domain.LineItem
		dropped int
	)
	for _, od := range order.Dishes {
		item, ok := ReconstructLineItem(snapshot, od)
		if !ok {
			dropped++
			continue
		}
		items = append(items, item)
	}
	return items, dropped
}
