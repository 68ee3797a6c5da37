// Package cart holds the ordered collection of line items for the current
// user and the pricing rules over it. All mutators are expected to run on a
// single goroutine; the host application serializes calls, the cart itself
// takes no locks.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/slicelab/pizzacart/internal/domain"
)

// DefaultOwnerID scopes the cart of a user who has not signed in.
const DefaultOwnerID = "guest"

type Cart struct {
	ownerID string
	items   []*domain.LineItem
	emitter emitter
}

func New(ownerID string) *Cart {
	if ownerID == "" {
		ownerID = DefaultOwnerID
	}
	return &Cart{ownerID: ownerID}
}

func (c *Cart) OwnerID() string {
	return c.ownerID
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Items returns the entries in order. The slice is a copy, the items are not.
func (c *Cart) Items() []*domain.LineItem {
	out := make([]*domain.LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) ItemAt(index int) (*domain.LineItem, bool) {
	if index < 0 || index >= len(c.items) {
		return nil, false
	}
	return c.items[index], true
}

// Subscribe registers a change listener and returns its unsubscribe func.
func (c *Cart) Subscribe(fn func(Event)) func() {
	return c.emitter.subscribe(fn)
}

// AddItem merges into the first structurally-equal entry if there is one,
// otherwise appends. The cart never holds two structurally-equal entries.
func (c *Cart) AddItem(item *domain.LineItem) {
	if item == nil {
		return
	}
	for _, existing := range c.items {
		if existing.StructurallyEqual(item) {
			existing.AddQuantity(item.Quantity)
			c.emitter.emit(EventItemsChanged)
			return
		}
	}
	c.items = append(c.items, item)
	c.emitter.emit(EventItemsChanged)
	c.emitter.emit(EventItemsCountChanged)
}

// RemoveItem removes the first structurally-equal entry and returns its
// former index so the caller can animate the removal.
func (c *Cart) RemoveItem(item *domain.LineItem) (int, bool) {
	if item == nil {
		return 0, false
	}
	for i, existing := range c.items {
		if existing.StructurallyEqual(item) {
			c.removeAt(i)
			return i, true
		}
	}
	return 0, false
}

func (c *Cart) RemoveItemAt(index int) bool {
	if index < 0 || index >= len(c.items) {
		return false
	}
	c.removeAt(index)
	return true
}

// removeAt drops the entry together with its owned topping selections.
func (c *Cart) removeAt(index int) {
	c.items = append(c.items[:index], c.items[index+1:]...)
	c.emitter.emit(EventItemsChanged)
	c.emitter.emit(EventItemsCountChanged)
}

func (c *Cart) RemoveAllItems() {
	c.items = nil
	c.emitter.emit(EventItemsChanged)
	c.emitter.emit(EventItemsCountChanged)
}

// ValidateItems reconciles the cart against a replacement catalog snapshot:
// entries whose dish or variant no longer resolve are dropped, a dough that
// left the variant resets to the default, a cheese border that no longer
// applies is cleared and selections of vanished toppings are dropped.
// Surviving references are refreshed to the snapshot's data. Idempotent: a
// second pass over the same snapshot mutates nothing and emits nothing.
func (c *Cart) ValidateItems(snapshot domain.CatalogSnapshot) {
	var changed bool
	countBefore := len(c.items)

	kept := make([]*domain.LineItem, 0, len(c.items))
	for _, item := range c.items {
		dish, variant, ok := snapshot.Variant(item.Dish.ID, item.Variant.ID)
		if !ok {
			changed = true
			continue
		}
		item.Dish = dish
		item.Variant = variant

		if item.Dough != nil {
			if refreshed, ok := variant.DoughByID(item.Dough.ID); ok {
				item.Dough = &refreshed
			} else {
				item.Dough = variant.DefaultDough()
				changed = true
			}
		}

		if item.CheeseBorder != nil {
			switch {
			case item.Dough == nil || !item.Dough.IsThin():
				item.CheeseBorder = nil
				changed = true
			case variant.CheeseBorder == nil || variant.CheeseBorder.ID != item.CheeseBorder.ID:
				item.CheeseBorder = nil
				changed = true
			default:
				refreshed := *variant.CheeseBorder
				item.CheeseBorder = &refreshed
			}
		}

		var selections []domain.ToppingSelection
		for _, sel := range item.Toppings {
			topping, ok := dish.ToppingByID(sel.Topping.ID)
			if !ok {
				changed = true
				continue
			}
			sel.Topping = topping
			selections = append(selections, sel)
		}
		item.Toppings = selections

		kept = append(kept, item)
	}
	c.items = kept

	if changed {
		c.emitter.emit(EventItemsChanged)
		c.emitter.emit(EventItemsValidated)
	}
	if len(c.items) != countBefore {
		c.emitter.emit(EventItemsCountChanged)
	}
}

func (c *Cart) TotalPrice() domain.Money {
	total := domain.ZeroMoney(domain.DefaultCurrency)
	for _, item := range c.items {
		total = total.Add(item.Price())
	}
	return total
}

// TotalPriceEligibleForBonusPayment sums only the entries whose variant
// allows bonus-point payment.
func (c *Cart) TotalPriceEligibleForBonusPayment() domain.Money {
	total := domain.ZeroMoney(domain.DefaultCurrency)
	for _, item := range c.items {
		if item.Variant.BonusPayable {
			total = total.Add(item.Price())
		}
	}
	return total
}

// MaxRedeemableBonusAmount caps redemption at maxRedeemPercent (0..100) of
// the bonus-eligible subtotal: the full balance when it fits under the cap,
// the cap otherwise, floor-rounded either way.
func (c *Cart) MaxRedeemableBonusAmount(balance domain.Money, maxRedeemPercent decimal.Decimal) domain.Money {
	eligible := c.TotalPriceEligibleForBonusPayment()
	zero := domain.ZeroMoney(eligible.Currency)

	hundred := decimal.NewFromInt(100)
	percent := maxRedeemPercent
	if percent.IsNegative() {
		percent = decimal.Zero
	}
	if percent.Cmp(hundred) > 0 {
		percent = hundred
	}

	if !balance.IsPositive() || percent.IsZero() || eligible.IsZero() {
		return zero
	}

	// "balance/eligible <= percent" phrased as "balance <= cap"
	capAmount := eligible.Amount.Mul(percent.Div(hundred))
	if balance.Amount.Cmp(capAmount) <= 0 {
		return balance.FloorRound()
	}
	return domain.NewMoney(capAmount, eligible.Currency).FloorRound()
}
