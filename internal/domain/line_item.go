package domain

// ToppingSelection is owned exclusively by its LineItem; removing the item
// drops its selections with it. Zero counts are retained, not pruned, so a
// repeated validation pass stays idempotent. Structural equality compares
// effective counts, so a retained zero equals an absent selection.
type ToppingSelection struct {
	Topping Topping
	Count   int
}

// LineItem is one configured, quantity-bearing cart entry. Dish and Variant
// are always set once constructed; dough and cheese border are optional and
// their absence means "not selected".
type LineItem struct {
	Dish         CatalogDish
	Variant      DishVariant
	Dough        *Dough
	CheeseBorder *CheeseBorder
	Toppings     []ToppingSelection
	Quantity     int
}

// NewLineItem configures a dish with its variant's default dough, no cheese
// border, no toppings and quantity 1.
func NewLineItem(dish CatalogDish, variant DishVariant) *LineItem {
	return &LineItem{
		Dish:     dish,
		Variant:  variant,
		Dough:    variant.DefaultDough(),
		Quantity: 1,
	}
}

// NewLineItemFromTemplate copies another item's configuration. Topping
// selections survive only when the topping is still listed on the dish,
// which guards against stale catalog references.
func NewLineItemFromTemplate(template *LineItem) *LineItem {
	item := &LineItem{
		Dish:     template.Dish,
		Variant:  template.Variant,
		Quantity: template.Quantity,
	}
	if template.Dough != nil {
		d := *template.Dough
		item.Dough = &d
	}
	if template.CheeseBorder != nil {
		b := *template.CheeseBorder
		item.CheeseBorder = &b
	}
	for _, sel := range template.Toppings {
		if _, ok := template.Dish.ToppingByID(sel.Topping.ID); !ok {
			continue
		}
		item.Toppings = append(item.Toppings, sel)
	}
	return item
}

// Price is a pure function of the current fields, recomputed on every call.
func (li *LineItem) Price() Money {
	price := li.Variant.Price
	for _, sel := range li.Toppings {
		price = price.Add(sel.Topping.Price.MulInt(sel.Count))
	}
	if li.CheeseBorder != nil {
		price = price.Add(li.CheeseBorder.Price)
	}
	return price.MulInt(li.Quantity)
}

// ToppingCount returns the effective count for a topping id, zero when
// there is no selection for it.
func (li *LineItem) ToppingCount(toppingID string) int {
	for _, sel := range li.Toppings {
		if sel.Topping.ID == toppingID {
			return sel.Count
		}
	}
	return 0
}

// SetToppingCount upserts the selection for the topping. Counts below zero
// are treated as zero.
func (li *LineItem) SetToppingCount(topping Topping, count int) {
	if count < 0 {
		count = 0
	}
	for i := range li.Toppings {
		if li.Toppings[i].Topping.ID == topping.ID {
			li.Toppings[i].Count = count
			return
		}
	}
	li.Toppings = append(li.Toppings, ToppingSelection{Topping: topping, Count: count})
}

func (li *LineItem) AddToppingCount(topping Topping, delta int) {
	li.SetToppingCount(topping, li.ToppingCount(topping.ID)+delta)
}

// AddQuantity clamps at a minimum of one: a cart entry with zero quantity
// does not exist, it is removed instead.
func (li *LineItem) AddQuantity(delta int) {
	li.Quantity += delta
	if li.Quantity < 1 {
		li.Quantity = 1
	}
}

// SetDough selects a dough option. A cheese border is only valid on thin
// dough, so any other selection clears it.
func (li *LineItem) SetDough(dough *Dough) {
	li.Dough = dough
	if dough == nil || !dough.IsThin() {
		li.CheeseBorder = nil
	}
}

// SetCheeseBorder attaches a border; ignored unless the current dough is thin.
func (li *LineItem) SetCheeseBorder(border *CheeseBorder) {
	if border == nil {
		li.CheeseBorder = nil
		return
	}
	if li.Dough == nil || !li.Dough.IsThin() {
		return
	}
	li.CheeseBorder = border
}

// StructurallyEqual reports whether two items are the same configuration:
// same dish, variant, dough and cheese border, and the same effective count
// for every topping available on the dish. Quantity is excluded; this
// relation is what governs merge-on-add in the cart.
func (li *LineItem) StructurallyEqual(other *LineItem) bool {
	if other == nil {
		return false
	}
	if li.Dish.ID != other.Dish.ID || li.Variant.ID != other.Variant.ID {
		return false
	}
	if !optionalIDEqual(doughID(li.Dough), doughID(other.Dough)) {
		return false
	}
	if !optionalIDEqual(borderID(li.CheeseBorder), borderID(other.CheeseBorder)) {
		return false
	}
	for _, t := range li.Dish.Toppings {
		if li.ToppingCount(t.ID) != other.ToppingCount(t.ID) {
			return false
		}
	}
	return true
}

func doughID(d *Dough) *string {
	if d == nil {
		return nil
	}
	return &d.ID
}

func borderID(b *CheeseBorder) *string {
	if b == nil {
		return nil
	}
	return &b.ID
}

func optionalIDEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
