package cart_test

import (
	"github.com/shopspring/decimal"

	"github.com/slicelab/pizzacart/internal/cart"
	"github.com/slicelab/pizzacart/internal/domain"
)

func money(s string) domain.Money {
	return domain.NewMoney(decimal.RequireFromString(s), domain.DefaultCurrency)
}

func thinDough() domain.Dough {
	return domain.Dough{ID: "dough-thin", GroupID: "dg-1", Name: domain.ThinDoughName}
}

func traditionalDough() domain.Dough {
	return domain.Dough{ID: "dough-trad", GroupID: "dg-1", Name: "Традиционное"}
}

func baconTopping() domain.Topping {
	return domain.Topping{ID: "top-bacon", Name: "Бекон", Weight: "30 г", Price: money("30.50")}
}

func pizzaDish() domain.CatalogDish {
	border := domain.CheeseBorder{ID: "cb-1", Name: "Сырный борт", Price: money("50.00")}

	return domain.CatalogDish{
		ID:             "dish-pepperoni",
		Name:           "Пепперони",
		Category:       domain.CategoryPizza,
		Price:          money("450.00"),
		ToppingGroupID: "tg-1",
		Toppings:       []domain.Topping{baconTopping()},
		Variants: []domain.DishVariant{
			{
				ID:                  "var-25",
				Name:                "25 см",
				Type:                "small",
				Unit:                "шт",
				Price:               money("450.00"),
				BonusPayable:        true,
				Doughs:              []domain.Dough{thinDough(), traditionalDough()},
				CheeseBorder:        &border,
				CheeseBorderGroupID: "cbg-1",
			},
		},
	}
}

func drinkDish() domain.CatalogDish {
	return domain.CatalogDish{
		ID:       "dish-cola",
		Name:     "Кола",
		Category: domain.CategoryDrink,
		Price:    money("120.00"),
		Variants: []domain.DishVariant{
			{
				ID:           "var-05l",
				Name:         "0.5 л",
				Type:         "bottle",
				Unit:         "шт",
				Price:        money("120.00"),
				BonusPayable: false,
			},
		},
	}
}

func itemOf(dish domain.CatalogDish, variantID string) *domain.LineItem {
	variant, ok := dish.VariantByID(variantID)
	if !ok {
		panic("fixture variant missing: " + variantID)
	}
	return domain.NewLineItem(dish, variant)
}

func pizzaItem() *domain.LineItem {
	return itemOf(pizzaDish(), "var-25")
}

func drinkItem() *domain.LineItem {
	return itemOf(drinkDish(), "var-05l")
}

func snapshotOf(dishes ...domain.CatalogDish) domain.CatalogSnapshot {
	return domain.NewCatalogSnapshot(dishes)
}

// eventRecorder counts emissions per event kind.
type eventRecorder struct {
	counts map[cart.Event]int
}

func recordEvents(c *cart.Cart) *eventRecorder {
	r := &eventRecorder{counts: make(map[cart.Event]int)}
	c.Subscribe(func(e cart.Event) {
		r.counts[e]++
	})
	return r
}

func (r *eventRecorder) reset() {
	r.counts = make(map[cart.Event]int)
}

func (r *eventRecorder) count(e cart.Event) int {
	return r.counts[e]
}

func (r *eventRecorder) total() int {
	var n int
	for _, c := range r.counts {
		n += c
	}
	return n
}
