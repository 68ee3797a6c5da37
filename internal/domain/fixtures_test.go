package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/slicelab/pizzacart/internal/domain"
)

func amount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

func thinDough() domain.Dough {
	return domain.Dough{ID: "dough-thin", GroupID: "dg-1", Name: domain.ThinDoughName}
}

func traditionalDough() domain.Dough {
	return domain.Dough{ID: "dough-trad", GroupID: "dg-1", Name: "Традиционное"}
}

func baconTopping(t *testing.T) domain.Topping {
	return domain.Topping{ID: "top-bacon", Name: "Бекон", Weight: "30 г", Price: money(t, "30.50")}
}

func freeTopping(t *testing.T) domain.Topping {
	return domain.Topping{ID: "top-free", Name: "Зелень", Weight: "5 г", Price: money(t, "0")}
}

func cheeseBorder(t *testing.T) domain.CheeseBorder {
	return domain.CheeseBorder{ID: "cb-1", Name: "Сырный борт", Price: money(t, "50.00")}
}

// testDish is a pizza with two variants; the small one supports bonus
// payment, doughs, a cheese border and two toppings.
func testDish(t *testing.T) domain.CatalogDish {
	t.Helper()

	border := cheeseBorder(t)

	return domain.CatalogDish{
		ID:             "dish-pepperoni",
		Name:           "Пепперони",
		Category:       domain.CategoryPizza,
		Price:          money(t, "450.00"),
		ToppingGroupID: "tg-1",
		Toppings:       []domain.Topping{baconTopping(t), freeTopping(t)},
		Variants: []domain.DishVariant{
			{
				ID:                  "var-25",
				Name:                "25 см",
				Type:                "small",
				Unit:                "шт",
				Price:               money(t, "450.00"),
				BonusPayable:        true,
				Doughs:              []domain.Dough{thinDough(), traditionalDough()},
				CheeseBorder:        &border,
				CheeseBorderGroupID: "cbg-1",
			},
			{
				ID:           "var-30",
				Name:         "30 см",
				Type:         "medium",
				Unit:         "шт",
				Price:        money(t, "650.00"),
				BonusPayable: false,
				Doughs:       []domain.Dough{thinDough(), traditionalDough()},
			},
		},
	}
}

func testItem(t *testing.T) *domain.LineItem {
	t.Helper()

	dish := testDish(t)
	variant, ok := dish.VariantByID("var-25")
	if !ok {
		t.Fatal("fixture variant missing")
	}
	return domain.NewLineItem(dish, variant)
}
