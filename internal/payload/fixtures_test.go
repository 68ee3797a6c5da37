package payload_test

import (
	"github.com/shopspring/decimal"

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

func pizzaItem() *domain.LineItem {
	dish := pizzaDish()
	variant, _ := dish.VariantByID("var-25")
	return domain.NewLineItem(dish, variant)
}

func configuredItem() *domain.LineItem {
	item := pizzaItem()
	border := domain.CheeseBorder{ID: "cb-1", Name: "Сырный борт", Price: money("50.00")}
	item.SetCheeseBorder(&border)
	item.SetToppingCount(baconTopping(), 2)
	item.AddQuantity(2)
	return item
}
