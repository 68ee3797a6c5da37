package repository

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/slicelab/pizzacart/internal/domain"
)

// jsonb documents for the frozen dish snapshots of an order. Amounts are
// serialized as decimal strings so nothing round-trips through floats.

type orderedDoughDoc struct {
	ID      string `json:"id"`
	GroupID string `json:"groupId"`
	Name    string `json:"name"`
}

type orderedCheeseBorderDoc struct {
	ID       string `json:"id"`
	GroupID  string `json:"groupId"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Currency string `json:"currency"`
}

type orderedToppingDoc struct {
	ID       string `json:"id"`
	GroupID  string `json:"groupId"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Currency string `json:"currency"`
	Count    int    `json:"count"`
}

type orderedDishDoc struct {
	DishID       string                  `json:"dishId"`
	Name         string                  `json:"name"`
	VariantID    string                  `json:"variantId"`
	VariantType  string                  `json:"variantType"`
	VariantName  string                  `json:"variantName"`
	Unit         string                  `json:"unit"`
	Dough        *orderedDoughDoc        `json:"dough,omitempty"`
	CheeseBorder *orderedCheeseBorderDoc `json:"cheeseBorder,omitempty"`
	Toppings     []orderedToppingDoc     `json:"toppings,omitempty"`
	Quantity     int                     `json:"quantity"`
}

func mapOrderedDishToDoc(od domain.OrderedDish) orderedDishDoc {
	doc := orderedDishDoc{
		DishID:      od.DishID,
		Name:        od.Name,
		VariantID:   od.VariantID,
		VariantType: od.VariantType,
		VariantName: od.VariantName,
		Unit:        od.Unit,
		Quantity:    od.Quantity,
	}
	if od.Dough != nil {
		doc.Dough = &orderedDoughDoc{
			ID:      od.Dough.ID,
			GroupID: od.Dough.GroupID,
			Name:    od.Dough.Name,
		}
	}
	if od.CheeseBorder != nil {
		doc.CheeseBorder = &orderedCheeseBorderDoc{
			ID:       od.CheeseBorder.ID,
			GroupID:  od.CheeseBorder.GroupID,
			Name:     od.CheeseBorder.Name,
			Price:    od.CheeseBorder.Price.Amount.String(),
			Currency: od.CheeseBorder.Price.Currency.String(),
		}
	}
	for _, t := range od.Toppings {
		doc.Toppings = append(doc.Toppings, orderedToppingDoc{
			ID:       t.ID,
			GroupID:  t.GroupID,
			Name:     t.Name,
			Price:    t.Price.Amount.String(),
			Currency: t.Price.Currency.String(),
			Count:    t.Count,
		})
	}
	return doc
}

func mapOrderedDishesToDocs(dishes []domain.OrderedDish) []orderedDishDoc {
	docs := make([]orderedDishDoc, 0, len(dishes))
	for _, od := range dishes {
		docs = append(docs, mapOrderedDishToDoc(od))
	}
	return docs
}

func mapDocToOrderedDish(doc orderedDishDoc) (domain.OrderedDish, error) {
	od := domain.OrderedDish{
		DishID:      doc.DishID,
		Name:        doc.Name,
		VariantID:   doc.VariantID,
		VariantType: doc.VariantType,
		VariantName: doc.VariantName,
		Unit:        doc.Unit,
		Quantity:    doc.Quantity,
	}
	if doc.Dough != nil {
		od.Dough = &domain.OrderedDough{
			ID:      doc.Dough.ID,
			GroupID: doc.Dough.GroupID,
			Name:    doc.Dough.Name,
		}
	}
	if doc.CheeseBorder != nil {
		price, err := parseMoney(doc.CheeseBorder.Price, doc.CheeseBorder.Currency)
		if err != nil {
			return od, fmt.Errorf("cheeseBorder: %w", err)
		}
		od.CheeseBorder = &domain.OrderedCheeseBorder{
			ID:      doc.CheeseBorder.ID,
			GroupID: doc.CheeseBorder.GroupID,
			Name:    doc.CheeseBorder.Name,
			Price:   price,
		}
	}
	for _, t := range doc.Toppings {
		price, err := parseMoney(t.Price, t.Currency)
		if err != nil {
			return od, fmt.Errorf("topping[%s]: %w", t.ID, err)
		}
		od.Toppings = append(od.Toppings, domain.OrderedTopping{
			ID:      t.ID,
			GroupID: t.GroupID,
			Name:    t.Name,
			Price:   price,
			Count:   t.Count,
		})
	}
	return od, nil
}

func mapDocsToOrderedDishes(docs []orderedDishDoc) ([]domain.OrderedDish, error) {
	var dishes []domain.OrderedDish
	for _, doc := range docs {
		od, err := mapDocToOrderedDish(doc)
		if err != nil {
			return nil, fmt.Errorf("mapDocToOrderedDish: %w", err)
		}
		dishes = append(dishes, od)
	}
	return dishes, nil
}

func parseMoney(amount, currencyCode string) (domain.Money, error) {
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return domain.Money{}, fmt.Errorf("amount[%s] is not valid: %w", amount, err)
	}

	parsedCurrency, err := currency.ParseISO(currencyCode)
	if err != nil {
		return domain.Money{}, fmt.Errorf("currency[%s] is not valid: %w", currencyCode, err)
	}

	return domain.Money{Amount: parsedAmount, Currency: parsedCurrency}, nil
}
