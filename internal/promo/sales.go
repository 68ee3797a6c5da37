// Package promo reconciles server-matched promotional sales against the live
// catalog. Which sales a cart unlocks is decided server-side; this package
// only makes sure nothing stale is shown.
package promo

import (
	"github.com/slicelab/pizzacart/internal/domain"
)

// SaleVariant points into the catalog by id pair.
type SaleVariant struct {
	DishID    string
	VariantID string
}

// Sale is a candidate promotion or gift returned by the matching endpoint.
type Sale struct {
	ID          string
	Name        string
	Description string
	ImageURL    string
	Gift        bool
	Variants    []SaleVariant
}

// ResolvedSaleDish is a sale reference that still resolves in the snapshot.
type ResolvedSaleDish struct {
	Dish    domain.CatalogDish
	Variant domain.DishVariant
}

type ResolvedSale struct {
	Sale   Sale
	Dishes []ResolvedSaleDish
}

// Resolve keeps a sale only when at least one of its referenced variants
// still resolves in the snapshot; dangling references are silently filtered
// so the UI never renders a broken promotion.
func Resolve(snapshot domain.CatalogSnapshot, sales []Sale) []ResolvedSale {
	var out []ResolvedSale
	for _, sale := range sales {
		var dishes []ResolvedSaleDish
		for _, ref := range sale.Variants {
			dish, variant, ok := snapshot.Variant(ref.DishID, ref.VariantID)
			if !ok {
				continue
			}
			dishes = append(dishes, ResolvedSaleDish{Dish: dish, Variant: variant})
		}
		if len(dishes) == 0 {
			continue
		}
		out = append(out, ResolvedSale{Sale: sale, Dishes: dishes})
	}
	return out
}

// CartCounts collects the dish/variant ids with their quantities, the shape
// the matching endpoint takes as input.
func CartCounts(items []*domain.LineItem) map[SaleVariant]int {
	counts := make(map[SaleVariant]int, len(items))
	for _, item := range items {
		key := SaleVariant{DishID: item.Dish.ID, VariantID: item.Variant.ID}
		counts[key] += item.Quantity
	}
	return counts
}
