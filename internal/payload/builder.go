// Package payload assembles the order submission body the backend expects
// and reconstructs live line items from historical orders. Both directions
// are pure transformations; they cannot fail on well-formed input.
package payload

import (
	"time"

	"github.com/samber/lo"

	"github.com/slicelab/pizzacart/internal/domain"
)

// The backend expects the block folded into the house field with this group
// marker ("12к3"), never as an independent field. Compatibility-sensitive:
// do not change without a coordinated backend release.
const houseBlockSeparator = "к"

// BuildOptions carries the request context the draft itself does not own.
type BuildOptions struct {
	Authenticated bool
	Now           time.Time
	DeviceID      string
}

// BuildOrder maps the draft and cart items onto the submission body.
// Address fields come from exactly one branch of the destination union.
// Bonus redemption is serialized only when positive and the user is
// authenticated; guests get device and contact fields instead of a
// timestamp.
func BuildOrder(draft domain.OrderDraft, items []*domain.LineItem, opts BuildOptions) map[string]any {
	body := map[string]any{
		"paymentType": string(draft.Payment),
		"pickup":      draft.Destination.IsPickup(),
		"pushEnabled": draft.PushEnabled,
		"items": lo.Map(items, func(item *domain.LineItem, _ int) map[string]any {
			return serializeLineItem(item)
		}),
	}

	if address, ok := draft.Destination.Address(); ok {
		body["street"] = address.Street
		body["house"] = composeHouse(address.House, address.Block)
		body["flat"] = address.Flat
		body["entrance"] = address.Entrance
		body["floor"] = address.Floor
	} else if pizzeriaID, ok := draft.Destination.PickupPizzeriaID(); ok {
		body["pizzeriaId"] = pizzeriaID
	}

	if draft.Comment != "" {
		body["comment"] = draft.Comment
	}
	if draft.PromoCode != "" {
		body["promoCode"] = draft.PromoCode
	}

	if opts.Authenticated {
		body["timestamp"] = opts.Now.Unix()
		if draft.BonusAmount.IsPositive() {
			body["bonus"] = draft.BonusAmount.Amount.String()
		}
	} else {
		body["deviceId"] = opts.DeviceID
		guest := lo.FromPtr(draft.Guest)
		body["name"] = guest.Name
		body["phone"] = guest.Phone
	}

	return body
}

func composeHouse(house, block string) string {
	if block == "" {
		return house
	}
	return house + houseBlockSeparator + block
}

func serializeLineItem(item *domain.LineItem) map[string]any {
	out := map[string]any{
		"id":     item.Variant.ID,
		"name":   item.Dish.Name,
		"amount": item.Quantity,
		"type":   item.Variant.Type,
		"unit":   item.Variant.Unit,
	}

	if item.CheeseBorder != nil {
		out["cheeseBorder"] = map[string]any{
			"id":      item.CheeseBorder.ID,
			"groupId": item.Variant.CheeseBorderGroupID,
			"name":    item.CheeseBorder.Name,
			"amount":  1,
		}
	}
	if item.Dough != nil {
		out["dough"] = map[string]any{
			"id":      item.Dough.ID,
			"groupId": item.Dough.GroupID,
			"name":    item.Dough.Name,
			"amount":  1,
		}
	}

	var toppings []map[string]any
	for _, sel := range item.Toppings {
		if sel.Count <= 0 {
			continue
		}
		toppings = append(toppings, map[string]any{
			"id": sel.Topping.ID,
			// the dish's topping group, not the topping's own id
			"groupId": item.Dish.ToppingGroupID,
			"name":    sel.Topping.Name,
			"amount":  sel.Count,
		})
	}
	if len(toppings) > 0 {
		out["toppings"] = toppings
	}

	return out
}
