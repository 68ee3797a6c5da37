package domain

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// DeliveryAddress holds the raw address fields as the user entered them.
// Block is folded into the house field at serialization time, it is never
// sent on its own.
type DeliveryAddress struct {
	Street   string
	House    string
	Block    string
	Flat     string
	Entrance string
	Floor    string
}

type destinationKind int

const (
	destinationNone destinationKind = iota
	destinationDelivery
	destinationPickup
)

// Destination is a tagged union: an order is delivered to an address or
// picked up from a pizzeria, never both.
type Destination struct {
	kind       destinationKind
	address    DeliveryAddress
	pizzeriaID string
}

func DeliverTo(address DeliveryAddress) Destination {
	return Destination{kind: destinationDelivery, address: address}
}

func PickupAt(pizzeriaID string) Destination {
	return Destination{kind: destinationPickup, pizzeriaID: pizzeriaID}
}

func (d Destination) Address() (DeliveryAddress, bool) {
	return d.address, d.kind == destinationDelivery
}

func (d Destination) PickupPizzeriaID() (string, bool) {
	return d.pizzeriaID, d.kind == destinationPickup
}

func (d Destination) IsPickup() bool {
	return d.kind == destinationPickup
}

func (d Destination) IsSet() bool {
	return d.kind != destinationNone
}

// GuestContact is collected only for unauthenticated checkout.
type GuestContact struct {
	Name  string
	Phone string
}

// OrderDraft is the in-progress set of checkout choices for one session.
// It is owned by a single checkout session, not shared process-wide.
type OrderDraft struct {
	Destination Destination
	Comment     string
	PromoCode   string
	Payment     PaymentMethod
	BonusAmount Money
	PushEnabled bool
	Guest       *GuestContact
}
