package domain

type DishCategory string

const (
	CategoryCombo   DishCategory = "combo"
	CategoryPizza   DishCategory = "pizza"
	CategoryDrink   DishCategory = "drink"
	CategoryHotDish DishCategory = "hot_dish"
	CategorySnack   DishCategory = "snack"
	CategoryDessert DishCategory = "dessert"
)

// ThinDoughName is the only dough a cheese border may be combined with.
// The backend keys this rule on the exact display name.
const ThinDoughName = "Тонкое"

type Dough struct {
	ID      string
	GroupID string
	Name    string
}

func (d Dough) IsThin() bool {
	return d.Name == ThinDoughName
}

type CheeseBorder struct {
	ID    string
	Name  string
	Price Money
}

type Topping struct {
	ID     string
	Name   string
	Weight string
	Price  Money
}

type DishVariant struct {
	ID   string
	Name string
	// Type and Unit are the serialization labels the backend expects
	// alongside the display name ("Большая", "шт" and the like).
	Type string
	Unit string

	Price Money

	Calories     float64
	Protein      float64
	Fat          float64
	Carbohydrate float64

	// BonusPayable marks variants whose price counts towards the
	// bonus-eligible subtotal.
	BonusPayable bool

	Doughs              []Dough
	CheeseBorder        *CheeseBorder
	CheeseBorderGroupID string
}

// Equality between variants is by ID.
func (v DishVariant) Equal(other DishVariant) bool {
	return v.ID == other.ID
}

func (v DishVariant) DoughByID(id string) (Dough, bool) {
	for _, d := range v.Doughs {
		if d.ID == id {
			return d, true
		}
	}
	return Dough{}, false
}

// DefaultDough is the first listed option; nil when the variant has none.
func (v DishVariant) DefaultDough() *Dough {
	if len(v.Doughs) == 0 {
		return nil
	}
	d := v.Doughs[0]
	return &d
}

type CatalogDish struct {
	ID          string
	Name        string
	Description string
	ImageURL    string
	Category    DishCategory
	SortOrder   int

	Price    Money
	OldPrice *Money

	Variants []DishVariant

	// Toppings is the shared pool available on this dish. ToppingGroupID
	// changes when the backend rebuilds the pool, invalidating stale
	// topping references held by carts and historical orders.
	Toppings       []Topping
	ToppingGroupID string
}

func (d CatalogDish) VariantByID(id string) (DishVariant, bool) {
	for _, v := range d.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return DishVariant{}, false
}

func (d CatalogDish) ToppingByID(id string) (Topping, bool) {
	for _, t := range d.Toppings {
		if t.ID == id {
			return t, true
		}
	}
	return Topping{}, false
}

// CatalogSnapshot is the externally-synced menu valid at a point in time.
// It is immutable: a menu refresh replaces the whole snapshot and the cart
// reconciles itself against the replacement.
type CatalogSnapshot struct {
	dishes []CatalogDish
	byID   map[string]CatalogDish
}

func NewCatalogSnapshot(dishes []CatalogDish) CatalogSnapshot {
	byID := make(map[string]CatalogDish, len(dishes))
	for _, d := range dishes {
		byID[d.ID] = d
	}
	return CatalogSnapshot{dishes: dishes, byID: byID}
}

func (s CatalogSnapshot) Dishes() []CatalogDish {
	out := make([]CatalogDish, len(s.dishes))
	copy(out, s.dishes)
	return out
}

func (s CatalogSnapshot) DishByID(id string) (CatalogDish, bool) {
	d, ok := s.byID[id]
	return d, ok
}

func (s CatalogSnapshot) Variant(dishID, variantID string) (CatalogDish, DishVariant, bool) {
	dish, ok := s.byID[dishID]
	if !ok {
		return CatalogDish{}, DishVariant{}, false
	}
	variant, ok := dish.VariantByID(variantID)
	if !ok {
		return CatalogDish{}, DishVariant{}, false
	}
	return dish, variant, true
}
