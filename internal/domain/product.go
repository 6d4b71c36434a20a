package domain

import "time"

// Category is one of the two fixed product lines sold by the store.
type Category string

const (
	CategoryGadget Category = "gadget"
	CategorySticks Category = "sticks"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c == CategoryGadget || c == CategorySticks
}

// Badges are display flags attached to a product card.
type Badges struct {
	IsNew       bool `json:"isNew"`
	IsHit       bool `json:"isHit"`
	IsExclusive bool `json:"isExclusive"`
}

// DeviceAttributes is the attribute bag of a gadget-category product.
type DeviceAttributes struct {
	Line      string `json:"line"`
	Color     string `json:"color,omitempty"`
	SalePrice *int64 `json:"salePrice,omitempty"`
}

// StickAttributes is the attribute bag of a sticks-category product.
type StickAttributes struct {
	Origin     string   `json:"origin"`
	Flavors    []string `json:"flavors"`
	Strength   string   `json:"strength"`
	HasCapsule bool     `json:"hasCapsule"`
	PricePack  int64    `json:"pricePack,omitempty"`
	ImagePack  string   `json:"imagePack,omitempty"`
}

// Product is a catalog entry. Slug is the externally addressable key, ID the
// internal one referenced by cart and order items. At most one of
// Device/Sticks is set, keyed by Category.
type Product struct {
	ID          int64             `json:"id"`
	Slug        string            `json:"slug"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Image       string            `json:"image"`
	Price       int64             `json:"price"`
	Category    Category          `json:"category"`
	InStock     bool              `json:"inStock"`
	Badges      Badges            `json:"badges"`
	Brand       string            `json:"brand,omitempty"`
	Device      *DeviceAttributes `json:"device,omitempty"`
	Sticks      *StickAttributes  `json:"sticks,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// Attributes returns the category-specific bag as an untyped value, or nil
// when the variant for the product's category is unset.
func (p Product) Attributes() interface{} {
	switch p.Category {
	case CategoryGadget:
		if p.Device != nil {
			return p.Device
		}
	case CategorySticks:
		if p.Sticks != nil {
			return p.Sticks
		}
	}
	return nil
}
