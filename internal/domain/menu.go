package domain

// MenuItem is a dish or drink offered by the restaurant.
// Category holds the category name, not a Category id.
type MenuItem struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	Category        string    `json:"category"`
	Image           string    `json:"image,omitempty"`
	IsAvailable     bool      `json:"isAvailable"`
	IsSpecial       bool      `json:"isSpecial"`
	SpecialPrice    *float64  `json:"specialPrice,omitempty"`
	PreparationTime int       `json:"preparationTime"` // minutes
	Ingredients     []string  `json:"ingredients"`
	Allergens       []string  `json:"allergens"`
	CreatedAt       Timestamp `json:"createdAt"`
	UpdatedAt       Timestamp `json:"updatedAt"`
}

// EffectivePrice returns the special price when the item is on special offer.
func (m MenuItem) EffectivePrice() float64 {
	if m.IsSpecial && m.SpecialPrice != nil {
		return *m.SpecialPrice
	}
	return m.Price
}

// Category groups menu items for display. Names are not required to be unique.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	SortOrder   int    `json:"sortOrder"`
	IsActive    bool   `json:"isActive"`
}
