package domain

// InventoryItem is a stocked ingredient or supply.
type InventoryItem struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	CurrentStock  float64   `json:"currentStock"`
	MinStock      float64   `json:"minStock"`
	Unit          string    `json:"unit"`
	CostPerUnit   float64   `json:"costPerUnit"`
	Supplier      string    `json:"supplier"`
	LastRestocked Timestamp `json:"lastRestocked"`
	ExpiryDate    Timestamp `json:"expiryDate,omitempty"`
}

// IsLowStock reports whether the item is at or below its reorder threshold.
func (i InventoryItem) IsLowStock() bool {
	return i.CurrentStock <= i.MinStock
}
