package app

import (
	"time"

	"github.com/talkincode/restodesk/internal/domain"
	"github.com/talkincode/restodesk/internal/persist"
	"github.com/talkincode/restodesk/internal/store"
	"go.uber.org/zap"
)

func ptr[T any](v T) *T { return &v }

// SeedData returns the demo dataset loaded when the durable slot is empty.
// Every timestamp is relative to now so the orders always fall on "today".
func SeedData(now time.Time) persist.Snapshot {
	ts := func(d time.Duration) domain.Timestamp { return domain.FromTime(now.Add(d)) }
	created := ts(0)

	categories := []domain.Category{
		{ID: "1", Name: "Appetizers", Description: "Start your meal with our delicious appetizers", SortOrder: 1, IsActive: true},
		{ID: "2", Name: "Main Courses", Description: "Hearty and satisfying main dishes", SortOrder: 2, IsActive: true},
		{ID: "3", Name: "Desserts", Description: "Sweet endings to your perfect meal", SortOrder: 3, IsActive: true},
		{ID: "4", Name: "Beverages", Description: "Refreshing drinks and specialty beverages", SortOrder: 4, IsActive: true},
	}

	menuItems := []domain.MenuItem{
		{
			ID:              "1",
			Name:            "Caesar Salad",
			Description:     "Fresh romaine lettuce with parmesan cheese and croutons",
			Price:           12.99,
			Category:        "Appetizers",
			Image:           "https://images.pexels.com/photos/1213710/pexels-photo-1213710.jpeg?auto=compress&cs=tinysrgb&w=500",
			IsAvailable:     true,
			PreparationTime: 10,
			Ingredients:     []string{"romaine lettuce", "parmesan cheese", "croutons", "caesar dressing"},
			Allergens:       []string{"dairy", "gluten"},
			CreatedAt:       created,
			UpdatedAt:       created,
		},
		{
			ID:              "2",
			Name:            "Grilled Salmon",
			Description:     "Fresh Atlantic salmon with lemon herb butter",
			Price:           24.99,
			Category:        "Main Courses",
			Image:           "https://images.pexels.com/photos/1516415/pexels-photo-1516415.jpeg?auto=compress&cs=tinysrgb&w=500",
			IsAvailable:     true,
			IsSpecial:       true,
			SpecialPrice:    ptr(19.99),
			PreparationTime: 20,
			Ingredients:     []string{"salmon fillet", "lemon", "herbs", "butter"},
			Allergens:       []string{"fish"},
			CreatedAt:       created,
			UpdatedAt:       created,
		},
		{
			ID:              "3",
			Name:            "Chocolate Lava Cake",
			Description:     "Warm chocolate cake with molten center",
			Price:           8.99,
			Category:        "Desserts",
			Image:           "https://images.pexels.com/photos/2113556/pexels-photo-2113556.jpeg?auto=compress&cs=tinysrgb&w=500",
			IsAvailable:     true,
			PreparationTime: 15,
			Ingredients:     []string{"dark chocolate", "eggs", "flour", "sugar", "vanilla"},
			Allergens:       []string{"eggs", "gluten", "dairy"},
			CreatedAt:       created,
			UpdatedAt:       created,
		},
		{
			ID:              "4",
			Name:            "Fresh Lemonade",
			Description:     "House-made lemonade with fresh lemons",
			Price:           4.99,
			Category:        "Beverages",
			Image:           "https://images.pexels.com/photos/1414651/pexels-photo-1414651.jpeg?auto=compress&cs=tinysrgb&w=500",
			IsAvailable:     true,
			PreparationTime: 5,
			Ingredients:     []string{"fresh lemons", "sugar", "water", "ice"},
			Allergens:       []string{},
			CreatedAt:       created,
			UpdatedAt:       created,
		},
	}

	orders := []domain.Order{
		{
			ID:            "1",
			CustomerName:  "John Smith",
			CustomerPhone: "+1-555-0123",
			CustomerEmail: "john@example.com",
			Items: []domain.OrderItem{
				{ID: "1", MenuItemID: "1", MenuItem: menuItems[0], Quantity: 2, Price: 12.99},
				{ID: "2", MenuItemID: "2", MenuItem: menuItems[1], Quantity: 1, Price: 19.99},
			},
			Status:        domain.OrderStatusPreparing,
			TotalAmount:   45.97,
			OrderTime:     ts(-30 * time.Second),
			TableNumber:   "A1",
			PaymentMethod: "Credit Card",
		},
		{
			ID:            "2",
			CustomerName:  "Sarah Johnson",
			CustomerPhone: "+1-555-0456",
			Items: []domain.OrderItem{
				{ID: "3", MenuItemID: "3", MenuItem: menuItems[2], Quantity: 1, Price: 8.99},
				{ID: "4", MenuItemID: "4", MenuItem: menuItems[3], Quantity: 2, Price: 4.99},
			},
			Status:        domain.OrderStatusNew,
			TotalAmount:   18.97,
			OrderTime:     ts(-10 * time.Second),
			TableNumber:   "B3",
			PaymentMethod: "Cash",
		},
	}

	transactions := []domain.Transaction{
		{
			ID:            "1",
			Type:          domain.TransactionSale,
			Amount:        45.97,
			Description:   "Order #1 - John Smith",
			OrderID:       "1",
			Timestamp:     ts(-30 * time.Second),
			PaymentMethod: "Credit Card",
			Status:        domain.TransactionCompleted,
		},
		{
			ID:            "2",
			Type:          domain.TransactionSale,
			Amount:        18.97,
			Description:   "Order #2 - Sarah Johnson",
			OrderID:       "2",
			Timestamp:     ts(-10 * time.Second),
			PaymentMethod: "Cash",
			Status:        domain.TransactionCompleted,
		},
	}

	receipts := []domain.Receipt{
		domain.NewReceipt("1", "RCP-001", orders[0], domain.DefaultTaxRate, ts(-30*time.Second)),
	}

	inventory := []domain.InventoryItem{
		{
			ID:            "1",
			Name:          "Salmon Fillets",
			CurrentStock:  25,
			MinStock:      10,
			Unit:          "pieces",
			CostPerUnit:   12.50,
			Supplier:      "Fresh Fish Co.",
			LastRestocked: ts(-24 * time.Hour),
			ExpiryDate:    ts(48 * time.Hour),
		},
		{
			ID:            "2",
			Name:          "Romaine Lettuce",
			CurrentStock:  5,
			MinStock:      15,
			Unit:          "heads",
			CostPerUnit:   2.99,
			Supplier:      "Green Valley Farms",
			LastRestocked: ts(-12 * time.Hour),
			ExpiryDate:    ts(72 * time.Hour),
		},
	}

	feedback := []domain.Feedback{
		{
			ID:            "1",
			CustomerName:  "Alice Brown",
			CustomerEmail: "alice@example.com",
			Rating:        5,
			Comment:       "Excellent food and service! The salmon was perfectly cooked.",
			OrderID:       "1",
			Timestamp:     ts(-time.Hour),
		},
		{
			ID:           "2",
			CustomerName: "Mike Wilson",
			Rating:       4,
			Comment:      "Great atmosphere and tasty food. Will definitely come back!",
			Timestamp:    ts(-2 * time.Hour),
		},
	}

	return persist.Snapshot{
		MenuItems:     menuItems,
		Categories:    categories,
		Orders:        orders,
		Transactions:  transactions,
		Receipts:      receipts,
		Inventory:     inventory,
		Feedback:      feedback,
		WalletBalance: 2500.75,
	}
}

// checkDefaultUser signs in the built-in manager account when no user is set.
func (a *Application) checkDefaultUser() {
	if a.store.State().User != nil {
		return
	}
	user := domain.DefaultUser(domain.FromTime(a.now()))
	a.store.Dispatch(store.SetUser{User: &user})
	zap.L().Info("signed in default user",
		zap.String("namespace", "app"),
		zap.String("email", user.Email))
}
