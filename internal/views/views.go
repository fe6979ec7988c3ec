// Package views computes the read-only dashboard figures derived from a
// store snapshot. Every function is pure; the current time is passed in.
package views

import (
	"strings"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/talkincode/restodesk/internal/domain"
	"github.com/talkincode/restodesk/internal/store"
	"github.com/talkincode/restodesk/pkg/common"
)

// RecentOrderCount is how many orders the dashboard lists.
const RecentOrderCount = 5

// Filter value matching every status or type.
const All = "all"

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// TodayOrders returns the orders placed on now's calendar date, in now's location.
func TodayOrders(orders []domain.Order, now time.Time) []domain.Order {
	out := []domain.Order{}
	for _, o := range orders {
		if o.OrderTime.IsZero() {
			continue
		}
		if sameDay(o.OrderTime.Time().In(now.Location()), now) {
			out = append(out, o)
		}
	}
	return out
}

// TodayRevenue sums the total amount of today's orders.
func TodayRevenue(orders []domain.Order, now time.Time) float64 {
	var sum float64
	for _, o := range TodayOrders(orders, now) {
		sum += o.TotalAmount
	}
	return sum
}

// AverageRating is the mean feedback rating, 0 when there is no feedback.
func AverageRating(feedback []domain.Feedback) float64 {
	if len(feedback) == 0 {
		return 0
	}
	ratings := make(stats.Float64Data, len(feedback))
	for i, f := range feedback {
		ratings[i] = float64(f.Rating)
	}
	return mean(ratings)
}

func mean(data stats.Float64Data) float64 {
	m, err := stats.Mean(data)
	if err != nil {
		return 0
	}
	return m
}

// OrderCountsByStatus counts orders per status. Every status is present.
func OrderCountsByStatus(orders []domain.Order) map[domain.OrderStatus]int {
	counts := make(map[domain.OrderStatus]int, len(domain.OrderStatuses))
	for _, s := range domain.OrderStatuses {
		counts[s] = 0
	}
	for _, o := range orders {
		if _, ok := counts[o.Status]; ok {
			counts[o.Status]++
		}
	}
	return counts
}

// RecentOrders returns up to k orders from the front of the newest-first list.
func RecentOrders(orders []domain.Order, k int) []domain.Order {
	if k < 0 {
		k = 0
	}
	if len(orders) < k {
		k = len(orders)
	}
	if k == 0 {
		return []domain.Order{}
	}
	return orders[:k:k]
}

// FilterOrders keeps orders matching status ("all" or empty for any) whose
// customer name or id contains search, ignoring case.
func FilterOrders(orders []domain.Order, status string, search string) []domain.Order {
	out := []domain.Order{}
	for _, o := range orders {
		if status != "" && status != All && string(o.Status) != status {
			continue
		}
		if !common.ContainsFold(o.CustomerName, search) && !common.ContainsFold(o.ID, search) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// FilterMenuItems keeps items in category ("all" or empty for any) whose
// name or description contains search, ignoring case.
func FilterMenuItems(items []domain.MenuItem, search, category string) []domain.MenuItem {
	out := []domain.MenuItem{}
	for _, m := range items {
		if category != "" && category != All && m.Category != category {
			continue
		}
		if !common.ContainsFold(m.Name, search) && !common.ContainsFold(m.Description, search) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// LowStock returns inventory items at or below their minimum stock.
func LowStock(items []domain.InventoryItem) []domain.InventoryItem {
	out := []domain.InventoryItem{}
	for _, i := range items {
		if i.IsLowStock() {
			out = append(out, i)
		}
	}
	return out
}

// DashboardView is the summary shown on the landing page.
type DashboardView struct {
	TodayRevenue  float64                    `json:"todayRevenue"`
	TodayOrders   int                        `json:"todayOrders"`
	WalletBalance float64                    `json:"walletBalance"`
	AverageRating float64                    `json:"averageRating"`
	RecentOrders  []domain.Order             `json:"recentOrders"`
	StatusCounts  map[domain.OrderStatus]int `json:"statusCounts"`
	LowStock      []domain.InventoryItem     `json:"lowStock"`
}

// Dashboard computes the landing page summary for s.
func Dashboard(s store.State, now time.Time) DashboardView {
	return DashboardView{
		TodayRevenue:  TodayRevenue(s.Orders, now),
		TodayOrders:   len(TodayOrders(s.Orders, now)),
		WalletBalance: s.WalletBalance,
		AverageRating: AverageRating(s.Feedback),
		RecentOrders:  RecentOrders(s.Orders, RecentOrderCount),
		StatusCounts:  OrderCountsByStatus(s.Orders),
		LowStock:      LowStock(s.Inventory),
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
