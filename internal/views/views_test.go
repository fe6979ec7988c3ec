package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talkincode/restodesk/internal/domain"
	"github.com/talkincode/restodesk/internal/store"
)

var now = time.Date(2026, 10, 14, 15, 0, 0, 0, time.Local)

func at(d time.Duration) domain.Timestamp {
	return domain.FromTime(now.Add(d))
}

func TestTodayRevenueSeedOrders(t *testing.T) {
	orders := []domain.Order{
		{ID: "1", TotalAmount: 45.97, OrderTime: at(-30 * time.Second)},
		{ID: "2", TotalAmount: 18.97, OrderTime: at(-10 * time.Second)},
	}
	assert.InDelta(t, 64.94, TodayRevenue(orders, now), 1e-9)
	assert.Len(t, TodayOrders(orders, now), 2)
}

func TestTodayRevenueIgnoresOtherDays(t *testing.T) {
	midnight := time.Date(2026, 10, 14, 0, 0, 0, 0, time.Local)
	orders := []domain.Order{
		{ID: "1", TotalAmount: 10, OrderTime: domain.FromTime(midnight)},
		{ID: "2", TotalAmount: 20, OrderTime: domain.FromTime(midnight.Add(-time.Millisecond))},
		{ID: "3", TotalAmount: 40, OrderTime: at(48 * time.Hour)},
		{ID: "4", TotalAmount: 80},
	}
	assert.InDelta(t, 10, TodayRevenue(orders, now), 1e-9)
	assert.Zero(t, TodayRevenue(nil, now))
}

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))
	assert.Equal(t, 0.0, AverageRating([]domain.Feedback{}))
	assert.InDelta(t, 4.5, AverageRating([]domain.Feedback{{Rating: 5}, {Rating: 4}}), 1e-9)
}

func TestOrderCountsByStatus(t *testing.T) {
	counts := OrderCountsByStatus([]domain.Order{
		{Status: domain.OrderStatusNew},
		{Status: domain.OrderStatusNew},
		{Status: domain.OrderStatusServed},
		{Status: "bogus"},
	})
	require.Len(t, counts, 5)
	assert.Equal(t, 2, counts[domain.OrderStatusNew])
	assert.Equal(t, 0, counts[domain.OrderStatusPreparing])
	assert.Equal(t, 1, counts[domain.OrderStatusServed])

	empty := OrderCountsByStatus(nil)
	assert.Len(t, empty, 5)
}

func TestRecentOrders(t *testing.T) {
	orders := make([]domain.Order, 7)
	for i := range orders {
		orders[i].ID = string(rune('a' + i))
	}
	recent := RecentOrders(orders, RecentOrderCount)
	require.Len(t, recent, 5)
	assert.Equal(t, "a", recent[0].ID)
	assert.Len(t, RecentOrders(orders[:2], 5), 2)
	assert.Empty(t, RecentOrders(nil, 5))
}

func TestFilterOrders(t *testing.T) {
	orders := []domain.Order{
		{ID: "1", CustomerName: "John Smith", Status: domain.OrderStatusPreparing},
		{ID: "2", CustomerName: "Sarah Johnson", Status: domain.OrderStatusNew},
	}
	assert.Len(t, FilterOrders(orders, All, ""), 2)
	assert.Len(t, FilterOrders(orders, "new", ""), 1)
	assert.Len(t, FilterOrders(orders, "", "john"), 2)
	assert.Len(t, FilterOrders(orders, "preparing", "sarah"), 0)
	assert.Equal(t, "2", FilterOrders(orders, "", "2")[0].ID)
}

func TestFilterMenuItems(t *testing.T) {
	items := []domain.MenuItem{
		{ID: "1", Name: "Caesar Salad", Description: "romaine", Category: "Appetizers"},
		{ID: "2", Name: "Grilled Salmon", Description: "lemon butter", Category: "Main Courses"},
	}
	assert.Len(t, FilterMenuItems(items, "", All), 2)
	assert.Len(t, FilterMenuItems(items, "LEMON", ""), 1)
	assert.Len(t, FilterMenuItems(items, "", "Appetizers"), 1)
	assert.Empty(t, FilterMenuItems(items, "salad", "Main Courses"))
}

func TestDateRangeBoundary(t *testing.T) {
	inside := domain.Transaction{ID: "in", Type: domain.TransactionSale, Timestamp: at(-7 * 24 * time.Hour)}
	outside := domain.Transaction{ID: "out", Type: domain.TransactionSale, Timestamp: at(-7*24*time.Hour - time.Second)}
	future := domain.Transaction{ID: "future", Type: domain.TransactionSale, Timestamp: at(time.Hour)}

	got := FilterTransactions([]domain.Transaction{inside, outside, future}, All, Last7Days, now)

	ids := make([]string, 0, len(got))
	for _, tx := range got {
		ids = append(ids, tx.ID)
	}
	assert.Equal(t, []string{"in", "future"}, ids)

	assert.Len(t, FilterTransactions([]domain.Transaction{inside, outside, future}, All, AllTime, now), 3)
}

func TestParseDateRange(t *testing.T) {
	r, err := ParseDateRange("", Last30Days)
	require.NoError(t, err)
	assert.Equal(t, Last30Days, r)

	r, err = ParseDateRange(" 90Days ", Last7Days)
	require.NoError(t, err)
	assert.Equal(t, Last90Days, r)

	_, err = ParseDateRange("14days", Last7Days)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestFilterTransactionsByType(t *testing.T) {
	txs := []domain.Transaction{
		{Type: domain.TransactionSale, Timestamp: at(0)},
		{Type: domain.TransactionDeposit, Timestamp: at(0)},
	}
	assert.Len(t, FilterTransactions(txs, "deposit", AllTime, now), 1)
	assert.Len(t, FilterTransactions(txs, "", AllTime, now), 2)
}

func TestTransactionTotals(t *testing.T) {
	txs := []domain.Transaction{
		{Type: domain.TransactionSale, Amount: 45.97},
		{Type: domain.TransactionDeposit, Amount: 100},
		{Type: domain.TransactionWithdrawal, Amount: 50},
		{Type: domain.TransactionRefund, Amount: 5.5},
	}
	totals := TransactionTotals(txs)
	assert.InDelta(t, 145.97, totals.Income, 1e-9)
	assert.InDelta(t, 55.5, totals.Withdrawals, 1e-9)
	assert.Equal(t, Totals{}, TransactionTotals(nil))
}

func TestFilterReceiptsAndSummary(t *testing.T) {
	receipts := []domain.Receipt{
		{ID: "1", OrderID: "1", CustomerName: "John Smith", ReceiptNumber: "RCP-001", Total: 49.65, Timestamp: at(-time.Hour)},
		{ID: "2", OrderID: "7", CustomerName: "Sarah Johnson", ReceiptNumber: "RCP-002", Total: 20.49, Timestamp: at(-40 * 24 * time.Hour)},
	}

	recent := FilterReceipts(receipts, "", Last30Days, now)
	require.Len(t, recent, 1)
	assert.Equal(t, "RCP-001", recent[0].ReceiptNumber)

	assert.Len(t, FilterReceipts(receipts, "rcp-002", AllTime, now), 1)
	assert.Len(t, FilterReceipts(receipts, "7", AllTime, now), 1)

	summary := ReceiptSummary(FilterReceipts(receipts, "", AllTime, now))
	assert.Equal(t, 2, summary.Count)
	assert.InDelta(t, 70.14, summary.Total, 1e-9)
	assert.InDelta(t, 35.07, summary.Average, 1e-9)

	assert.Equal(t, ReceiptStats{}, ReceiptSummary(FilterReceipts(receipts, "nobody", AllTime, now)))
}

func TestDashboard(t *testing.T) {
	s := store.State{
		Orders: []domain.Order{
			{ID: "1", TotalAmount: 45.97, OrderTime: at(-30 * time.Second), Status: domain.OrderStatusPreparing},
			{ID: "2", TotalAmount: 18.97, OrderTime: at(-10 * time.Second), Status: domain.OrderStatusNew},
		},
		Feedback:      []domain.Feedback{{Rating: 5}, {Rating: 4}},
		Inventory:     []domain.InventoryItem{{ID: "1", CurrentStock: 25, MinStock: 10}, {ID: "2", CurrentStock: 5, MinStock: 15}},
		WalletBalance: 2500.75,
	}
	d := Dashboard(s, now)
	assert.InDelta(t, 64.94, d.TodayRevenue, 1e-9)
	assert.Equal(t, 2, d.TodayOrders)
	assert.Equal(t, 2500.75, d.WalletBalance)
	assert.InDelta(t, 4.5, d.AverageRating, 1e-9)
	assert.Len(t, d.RecentOrders, 2)
	assert.Equal(t, 1, d.StatusCounts[domain.OrderStatusNew])
	require.Len(t, d.LowStock, 1)
	assert.Equal(t, "2", d.LowStock[0].ID)

	empty := Dashboard(store.State{}, now)
	assert.Zero(t, empty.TodayRevenue)
	assert.Zero(t, empty.AverageRating)
}

func TestEmptyViewsAreNotNil(t *testing.T) {
	assert.NotNil(t, TodayOrders(nil, now))
	assert.NotNil(t, RecentOrders(nil, RecentOrderCount))
	assert.NotNil(t, FilterOrders(nil, All, ""))
	assert.NotNil(t, FilterMenuItems(nil, "x", All))
	assert.NotNil(t, LowStock(nil))
	assert.NotNil(t, FilterTransactions(nil, All, AllTime, now))
	assert.NotNil(t, FilterReceipts(nil, "", AllTime, now))
	assert.NotNil(t, Dashboard(store.State{}, now).RecentOrders)
}
