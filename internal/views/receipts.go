package views

import (
	"time"

	"github.com/montanaflynn/stats"
	"github.com/talkincode/restodesk/internal/domain"
	"github.com/talkincode/restodesk/pkg/common"
)

// FilterReceipts keeps receipts inside the date range whose customer name,
// receipt number or order id contains search, ignoring case.
func FilterReceipts(receipts []domain.Receipt, search string, r DateRange, now time.Time) []domain.Receipt {
	out := []domain.Receipt{}
	for _, rc := range receipts {
		if !common.ContainsFold(rc.CustomerName, search) &&
			!common.ContainsFold(rc.ReceiptNumber, search) &&
			!common.ContainsFold(rc.OrderID, search) {
			continue
		}
		if !r.Contains(rc.Timestamp, now) {
			continue
		}
		out = append(out, rc)
	}
	return out
}

type ReceiptStats struct {
	Count   int     `json:"totalReceipts"`
	Total   float64 `json:"totalAmount"`
	Average float64 `json:"averageAmount"`
}

// ReceiptSummary aggregates the receipt totals. An empty set yields zeros.
func ReceiptSummary(receipts []domain.Receipt) ReceiptStats {
	if len(receipts) == 0 {
		return ReceiptStats{}
	}
	totals := make(stats.Float64Data, len(receipts))
	for i, r := range receipts {
		totals[i] = r.Total
	}
	sum, _ := stats.Sum(totals)
	return ReceiptStats{
		Count:   len(receipts),
		Total:   sum,
		Average: mean(totals),
	}
}
