package views

import (
	"time"

	"github.com/talkincode/restodesk/internal/domain"
)

// FilterTransactions keeps ledger entries of txType ("all" or empty for
// any) inside the date range.
func FilterTransactions(txs []domain.Transaction, txType string, r DateRange, now time.Time) []domain.Transaction {
	out := []domain.Transaction{}
	for _, t := range txs {
		if txType != "" && txType != All && string(t.Type) != txType {
			continue
		}
		if !r.Contains(t.Timestamp, now) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Totals are plain sums over a ledger. They are not a running balance and
// need not match the wallet balance.
type Totals struct {
	Income      float64 `json:"totalIncome"`
	Withdrawals float64 `json:"totalWithdrawals"`
}

// TransactionTotals sums income (sales, deposits) and withdrawals
// (withdrawals, refunds).
func TransactionTotals(txs []domain.Transaction) Totals {
	var t Totals
	for _, tx := range txs {
		switch {
		case tx.IsIncome():
			t.Income += tx.Amount
		case tx.IsOutflow():
			t.Withdrawals += tx.Amount
		}
	}
	return t
}
