package domain

type TransactionType string

const (
	TransactionSale       TransactionType = "sale"
	TransactionRefund     TransactionType = "refund"
	TransactionWithdrawal TransactionType = "withdrawal"
	TransactionDeposit    TransactionType = "deposit"
)

type TransactionStatus string

const (
	TransactionCompleted TransactionStatus = "completed"
	TransactionPending   TransactionStatus = "pending"
	TransactionFailed    TransactionStatus = "failed"
)

// Transaction is a wallet ledger entry. Amount is never negative; the
// direction of money is implied by Type.
type Transaction struct {
	ID            string            `json:"id"`
	Type          TransactionType   `json:"type"`
	Amount        float64           `json:"amount"`
	Description   string            `json:"description"`
	OrderID       string            `json:"orderId,omitempty"`
	Timestamp     Timestamp         `json:"timestamp"`
	PaymentMethod string            `json:"paymentMethod"`
	Status        TransactionStatus `json:"status"`
}

// IsIncome reports whether the entry counts towards income (sales and deposits).
func (t Transaction) IsIncome() bool {
	return t.Type == TransactionSale || t.Type == TransactionDeposit
}

// IsOutflow reports whether the entry counts towards withdrawals (withdrawals and refunds).
func (t Transaction) IsOutflow() bool {
	return t.Type == TransactionWithdrawal || t.Type == TransactionRefund
}
