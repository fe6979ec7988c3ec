package app

import (
	"context"
	"time"

	"github.com/talkincode/restodesk/config"
	"github.com/talkincode/restodesk/internal/domain"
	"github.com/talkincode/restodesk/internal/store"
	"github.com/talkincode/restodesk/pkg/metrics"
)

// StoreProvider provides the state store
type StoreProvider interface {
	Store() *store.Store
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// IDProvider issues identifiers and the clock used for new records
type IDProvider interface {
	NewID() string
	Now() time.Time
}

// MetricsProvider provides the metrics registry
type MetricsProvider interface {
	Metrics() *metrics.Metrics
}

// OperationsProvider runs the compound operations that validate against the
// current state before dispatching
type OperationsProvider interface {
	PlaceOrder(order domain.Order) (domain.Order, error)
	SetOrderStatus(id string, status domain.OrderStatus) (domain.Order, error)
	Deposit(amount float64, method string) (domain.Transaction, error)
	Withdraw(amount float64, method string) (domain.Transaction, error)
	IssueReceipt(orderID string) (domain.Receipt, error)
	SubmitFeedback(fb domain.Feedback) (domain.Feedback, error)
}

// AppContext combines all provider interfaces for full application context
// Handlers should depend on specific providers or this combined interface
type AppContext interface {
	StoreProvider
	ConfigProvider
	IDProvider
	MetricsProvider
	OperationsProvider

	// PersistenceDegraded reports whether writes to the durable slot stopped
	PersistenceDegraded() bool
	// ResetData wipes the durable slot and reloads the seed dataset
	ResetData(ctx context.Context) error
}
