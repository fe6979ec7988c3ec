package domain

import (
	"math"

	"github.com/pkg/errors"
)

// Validation errors. The store cannot reject an action, so callers check
// these before dispatching.
var (
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
	ErrInsufficientFunds = errors.New("amount exceeds available balance")
	ErrRatingOutOfRange  = errors.New("rating must be between 1 and 5")
	ErrNegativePrice     = errors.New("price must not be negative")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrInvalidTransition = errors.New("order status transition not allowed")
	ErrInvalidStatus     = errors.New("unknown order status")
)

// ValidateAmount checks a deposit or withdrawal amount.
func ValidateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateWithdrawal checks that amount can be taken out of balance.
func ValidateWithdrawal(amount, balance float64) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if amount > balance {
		return errors.Wrapf(ErrInsufficientFunds, "requested %.2f, available %.2f", amount, balance)
	}
	return nil
}

func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return ErrRatingOutOfRange
	}
	return nil
}

// ValidateMenuItem rejects negative regular or special prices.
func ValidateMenuItem(item MenuItem) error {
	if item.Price < 0 {
		return ErrNegativePrice
	}
	if item.SpecialPrice != nil && *item.SpecialPrice < 0 {
		return errors.Wrap(ErrNegativePrice, "special price")
	}
	return nil
}

func ValidateOrderItem(item OrderItem) error {
	if item.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if item.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

// ValidateTransition checks an order status change.
func ValidateTransition(from, to OrderStatus) error {
	if !to.Valid() {
		return errors.Wrapf(ErrInvalidStatus, "%q", to)
	}
	if !from.CanTransition(to) {
		return errors.Wrapf(ErrInvalidTransition, "%s -> %s", from, to)
	}
	return nil
}
