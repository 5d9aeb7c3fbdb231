package services

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCredentials is returned by Login when at least one principal kind
// matched the identifier but no stored hash verified.
var ErrInvalidCredentials = errors.New("invalid username or password")

// NotFoundError reports a failed lookup of a required record.
type NotFoundError struct {
	Resource string
	Field    string
	Value    interface{}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s: %v", e.Resource, e.Field, e.Value)
}

// InsufficientBalanceError rejects an order whose cost exceeds the customer's
// wallet balance.
type InsufficientBalanceError struct {
	Required  float64
	Available float64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient wallet balance: %.2f available, %.2f required", e.Available, e.Required)
}

// PurchaseNotFoundError rejects a review for a (customer, product) pair with
// no order linking them.
type PurchaseNotFoundError struct {
	CustomerID uint
	ProductID  uint
}

func (e *PurchaseNotFoundError) Error() string {
	return fmt.Sprintf("no order found for customer %d and product %d", e.CustomerID, e.ProductID)
}

// ConflictError covers uniqueness violations and deletes blocked by
// dependent rows.
type ConflictError struct {
	Resource string
	Reason   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Resource, e.Reason)
}

// ValidationError reports malformed input rejected before any storage call.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// IsDuplicateErr matches the driver-level uniqueness violation messages of
// mysql and sqlite.
func IsDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// IsForeignKeyErr matches the driver-level referential violation messages of
// mysql and sqlite.
func IsForeignKeyErr(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "foreign key constraint") ||
		strings.Contains(msg, "FOREIGN KEY constraint failed")
}
