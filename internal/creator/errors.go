package creator

import "fmt"

const (
	ReasonEmptyItems            = "empty_items"
	ReasonTransactionRolledBack = "transaction_rolled_back"
)

const batchRolledBackDetails = "One or more items failed validation. No returns were created."

// IneligibleError reports a business refusal. It is not a system failure.
type IneligibleError struct {
	Reason  string `json:"reason"`
	Details string `json:"details"`
}

func (e *IneligibleError) Error() string {
	return fmt.Sprintf("return not allowed: %s", e.Reason)
}

// BatchError reports a rolled back batch and the item that caused it.
type BatchError struct {
	Reason    string
	Details   string
	Index     int
	ProductID int64
	Cause     error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%s: item %d (product %d): %v", e.Reason, e.Index, e.ProductID, e.Cause)
}

func (e *BatchError) Unwrap() error {
	return e.Cause
}
