package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrObjectNotFound          = errors.New("not found")
	ErrDuplicateIdempotencyKey = errors.New("idempotency key already used")
	ErrDuplicateReturn         = errors.New("return already requested for this order and product")
	ErrDuplicateRule           = errors.New("rule already exists for this merchant and product")
	ErrInvalidReference        = errors.New("referenced record does not exist")
)

type ReturnStatus string

const (
	StatusRequested ReturnStatus = "requested"
	StatusApproved  ReturnStatus = "approved"
	StatusRejected  ReturnStatus = "rejected"
	StatusShipped   ReturnStatus = "shipped"
	StatusReceived  ReturnStatus = "received"
	StatusResolved  ReturnStatus = "resolved"
)

type Merchant struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

type Order struct {
	ID            int64               `db:"id"`
	MerchantID    int64               `db:"merchant_id"`
	OrderNumber   string              `db:"order_number"`
	CustomerName  string              `db:"customer_name"`
	CustomerEmail string              `db:"customer_email"`
	PlacedAt      *time.Time          `db:"order_date"`
	TotalAmount   decimal.NullDecimal `db:"total_amount"`
	TotalCents    *int64              `db:"total_cents"`
	Currency      *string             `db:"currency"`
	CreatedAt     time.Time           `db:"created_at"`
}

// OrderDate prefers the explicit order date and falls back to the row
// creation time.
func (o *Order) OrderDate() (time.Time, bool) {
	if o.PlacedAt != nil && !o.PlacedAt.IsZero() {
		return *o.PlacedAt, true
	}
	if !o.CreatedAt.IsZero() {
		return o.CreatedAt, true
	}
	return time.Time{}, false
}

// OrderTotal normalizes total_amount and total_cents+currency. Zero when
// neither is stored.
func (o *Order) OrderTotal() decimal.Decimal {
	if o.TotalAmount.Valid {
		return o.TotalAmount.Decimal
	}
	if o.TotalCents != nil && o.Currency != nil {
		return decimal.New(*o.TotalCents, -2)
	}
	return decimal.Zero
}

type ReturnRequest struct {
	ID                      int64        `db:"id" json:"id"`
	OrderID                 int64        `db:"order_id" json:"order_id"`
	ProductID               int64        `db:"product_id" json:"product_id"`
	MerchantID              int64        `db:"merchant_id" json:"merchant_id"`
	Reason                  string       `db:"reason" json:"reason"`
	RequestedDate           time.Time    `db:"requested_date" json:"requested_date"`
	Status                  ReturnStatus `db:"status" json:"status"`
	IdempotencyKey          *string      `db:"idempotency_key" json:"idempotency_key,omitempty"`
	TrackingNumber          *string      `db:"tracking_number" json:"tracking_number,omitempty"`
	Carrier                 *string      `db:"carrier" json:"carrier,omitempty"`
	LabelURL                *string      `db:"label_url" json:"label_url,omitempty"`
	LabelGenerationFailedAt *time.Time   `db:"label_generation_failed_at" json:"label_generation_failed_at,omitempty"`
	LabelGenerationError    *string      `db:"label_generation_error" json:"label_generation_error,omitempty"`
	CreatedAt               time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt               time.Time    `db:"updated_at" json:"updated_at"`
}

type ReturnRule struct {
	ID            int64           `db:"id" json:"id"`
	MerchantID    int64           `db:"merchant_id" json:"merchant_id"`
	ProductID     *int64          `db:"product_id" json:"product_id,omitempty"`
	Configuration json.RawMessage `db:"configuration" json:"configuration"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

type StatusAuditLog struct {
	ID              int64           `db:"id" json:"id"`
	ReturnRequestID int64           `db:"return_request_id" json:"return_request_id"`
	FromStatus      *ReturnStatus   `db:"from_status" json:"from_status"`
	ToStatus        ReturnStatus    `db:"to_status" json:"to_status"`
	Event           string          `db:"event" json:"event"`
	TriggeredBy     string          `db:"triggered_by" json:"triggered_by"`
	Metadata        json.RawMessage `db:"metadata" json:"metadata"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
}

// LabelInfo is the carrier output written together with the approve transition.
type LabelInfo struct {
	TrackingNumber string
	Carrier        string
	LabelURL       string
}
