package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the deposit payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// DepositPayment records an anticipo collected against a repair order draft.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (draft_id-index): draft_id
//
// GatewayPayloadRaw keeps the original provider body (JSON) for
// traceability; GatewayPayload is an optional parsed representation.

type DepositPayment struct {
	ID      string        `json:"id"`
	DraftID string        `json:"draft_id"`
	Amount  float64       `json:"amount"`
	Date    time.Time     `json:"date"`
	Status  PaymentStatus `json:"status"`

	GatewayPayloadRaw json.RawMessage        `json:"gateway_payload_raw,omitempty"`
	GatewayPayload    map[string]interface{} `json:"gateway_payload,omitempty"`
}
