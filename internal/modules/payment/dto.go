package payment

import "hotelreserve/internal/pkg/money"

type OpenPaymentRequest struct {
	Method string `json:"method" binding:"required"`
}

// CallbackRequest mirrors the gateway's wire format. Field names are the
// gateway's, not ours. amt is optional; when present it must match the
// stored payment amount.
type CallbackRequest struct {
	PaymentID     string       `json:"pid" binding:"required"`
	TransactionID string       `json:"refId" binding:"required"`
	Amount        *money.Cents `json:"amt"`
	Status        string       `json:"status" binding:"required"`
}
