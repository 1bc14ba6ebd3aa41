package models

import "time"

// PaymentMethod identifies how an invoice is settled.
type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard    PaymentMethod = "DEBIT_CARD"
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

// IsValid reports whether m is one of the supported payment methods.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodCash, PaymentMethodBankTransfer:
		return true
	}
	return false
}

// PaymentStatus is the settlement state of an invoice.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusPaid      PaymentStatus = "PAID"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// IsValid reports whether s is one of the known payment statuses.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusCancelled, PaymentStatusRefunded:
		return true
	}
	return false
}

// AdditionalCharge is a priced line item beyond the reservation's base amount,
// resolved against the hotel's service catalog at invoice creation.
type AdditionalCharge struct {
	ServiceType string  `bson:"service_type" json:"serviceType"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"` // Max 200 chars.
	Amount      float64 `bson:"amount" json:"amount"`
}

// HistoryEntry is one record of the invoice's append-only audit trail.
type HistoryEntry struct {
	Date    time.Time `bson:"date" json:"date"`
	ActorID string    `bson:"actor_id,omitempty" json:"actorId,omitempty"` // Empty for system-initiated actions.
	Action  string    `bson:"action" json:"action"`
	Details string    `bson:"details,omitempty" json:"details,omitempty"` // Max 300 chars.
}

// Invoice is the billable record for a reservation. Once created it is mutated
// only through payment-status transitions, which also append to History.
type Invoice struct {
	ID                string             `bson:"invoice_id" json:"id"`
	InvoiceNumber     string             `bson:"invoice_number" json:"invoiceNumber"`
	ReservationID     string             `bson:"reservation_id" json:"reservationId"`
	IssueDate         time.Time          `bson:"issue_date" json:"issueDate"`
	DueDate           time.Time          `bson:"due_date" json:"dueDate"`
	AdditionalCharges []AdditionalCharge `bson:"additional_charges" json:"additionalCharges"`
	Amount            float64            `bson:"amount" json:"amount"` // Base amount plus all additional charges.
	PaymentMethod     PaymentMethod      `bson:"payment_method" json:"paymentMethod"`
	PaymentStatus     PaymentStatus      `bson:"payment_status" json:"paymentStatus"`
	Active            bool               `bson:"active" json:"active"` // Soft-delete flag.
	History           []HistoryEntry     `bson:"history" json:"history"`
	CreatedAt         time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updatedAt"`
}

// ChargeRequest is a caller-supplied additional-service request, priced later
// against the hotel catalog. Quantity defaults to 1 when zero.
type ChargeRequest struct {
	ServiceType string `json:"serviceType"`
	Quantity    int    `json:"quantity,omitempty"`
	Description string `json:"description,omitempty"`
}
