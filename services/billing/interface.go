package billing

import (
	"context"
	"time"

	"hotelify/models"
)

// CreateInvoiceInput carries the caller-supplied part of a new invoice. The
// API layer has already authenticated the actor; an empty ActorID marks a
// system-initiated invoice.
type CreateInvoiceInput struct {
	PaymentMethod     models.PaymentMethod
	DueDate           *time.Time // Defaults to the issue date when nil.
	AdditionalCharges []models.ChargeRequest
	ActorID           string
}

// BillingService owns invoice creation and the payment-status state machine.
type BillingService interface {
	// CreateInvoice bills a reservation: resolves additional charges against
	// the hotel catalog, computes the total and persists a PENDING invoice
	// with a seeded audit history.
	CreateInvoice(ctx context.Context, reservationID string, input CreateInvoiceInput) (*models.Invoice, error)
	// TransitionInvoice moves an invoice to the requested payment status and
	// appends an audit entry. An invoice that is already PAID is not mutated;
	// its receipt is simply rendered again. Whenever the resulting status is
	// PAID the returned string is the receipt artifact path.
	TransitionInvoice(ctx context.Context, invoiceID string, status models.PaymentStatus, actorID string) (*models.Invoice, string, error)
}

// ReceiptRenderer turns a finalized invoice into a persisted document
// artifact and returns its location. Rendering never mutates the invoice.
type ReceiptRenderer interface {
	Render(ctx context.Context, inv *models.Invoice) (string, error)
}
