package invoiceRepo

import (
	"context"
	"errors"

	"hotelify/models"
)

// ErrNotFound is returned when no invoice matches the given ID.
var ErrNotFound = errors.New("invoice not found")

// ErrStatusConflict is returned when a conditional transition loses a race:
// the stored payment status no longer matches the status the caller observed.
var ErrStatusConflict = errors.New("invoice payment status changed concurrently")

// InvoiceRepository defines methods for invoice data access.
type InvoiceRepository interface {
	// Create inserts a new invoice record.
	Create(ctx context.Context, inv *models.Invoice) error
	// GetByID retrieves an invoice by its unique ID. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	// AppendTransition atomically sets the payment status and appends a history
	// entry, but only if the stored status still equals from. Returns
	// ErrNotFound when the invoice does not exist and ErrStatusConflict when
	// the stored status has moved on.
	AppendTransition(ctx context.Context, id string, from, to models.PaymentStatus, entry models.HistoryEntry) error
}
