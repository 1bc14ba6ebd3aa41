package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	hotelRepo "hotelify/database/repository/hotel"
	invoiceRepo "hotelify/database/repository/invoice"
	reservationRepo "hotelify/database/repository/reservation"
	"hotelify/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// actionCreated is the audit action seeded on every new invoice.
const actionCreated = "CREATED"

// DefaultBillingService implements BillingService on top of the invoice store
// and the read-only reservation/hotel lookups.
type DefaultBillingService struct {
	logger          *zap.Logger
	invoiceRepo     invoiceRepo.InvoiceRepository
	reservationRepo reservationRepo.ReservationRepository
	hotelRepo       hotelRepo.HotelRepository
	renderer        ReceiptRenderer
	locks           *invoiceLockStore
}

// NewBillingService builds a DefaultBillingService instance.
func NewBillingService(
	logger *zap.Logger,
	invoices invoiceRepo.InvoiceRepository,
	reservations reservationRepo.ReservationRepository,
	hotels hotelRepo.HotelRepository,
	renderer ReceiptRenderer,
) *DefaultBillingService {
	return &DefaultBillingService{
		logger:          logger,
		invoiceRepo:     invoices,
		reservationRepo: reservations,
		hotelRepo:       hotels,
		renderer:        renderer,
		locks:           newInvoiceLockStore(),
	}
}

// CreateInvoice bills a reservation. Nothing is persisted unless the whole
// charge resolution succeeds.
func (s *DefaultBillingService) CreateInvoice(ctx context.Context, reservationID string, input CreateInvoiceInput) (*models.Invoice, error) {
	if !input.PaymentMethod.IsValid() {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid payment method '%s'", input.PaymentMethod)}
	}

	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up reservation: %w", err)
	}
	if reservation == nil {
		return nil, &NotFoundError{Resource: "reservation", ID: reservationID}
	}

	hotel, err := s.hotelRepo.GetByID(ctx, reservation.HotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up hotel: %w", err)
	}
	if hotel == nil {
		return nil, &NotFoundError{Resource: "hotel", ID: reservation.HotelID}
	}

	charges, chargesTotal, err := ResolveCharges(hotel.Services, input.AdditionalCharges)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dueDate := now
	if input.DueDate != nil {
		dueDate = *input.DueDate
	}

	inv := &models.Invoice{
		ID:                uuid.New().String(),
		InvoiceNumber:     nextInvoiceNumber(),
		ReservationID:     reservation.ID,
		IssueDate:         now,
		DueDate:           dueDate,
		AdditionalCharges: charges,
		Amount:            reservation.Amount + chargesTotal,
		PaymentMethod:     input.PaymentMethod,
		PaymentStatus:     models.PaymentStatusPending,
		Active:            true,
		History: []models.HistoryEntry{{
			Date:    now,
			ActorID: input.ActorID,
			Action:  actionCreated,
			Details: "Invoice generated at the end of the stay.",
		}},
	}

	if err := s.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to persist invoice: %w", err)
	}

	s.logger.Info("Invoice created",
		zap.String("invoiceId", inv.ID),
		zap.String("invoiceNumber", inv.InvoiceNumber),
		zap.String("reservationId", reservation.ID),
		zap.Float64("amount", inv.Amount),
	)
	return inv, nil
}

// TransitionInvoice runs the payment-status state machine. The per-invoice
// lock plus the conditional repository update keep concurrent transitions
// against the same invoice from both winning.
func (s *DefaultBillingService) TransitionInvoice(ctx context.Context, invoiceID string, status models.PaymentStatus, actorID string) (*models.Invoice, string, error) {
	lock := s.locks.get(invoiceID)
	lock.Lock()
	defer lock.Unlock()

	inv, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up invoice: %w", err)
	}
	if inv == nil {
		return nil, "", &NotFoundError{Resource: "invoice", ID: invoiceID}
	}

	// Settled invoices are left untouched; the caller just gets the document again.
	if inv.PaymentStatus == models.PaymentStatusPaid {
		path, err := s.renderer.Render(ctx, inv)
		if err != nil {
			return nil, "", fmt.Errorf("failed to render receipt: %w", err)
		}
		s.logger.Info("Invoice already paid, receipt rendered again",
			zap.String("invoiceId", inv.ID),
			zap.String("receiptPath", path),
		)
		return inv, path, nil
	}

	// The requested status is only validated when it will actually be applied;
	// a settled invoice skips straight to the re-render above.
	if !status.IsValid() {
		return nil, "", &ValidationError{Message: fmt.Sprintf("invalid payment status '%s'", status)}
	}

	entry := models.HistoryEntry{
		Date:    time.Now(),
		ActorID: actorID,
		Action:  string(status),
		Details: transitionDetails(status),
	}
	if err := s.invoiceRepo.AppendTransition(ctx, invoiceID, inv.PaymentStatus, status, entry); err != nil {
		if errors.Is(err, invoiceRepo.ErrNotFound) {
			return nil, "", &NotFoundError{Resource: "invoice", ID: invoiceID}
		}
		return nil, "", fmt.Errorf("failed to transition invoice: %w", err)
	}

	inv.PaymentStatus = status
	inv.History = append(inv.History, entry)
	inv.UpdatedAt = entry.Date

	var path string
	if status == models.PaymentStatusPaid {
		path, err = s.renderer.Render(ctx, inv)
		if err != nil {
			return nil, "", fmt.Errorf("failed to render receipt: %w", err)
		}
	}

	s.logger.Info("Invoice transitioned",
		zap.String("invoiceId", inv.ID),
		zap.String("status", string(status)),
	)
	return inv, path, nil
}

func transitionDetails(status models.PaymentStatus) string {
	switch status {
	case models.PaymentStatusPaid:
		return "Invoice paid and receipt generated."
	case models.PaymentStatusCancelled:
		return "Invoice cancelled."
	case models.PaymentStatusRefunded:
		return "Invoice refunded."
	default:
		return "Invoice returned to pending."
	}
}
