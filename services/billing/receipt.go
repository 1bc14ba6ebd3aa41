package billing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	hotelRepo "hotelify/database/repository/hotel"
	reservationRepo "hotelify/database/repository/reservation"
	roomRepo "hotelify/database/repository/room"
	userRepo "hotelify/database/repository/user"
	"hotelify/models"

	"go.uber.org/zap"
)

const (
	receiptLineWidth  = 72
	receiptDateFormat = "02/01/2006"
	// placeholder stands in for customer or room data that cannot be resolved.
	placeholder = "N/A"
)

// FileReceiptRenderer renders an invoice into a fixed-layout text document on
// local disk. It performs the cross-entity read assembly itself (reservation,
// hotel, room, user) so the ledger stays free of presentation concerns.
// Re-rendering the same invoice overwrites the same artifact path.
type FileReceiptRenderer struct {
	logger          *zap.Logger
	reservationRepo reservationRepo.ReservationRepository
	hotelRepo       hotelRepo.HotelRepository
	roomRepo        roomRepo.RoomRepository
	userRepo        userRepo.UserRepository
	dir             string
}

// NewFileReceiptRenderer builds a FileReceiptRenderer writing under dir.
func NewFileReceiptRenderer(
	logger *zap.Logger,
	reservations reservationRepo.ReservationRepository,
	hotels hotelRepo.HotelRepository,
	rooms roomRepo.RoomRepository,
	users userRepo.UserRepository,
	dir string,
) *FileReceiptRenderer {
	return &FileReceiptRenderer{
		logger:          logger,
		reservationRepo: reservations,
		hotelRepo:       hotels,
		roomRepo:        rooms,
		userRepo:        users,
		dir:             dir,
	}
}

// ReceiptPath returns the deterministic artifact location for an invoice id.
func (r *FileReceiptRenderer) ReceiptPath(invoiceID string) string {
	return filepath.Join(r.dir, fmt.Sprintf("receipt_%s.txt", invoiceID))
}

// Render assembles the invoice's reservation, hotel, room and user context,
// renders the receipt document and writes it to disk. Missing room or user
// data degrades to placeholders; a missing reservation or hotel fails the
// render.
func (r *FileReceiptRenderer) Render(ctx context.Context, inv *models.Invoice) (string, error) {
	reservation, err := r.reservationRepo.GetByID(ctx, inv.ReservationID)
	if err != nil {
		return "", fmt.Errorf("failed to look up reservation: %w", err)
	}
	if reservation == nil {
		return "", &NotFoundError{Resource: "reservation", ID: inv.ReservationID}
	}

	hotel, err := r.hotelRepo.GetByID(ctx, reservation.HotelID)
	if err != nil {
		return "", fmt.Errorf("failed to look up hotel: %w", err)
	}
	if hotel == nil {
		return "", &NotFoundError{Resource: "hotel", ID: reservation.HotelID}
	}

	// Room and user are optional context; the receipt degrades gracefully.
	room, err := r.roomRepo.GetByID(ctx, reservation.RoomID)
	if err != nil {
		r.logger.Warn("Room lookup failed, rendering receipt without room details",
			zap.String("roomId", reservation.RoomID), zap.Error(err))
		room = nil
	}
	user, err := r.userRepo.GetByID(ctx, reservation.UserID)
	if err != nil {
		r.logger.Warn("User lookup failed, rendering receipt without customer details",
			zap.String("userId", reservation.UserID), zap.Error(err))
		user = nil
	}

	content := renderReceipt(inv, reservation, hotel, room, user)

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create receipts directory: %w", err)
	}
	path := r.ReceiptPath(inv.ID)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write receipt: %w", err)
	}

	r.logger.Info("Receipt rendered",
		zap.String("invoiceId", inv.ID),
		zap.String("path", path),
	)
	return path, nil
}

// renderReceipt produces the fixed receipt layout. Room and user may be nil.
func renderReceipt(inv *models.Invoice, reservation *models.Reservation, hotel *models.Hotel, room *models.Room, user *models.User) string {
	var b strings.Builder

	writeCentered(&b, hotel.Name)
	writeCentered(&b, hotel.Address)
	writeCentered(&b, "Tel: "+hotel.Telephone)
	b.WriteString("\n")

	fmt.Fprintf(&b, "Invoice No: %s\n", inv.InvoiceNumber)
	fmt.Fprintf(&b, "Issue date: %s\n", inv.IssueDate.Format(receiptDateFormat))

	customerName, customerEmail := placeholder, placeholder
	if user != nil {
		customerName, customerEmail = user.Name, user.Email
	}
	fmt.Fprintf(&b, "Customer: %s\n", customerName)
	fmt.Fprintf(&b, "Email: %s\n", customerEmail)
	b.WriteString("\n")

	b.WriteString("Reservation details:\n")
	roomType, roomPrice := placeholder, 0.0
	if room != nil {
		roomType, roomPrice = room.Type, room.PricePerDay
	}
	fmt.Fprintf(&b, "Room: %s\n", roomType)
	fmt.Fprintf(&b, "Room price: $%.2f\n", roomPrice)
	fmt.Fprintf(&b, "Check-in: %s\n", formatDate(reservation.StartDate))
	fmt.Fprintf(&b, "Check-out: %s\n", formatDate(reservation.ExitDate))
	b.WriteString("\n")

	b.WriteString("Additional services:\n")
	var chargesTotal float64
	if len(inv.AdditionalCharges) == 0 {
		b.WriteString("None\n")
	} else {
		for i, charge := range inv.AdditionalCharges {
			fmt.Fprintf(&b, "%d. %s - $%.2f", i+1, charge.ServiceType, charge.Amount)
			if charge.Description != "" {
				fmt.Fprintf(&b, " (%s)", charge.Description)
			}
			b.WriteString("\n")
			chargesTotal += charge.Amount
		}
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Room subtotal: $%.2f\n", roomPrice)
	fmt.Fprintf(&b, "Additional subtotal: $%.2f\n", chargesTotal)
	writeRightAligned(&b, fmt.Sprintf("Total: $%.2f", roomPrice+chargesTotal))
	b.WriteString("\n")

	writeCentered(&b, "Thank you for staying with us!")
	return b.String()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return placeholder
	}
	return t.Format(receiptDateFormat)
}

func writeCentered(b *strings.Builder, s string) {
	pad := (receiptLineWidth - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(s)
	b.WriteString("\n")
}

func writeRightAligned(b *strings.Builder, s string) {
	pad := receiptLineWidth - len(s)
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(s)
	b.WriteString("\n")
}
