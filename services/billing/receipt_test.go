package billing

import (
	"context"
	"os"
	"testing"
	"time"

	"hotelify/models"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newReceiptFixture(t *testing.T) (*FileReceiptRenderer, *memoryRoomRepo, *memoryUserRepo) {
	t.Helper()
	reservations := &memoryReservationRepo{reservations: map[string]*models.Reservation{
		"res-1": {
			ID:        "res-1",
			UserID:    "user-1",
			HotelID:   "hotel-1",
			RoomID:    "room-1",
			StartDate: time.Date(2026, 8, 20, 14, 0, 0, 0, time.UTC),
			ExitDate:  time.Date(2026, 8, 24, 11, 0, 0, 0, time.UTC),
			Amount:    300,
		},
	}}
	hotels := &memoryHotelRepo{hotels: map[string]*models.Hotel{
		"hotel-1": {
			ID:        "hotel-1",
			Name:      "Grand Plaza",
			Address:   "5th Avenue 12",
			Telephone: "555-0100",
		},
	}}
	rooms := &memoryRoomRepo{rooms: map[string]*models.Room{
		"room-1": {ID: "room-1", HotelID: "hotel-1", Type: "Doubleroom", PricePerDay: 80},
	}}
	users := &memoryUserRepo{users: map[string]*models.User{
		"user-1": {ID: "user-1", Name: "Ada Smith", Email: "ada@example.com"},
	}}
	renderer := NewFileReceiptRenderer(zap.NewNop(), reservations, hotels, rooms, users, t.TempDir())
	return renderer, rooms, users
}

func testInvoice(charges []models.AdditionalCharge) *models.Invoice {
	return &models.Invoice{
		ID:                "inv-1",
		InvoiceNumber:     "INV-1756400000000000000",
		ReservationID:     "res-1",
		IssueDate:         time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
		DueDate:           time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
		AdditionalCharges: charges,
		Amount:            300,
		PaymentMethod:     models.PaymentMethodCash,
		PaymentStatus:     models.PaymentStatusPaid,
		Active:            true,
	}
}

func TestRenderReceiptLayout(t *testing.T) {
	renderer, _, _ := newReceiptFixture(t)
	inv := testInvoice([]models.AdditionalCharge{
		{ServiceType: "Singleroom", Amount: 100, Description: "late checkout"},
		{ServiceType: "Event", Amount: 250},
	})

	path, err := renderer.Render(context.Background(), inv)
	require.NoError(t, err)
	require.Equal(t, renderer.ReceiptPath(inv.ID), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	require.Contains(t, content, "Grand Plaza")
	require.Contains(t, content, "Tel: 555-0100")
	require.Contains(t, content, "Invoice No: INV-1756400000000000000")
	require.Contains(t, content, "Issue date: 24/08/2026")
	require.Contains(t, content, "Customer: Ada Smith")
	require.Contains(t, content, "Email: ada@example.com")
	require.Contains(t, content, "Room: Doubleroom")
	require.Contains(t, content, "Room price: $80.00")
	require.Contains(t, content, "Check-in: 20/08/2026")
	require.Contains(t, content, "Check-out: 24/08/2026")
	require.Contains(t, content, "1. Singleroom - $100.00 (late checkout)")
	require.Contains(t, content, "2. Event - $250.00")
	require.Contains(t, content, "Room subtotal: $80.00")
	require.Contains(t, content, "Additional subtotal: $350.00")
	require.Contains(t, content, "Total: $430.00")
	require.Contains(t, content, "Thank you for staying with us!")
	require.NotContains(t, content, "None")
}

func TestRenderReceiptNoCharges(t *testing.T) {
	renderer, _, _ := newReceiptFixture(t)
	inv := testInvoice(nil)

	path, err := renderer.Render(context.Background(), inv)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	require.Contains(t, content, "Additional services:\nNone\n")
	require.Contains(t, content, "Additional subtotal: $0.00")
	require.Contains(t, content, "Total: $80.00")
}

func TestRenderReceiptMissingRoomAndUser(t *testing.T) {
	renderer, rooms, users := newReceiptFixture(t)
	delete(rooms.rooms, "room-1")
	delete(users.users, "user-1")

	path, err := renderer.Render(context.Background(), testInvoice(nil))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	require.Contains(t, content, "Customer: N/A")
	require.Contains(t, content, "Email: N/A")
	require.Contains(t, content, "Room: N/A")
	require.Contains(t, content, "Room price: $0.00")
	require.Contains(t, content, "Total: $0.00")
}

func TestRenderReceiptOverwritesSamePath(t *testing.T) {
	renderer, _, _ := newReceiptFixture(t)
	inv := testInvoice(nil)

	first, err := renderer.Render(context.Background(), inv)
	require.NoError(t, err)
	second, err := renderer.Render(context.Background(), inv)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestRenderReceiptMissingReservation(t *testing.T) {
	renderer, _, _ := newReceiptFixture(t)
	inv := testInvoice(nil)
	inv.ReservationID = "missing"

	_, err := renderer.Render(context.Background(), inv)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "reservation", notFound.Resource)
}
