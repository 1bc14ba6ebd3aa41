package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	invoiceRepo "hotelify/database/repository/invoice"
	"hotelify/models"
	"hotelify/services/billing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryInvoiceRepo struct {
	mu       sync.Mutex
	invoices map[string]*models.Invoice
}

func (r *memoryInvoiceRepo) Create(ctx context.Context, inv *models.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *memoryInvoiceRepo) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	cp.History = append([]models.HistoryEntry(nil), inv.History...)
	return &cp, nil
}

func (r *memoryInvoiceRepo) AppendTransition(ctx context.Context, id string, from, to models.PaymentStatus, entry models.HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invoices[id]
	if !ok {
		return invoiceRepo.ErrNotFound
	}
	if inv.PaymentStatus != from {
		return invoiceRepo.ErrStatusConflict
	}
	inv.PaymentStatus = to
	inv.History = append(inv.History, entry)
	return nil
}

type memoryReservationRepo struct {
	reservations map[string]*models.Reservation
}

func (r *memoryReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	res, ok := r.reservations[id]
	if !ok {
		return nil, nil
	}
	return res, nil
}

type memoryHotelRepo struct {
	hotels map[string]*models.Hotel
}

func (r *memoryHotelRepo) GetByID(ctx context.Context, id string) (*models.Hotel, error) {
	hotel, ok := r.hotels[id]
	if !ok {
		return nil, nil
	}
	return hotel, nil
}

type memoryRoomRepo struct {
	rooms map[string]*models.Room
}

func (r *memoryRoomRepo) GetByID(ctx context.Context, id string) (*models.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, nil
	}
	return room, nil
}

type memoryUserRepo struct {
	users map[string]*models.User
}

func (r *memoryUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	invoices := &memoryInvoiceRepo{invoices: make(map[string]*models.Invoice)}
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
			Services:  []models.HotelService{{Type: "Singleroom", Price: 100}},
		},
	}}
	rooms := &memoryRoomRepo{rooms: map[string]*models.Room{
		"room-1": {ID: "room-1", HotelID: "hotel-1", Type: "Doubleroom", PricePerDay: 80},
	}}
	users := &memoryUserRepo{users: map[string]*models.User{
		"user-1": {ID: "user-1", Name: "Ada Smith", Email: "ada@example.com"},
	}}

	renderer := billing.NewFileReceiptRenderer(zap.NewNop(), reservations, hotels, rooms, users, t.TempDir())
	service := billing.NewBillingService(zap.NewNop(), invoices, reservations, hotels, renderer)
	handler := NewInvoiceHandler(service)

	r := gin.New()
	r.POST("/api/invoices/create/:reservationId", handler.CreateInvoiceHandler)
	r.PUT("/api/invoices/pay/:id", handler.PayInvoiceHandler)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, url, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateInvoiceEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/invoices/create/res-1", gin.H{
		"paymentMethod": "CASH",
		"additionalCharges": []gin.H{
			{"serviceType": "Singleroom", "quantity": 1},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool           `json:"success"`
		Invoice models.Invoice `json:"invoice"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, 400.0, resp.Invoice.Amount)
	require.Equal(t, models.PaymentStatusPending, resp.Invoice.PaymentStatus)
	require.Len(t, resp.Invoice.History, 1)
}

func TestCreateInvoiceEndpointUnknownService(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/invoices/create/res-1", gin.H{
		"paymentMethod": "CASH",
		"additionalCharges": []gin.H{
			{"serviceType": "Suite"},
		},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateInvoiceEndpointReservationMissing(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/invoices/create/unknown", gin.H{
		"paymentMethod": "CASH",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateInvoiceEndpointMissingPaymentMethod(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/invoices/create/res-1", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPayInvoiceEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/invoices/create/res-1", gin.H{
		"paymentMethod": "CREDIT_CARD",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Invoice models.Invoice `json:"invoice"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	payURL := fmt.Sprintf("/api/invoices/pay/%s", created.Invoice.ID)
	w = doJSON(t, r, http.MethodPut, payURL, gin.H{"paymentStatus": "PAID"})
	require.Equal(t, http.StatusOK, w.Code)

	var paid struct {
		Invoice     models.Invoice `json:"invoice"`
		ReceiptPath string         `json:"receiptPath"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &paid))
	require.Equal(t, models.PaymentStatusPaid, paid.Invoice.PaymentStatus)
	require.NotEmpty(t, paid.ReceiptPath)

	// Paying again is idempotent but still hands back a receipt path.
	w = doJSON(t, r, http.MethodPut, payURL, gin.H{"paymentStatus": "PAID"})
	require.Equal(t, http.StatusOK, w.Code)

	var repaid struct {
		Invoice     models.Invoice `json:"invoice"`
		ReceiptPath string         `json:"receiptPath"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &repaid))
	require.NotEmpty(t, repaid.ReceiptPath)
	require.Len(t, repaid.Invoice.History, len(paid.Invoice.History))
}

func TestPayInvoiceEndpointNotFound(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/invoices/pay/unknown", gin.H{"paymentStatus": "PAID"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPayInvoiceEndpointInvalidStatus(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/invoices/create/res-1", gin.H{
		"paymentMethod": "CASH",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Invoice models.Invoice `json:"invoice"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodPut, "/api/invoices/pay/"+created.Invoice.ID, gin.H{"paymentStatus": "SETTLED"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
