package handlers

import (
	"errors"
	"net/http"
	"time"

	"hotelify/models"
	"hotelify/services/billing"
	"hotelify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoiceHandler exposes the billing endpoints.
type InvoiceHandler struct {
	Service billing.BillingService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(service billing.BillingService) *InvoiceHandler {
	return &InvoiceHandler{Service: service}
}

// CreateInvoiceHandler handles POST /api/invoices/create/:reservationId.
func (h *InvoiceHandler) CreateInvoiceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	reservationID := c.Param("reservationId")

	var req struct {
		PaymentMethod     models.PaymentMethod   `json:"paymentMethod" binding:"required"`
		DueDate           *time.Time             `json:"dueDate"`
		AdditionalCharges []models.ChargeRequest `json:"additionalCharges"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	// The authenticating layer stores the acting user's id on the context;
	// absence marks a system-initiated invoice.
	actorID := c.GetString("actorID")

	inv, err := h.Service.CreateInvoice(c.Request.Context(), reservationID, billing.CreateInvoiceInput{
		PaymentMethod:     req.PaymentMethod,
		DueDate:           req.DueDate,
		AdditionalCharges: req.AdditionalCharges,
		ActorID:           actorID,
	})
	if err != nil {
		logger.Error("Failed to create invoice",
			zap.String("reservationId", reservationID), zap.Error(err))
		c.JSON(statusForBillingError(err), gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"msg":     "Invoice generated successfully",
		"invoice": inv,
	})
}

// PayInvoiceHandler handles PUT /api/invoices/pay/:id.
func (h *InvoiceHandler) PayInvoiceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	invoiceID := c.Param("id")

	var req struct {
		PaymentStatus models.PaymentStatus `json:"paymentStatus" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	actorID := c.GetString("actorID")

	inv, receiptPath, err := h.Service.TransitionInvoice(c.Request.Context(), invoiceID, req.PaymentStatus, actorID)
	if err != nil {
		logger.Error("Failed to update invoice",
			zap.String("invoiceId", invoiceID), zap.Error(err))
		c.JSON(statusForBillingError(err), gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"msg":         "Invoice updated successfully",
		"invoice":     inv,
		"receiptPath": receiptPath,
	})
}

// statusForBillingError maps billing error types to HTTP status codes.
func statusForBillingError(err error) int {
	var notFound *billing.NotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}
	var unknownService *billing.UnknownServiceTypeError
	if errors.As(err, &unknownService) {
		return http.StatusBadRequest
	}
	var validation *billing.ValidationError
	if errors.As(err, &validation) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
