package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hostel-system/hostel-management/internal/service"
	"github.com/hostel-system/hostel-management/pkg/utils"
)

// PaymentHandler exposes the rent ledger endpoints.
type PaymentHandler struct {
	paymentService *service.PaymentService
}

func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// PayRent handles POST /pay-rent.
func (h *PaymentHandler) PayRent(c *gin.Context) {
	var req service.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.ErrCodeValidationFailed, "invalid request: %v", err)
		return
	}

	payment, err := h.paymentService.RecordPayment(req)
	if err != nil {
		if errors.Is(err, service.ErrTenantNotFound) {
			utils.Error(c, utils.ErrCodeNotFound, "Tenant not found")
			return
		}
		utils.Error(c, utils.ErrCodeInternalError, "failed to record payment: %v", err)
		return
	}

	utils.Success(c, http.StatusOK, payment)
}

// RentHistory handles GET /rent-history/:tenantId.
func (h *PaymentHandler) RentHistory(c *gin.Context) {
	tenantID := c.Param("tenantId")

	payments, err := h.paymentService.RentHistory(tenantID)
	if err != nil {
		if errors.Is(err, service.ErrTenantNotFound) {
			utils.Error(c, utils.ErrCodeNotFound, "Tenant not found")
			return
		}
		utils.Error(c, utils.ErrCodeInternalError, "failed to load rent history: %v", err)
		return
	}

	utils.Success(c, http.StatusOK, payments)
}

// MonthlyRent handles GET /monthly-rent/:month.
func (h *PaymentHandler) MonthlyRent(c *gin.Context) {
	month := c.Param("month")

	collection, err := h.paymentService.Collection(month)
	if err != nil {
		utils.Error(c, utils.ErrCodeInternalError, "failed to compute collection: %v", err)
		return
	}

	utils.Success(c, http.StatusOK, collection)
}

// UpdateRentStatus handles PUT /update-rent-status/:paymentId.
func (h *PaymentHandler) UpdateRentStatus(c *gin.Context) {
	paymentID := c.Param("paymentId")
	if _, err := utils.ParseUUID(paymentID); err != nil {
		utils.Error(c, utils.ErrCodeValidationFailed, "invalid payment id")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.ErrCodeValidationFailed, "invalid request: %v", err)
		return
	}

	payment, err := h.paymentService.UpdateStatus(paymentID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentNotFound):
			utils.Error(c, utils.ErrCodeNotFound, "Payment not found")
		case errors.Is(err, service.ErrInvalidPaymentStatus):
			utils.Error(c, utils.ErrCodeValidationFailed, "status must be Paid or Pending")
		default:
			utils.Error(c, utils.ErrCodeInternalError, "failed to update payment: %v", err)
		}
		return
	}

	utils.Success(c, http.StatusOK, payment)
}

// ApproveRent handles PUT /approve-rent/:paymentId.
func (h *PaymentHandler) ApproveRent(c *gin.Context) {
	paymentID := c.Param("paymentId")
	if _, err := utils.ParseUUID(paymentID); err != nil {
		utils.Error(c, utils.ErrCodeValidationFailed, "invalid payment id")
		return
	}

	payment, err := h.paymentService.ApprovePayment(paymentID)
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			utils.Error(c, utils.ErrCodeNotFound, "Payment not found")
			return
		}
		utils.Error(c, utils.ErrCodeInternalError, "failed to approve payment: %v", err)
		return
	}

	utils.Success(c, http.StatusOK, payment)
}

// ListAllPayments handles GET /all-payments.
func (h *PaymentHandler) ListAllPayments(c *gin.Context) {
	payments, err := h.paymentService.ListAllPayments()
	if err != nil {
		utils.Error(c, utils.ErrCodeInternalError, "failed to list payments: %v", err)
		return
	}

	utils.Success(c, http.StatusOK, payments)
}
