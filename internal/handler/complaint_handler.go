package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hostel-system/hostel-management/internal/service"
	"github.com/hostel-system/hostel-management/pkg/utils"
)

// ComplaintHandler exposes the complaint tracker endpoints.
type ComplaintHandler struct {
	complaintService *service.ComplaintService
}

func NewComplaintHandler(complaintService *service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintService: complaintService}
}

// RaiseComplaint handles POST /raise-complaint.
func (h *ComplaintHandler) RaiseComplaint(c *gin.Context) {
	var req service.RaiseComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.ErrCodeValidationFailed, "invalid request: %v", err)
		return
	}

	complaint, err := h.complaintService.RaiseComplaint(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTenantNotFound):
			utils.Error(c, utils.ErrCodeNotFound, "Tenant not found")
		case errors.Is(err, service.ErrRoomNotFound):
			utils.Error(c, utils.ErrCodeNotFound, "Room not found")
		default:
			utils.Error(c, utils.ErrCodeInternalError, "failed to raise complaint: %v", err)
		}
		return
	}

	utils.Success(c, http.StatusOK, complaint)
}

// ListComplaints handles GET /complaints and GET /all-complaints.
func (h *ComplaintHandler) ListComplaints(c *gin.Context) {
	complaints, err := h.complaintService.ListComplaints()
	if err != nil {
		utils.Error(c, utils.ErrCodeInternalError, "failed to list complaints: %v", err)
		return
	}

	utils.Success(c, http.StatusOK, complaints)
}

// ListTenantComplaints handles GET /complaints/:tenantId.
func (h *ComplaintHandler) ListTenantComplaints(c *gin.Context) {
	tenantID := c.Param("tenantId")
	if _, err := utils.ParseUUID(tenantID); err != nil {
		utils.Error(c, utils.ErrCodeValidationFailed, "invalid tenant id")
		return
	}

	complaints, err := h.complaintService.ListForTenant(tenantID)
	if err != nil {
		utils.Error(c, utils.ErrCodeInternalError, "failed to list complaints: %v", err)
		return
	}

	utils.Success(c, http.StatusOK, complaints)
}

// UpdateComplaint handles PUT /update-complaint/:id.
func (h *ComplaintHandler) UpdateComplaint(c *gin.Context) {
	complaintID := c.Param("id")
	if _, err := utils.ParseUUID(complaintID); err != nil {
		utils.Error(c, utils.ErrCodeValidationFailed, "invalid complaint id")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.ErrCodeValidationFailed, "invalid request: %v", err)
		return
	}

	complaint, err := h.complaintService.UpdateStatus(complaintID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrComplaintNotFound):
			utils.Error(c, utils.ErrCodeNotFound, "Complaint not found")
		case errors.Is(err, service.ErrInvalidComplaintStatus):
			utils.Error(c, utils.ErrCodeValidationFailed, "status must be Open, In Progress or Closed")
		default:
			utils.Error(c, utils.ErrCodeInternalError, "failed to update complaint: %v", err)
		}
		return
	}

	utils.Success(c, http.StatusOK, complaint)
}
