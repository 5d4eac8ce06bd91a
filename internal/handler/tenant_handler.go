package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hostel-system/hostel-management/internal/service"
	"github.com/hostel-system/hostel-management/pkg/utils"
)

// TenantHandler exposes tenant profile endpoints.
type TenantHandler struct {
	tenantService *service.TenantService
}

func NewTenantHandler(tenantService *service.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// AddTenant handles POST /add-tenant.
func (h *TenantHandler) AddTenant(c *gin.Context) {
	var req service.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.ErrCodeValidationFailed, "invalid request: %v", err)
		return
	}

	tenant, err := h.tenantService.CreateTenant(req)
	if err != nil {
		utils.Error(c, utils.ErrCodeInternalError, "failed to add tenant: %v", err)
		return
	}

	utils.Success(c, http.StatusOK, tenant)
}

// ListTenants handles GET /tenants. Room references come back resolved.
func (h *TenantHandler) ListTenants(c *gin.Context) {
	tenants, err := h.tenantService.ListTenants()
	if err != nil {
		utils.Error(c, utils.ErrCodeInternalError, "failed to list tenants: %v", err)
		return
	}

	utils.Success(c, http.StatusOK, tenants)
}

// GetTenantByUser handles GET /tenant-by-user/:userId.
func (h *TenantHandler) GetTenantByUser(c *gin.Context) {
	userID := c.Param("userId")
	if _, err := utils.ParseUUID(userID); err != nil {
		utils.Error(c, utils.ErrCodeValidationFailed, "invalid user id")
		return
	}

	tenant, err := h.tenantService.GetTenantByUser(userID)
	if err != nil {
		if errors.Is(err, service.ErrTenantNotFound) {
			utils.Error(c, utils.ErrCodeNotFound, "Tenant not found")
			return
		}
		utils.Error(c, utils.ErrCodeInternalError, "failed to resolve tenant: %v", err)
		return
	}

	utils.Success(c, http.StatusOK, tenant)
}

// UpdateTenant handles PUT /update-tenant/:tenantId.
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	tenantID := c.Param("tenantId")
	if _, err := utils.ParseUUID(tenantID); err != nil {
		utils.Error(c, utils.ErrCodeValidationFailed, "invalid tenant id")
		return
	}

	var req service.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.ErrCodeValidationFailed, "invalid request: %v", err)
		return
	}

	tenant, err := h.tenantService.UpdateProfile(tenantID, req)
	if err != nil {
		if errors.Is(err, service.ErrTenantNotFound) {
			utils.Error(c, utils.ErrCodeNotFound, "Tenant not found")
			return
		}
		utils.Error(c, utils.ErrCodeInternalError, "failed to update tenant: %v", err)
		return
	}

	utils.Success(c, http.StatusOK, tenant)
}

// MigrateUsersToTenants handles POST /migrate-users-to-tenants, backfilling
// profiles for tenant-role users created before profiles existed.
func (h *TenantHandler) MigrateUsersToTenants(c *gin.Context) {
	created, err := h.tenantService.BackfillTenants()
	if err != nil {
		utils.Error(c, utils.ErrCodeInternalError, "migration failed: %v", err)
		return
	}

	utils.Success(c, http.StatusOK, gin.H{"tenantsCreated": created})
}
