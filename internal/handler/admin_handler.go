package handler

import (
	"net/http"
	"strconv"

	"freeco/internal/domain"
	"freeco/internal/listing"
	"freeco/internal/repository"
	"freeco/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	dashSvc     *service.DashboardService
	userRepo    *repository.UserRepository
	listingRepo *repository.ListingRepository
}

func NewAdminHandler(dashSvc *service.DashboardService, userRepo *repository.UserRepository, listingRepo *repository.ListingRepository) *AdminHandler {
	return &AdminHandler{dashSvc: dashSvc, userRepo: userRepo, listingRepo: listingRepo}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	snap, err := h.dashSvc.Statistics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "server error computing statistics"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": snap})
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var isActive *bool
	if v := c.Query("is_active"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "is_active must be true or false"})
			return
		}
		isActive = &b
	}

	users, total, err := h.userRepo.List(repository.UserListParams{
		Role:     c.Query("role"),
		IsActive: isActive,
		Search:   c.Query("search"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": users, "total": total, "current_page": page})
}

// BulkUserAction applies activate, deactivate or delete to a batch of users.
func (h *AdminHandler) BulkUserAction(c *gin.Context) {
	var req struct {
		UserIDs []uint `json:"user_ids" binding:"required"`
		Action  string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if len(req.UserIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "user_ids must not be empty"})
		return
	}

	var (
		affected int64
		err      error
	)
	switch req.Action {
	case "activate":
		affected, err = h.userRepo.BulkSetActive(req.UserIDs, true)
	case "deactivate":
		affected, err = h.userRepo.BulkSetActive(req.UserIDs, false)
	case "delete":
		affected, err = h.userRepo.BulkDelete(req.UserIDs)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "action must be activate, deactivate or delete"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "affected": affected})
}

// BulkListingAction applies activate, deactivate or delete to a batch of
// listings of one type.
func (h *AdminHandler) BulkListingAction(c *gin.Context) {
	var req struct {
		ListingType string `json:"listing_type" binding:"required"`
		ListingIDs  []uint `json:"listing_ids" binding:"required"`
		Action      string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if !listing.Known(req.ListingType) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "unknown listing type"})
		return
	}
	if len(req.ListingIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "listing_ids must not be empty"})
		return
	}

	var (
		affected int64
		err      error
	)
	switch req.Action {
	case "activate":
		affected, err = h.listingRepo.BulkUpdateStatus(req.ListingType, req.ListingIDs, domain.ListingStatusActive)
	case "deactivate":
		affected, err = h.listingRepo.BulkUpdateStatus(req.ListingType, req.ListingIDs, domain.ListingStatusInactive)
	case "delete":
		affected, err = h.listingRepo.BulkDelete(req.ListingType, req.ListingIDs)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "action must be activate, deactivate or delete"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "affected": affected})
}

func (h *AdminHandler) GetSystemConfig(c *gin.Context) {
	snap, err := h.dashSvc.Statistics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"maintenance_mode": snap.MaintenanceMode,
		"disclaimer_text":  snap.DisclaimerText,
		"terms_of_service": snap.TermsOfService,
	}})
}

func (h *AdminHandler) UpdateSystemConfig(c *gin.Context) {
	var req service.SystemConfigInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	snap, err := h.dashSvc.UpdateSystemConfig(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": snap})
}
