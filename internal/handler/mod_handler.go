package handler

import (
	"errors"
	"net/http"
	"strconv"

	"freeco/internal/listing"
	"freeco/internal/repository"
	"freeco/internal/service"

	"github.com/gin-gonic/gin"
)

// ModHandler serves the moderation queues for moderator and admin accounts.
type ModHandler struct {
	svc *service.ModerationService
}

func NewModHandler(svc *service.ModerationService) *ModHandler {
	return &ModHandler{svc: svc}
}

func modError(c *gin.Context, err error) {
	var missing *service.MissingFieldsError
	switch {
	case errors.Is(err, service.ErrInvalidAction),
		errors.Is(err, service.ErrInvalidIDs),
		errors.Is(err, listing.ErrUnknownType):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case errors.As(err, &missing):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": missing.Error(), "fields": missing.Fields})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "user not found"})
	case errors.Is(err, service.ErrInterestNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "interest not found"})
	case errors.Is(err, service.ErrListingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "listing not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "server error"})
	}
}

func (h *ModHandler) ProfileQueue(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	users, pageSize, err := h.svc.ProfileQueue(page)
	if err != nil {
		modError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": users, "page": page, "page_size": pageSize})
}

func (h *ModHandler) ReviewProfile(c *gin.Context) {
	var req struct {
		UserID uint   `json:"user_id" binding:"required"`
		Action string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	u, err := h.svc.ReviewProfile(req.UserID, req.Action)
	if err != nil {
		modError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": u})
}

func (h *ModHandler) BulkReviewProfiles(c *gin.Context) {
	var req struct {
		UserIDs []uint `json:"user_ids" binding:"required"`
		Action  string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	updated, err := h.svc.BulkReviewProfiles(req.UserIDs, req.Action)
	if err != nil {
		modError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "updated": updated})
}

func (h *ModHandler) InterestQueue(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	items, err := h.svc.InterestQueue(page, limit)
	if err != nil {
		modError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": items, "page": page})
}

func (h *ModHandler) ReviewInterest(c *gin.Context) {
	var req struct {
		InterestID uint   `json:"interest_id" binding:"required"`
		Action     string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	in, err := h.svc.ReviewInterest(req.InterestID, req.Action)
	if err != nil {
		modError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": in})
}

func (h *ModHandler) ListingQueue(c *gin.Context) {
	tag := c.DefaultQuery("type", "all")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	res, err := h.svc.ListingQueue(tag, page, limit)
	if err != nil {
		modError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"data":         res.Items,
		"total":        res.Total,
		"total_pages":  res.TotalPages,
		"current_page": res.CurrentPage,
	})
}

func (h *ModHandler) ReviewListing(c *gin.Context) {
	var req struct {
		ListingID   uint   `json:"listing_id" binding:"required"`
		ListingType string `json:"listing_type" binding:"required"`
		Action      string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	l, err := h.svc.ReviewListing(req.ListingID, req.ListingType, req.Action)
	if err != nil {
		modError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": l})
}

func (h *ModHandler) BulkReviewListings(c *gin.Context) {
	var req struct {
		Listings []repository.IDRef `json:"listings" binding:"required"`
		Action   string             `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	res, err := h.svc.BulkReviewListings(req.Listings, req.Action)
	if err != nil {
		modError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"total":         res.Total,
		"processed":     res.Processed,
		"failed":        res.Failed,
		"notifications": res.Notifications,
	})
}

func (h *ModHandler) AllListingIDs(c *gin.Context) {
	refs, err := h.svc.AllListingIDs()
	if err != nil {
		modError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": refs, "total": len(refs)})
}
