package handler

import (
	"errors"
	"net/http"
	"strconv"

	"freeco/internal/domain"
	"freeco/internal/listing"
	"freeco/internal/middleware"
	"freeco/internal/service"

	"github.com/gin-gonic/gin"
)

type InterestHandler struct {
	svc *service.InterestService
}

func NewInterestHandler(svc *service.InterestService) *InterestHandler {
	return &InterestHandler{svc: svc}
}

func (h *InterestHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		ListingID   uint   `json:"listing_id" binding:"required"`
		ListingType string `json:"listing_type" binding:"required"`
		Message     string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	in, err := h.svc.Create(userID, req.ListingType, req.ListingID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, listing.ErrUnknownType):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "unknown listing type"})
		case errors.Is(err, service.ErrListingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "listing not found"})
		case errors.Is(err, service.ErrSelfInterest):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "cannot express interest in your own listing"})
		case errors.Is(err, service.ErrDuplicateInterest):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "interest already pending for this listing"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": in})
}

func (h *InterestHandler) Respond(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid interest id"})
		return
	}
	var req struct {
		Status          string `json:"status" binding:"required"`
		ResponseMessage string `json:"response_message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	in, err := h.svc.Respond(uint(id), userID, req.Status, req.ResponseMessage)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "status must be accepted or rejected"})
		case errors.Is(err, service.ErrInterestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "pending interest not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "server error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": in})
}

func (h *InterestHandler) ListSent(c *gin.Context) {
	h.list(c, false)
}

func (h *InterestHandler) ListReceived(c *gin.Context) {
	h.list(c, true)
}

func (h *InterestHandler) list(c *gin.Context, received bool) {
	userID := middleware.GetUserID(c)
	status := c.Query("status")
	if status != "" && status != domain.InterestStatusPending && status != domain.InterestStatusAccepted && status != domain.InterestStatusRejected {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid status filter"})
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	var (
		res *service.InterestPage
		err error
	)
	if received {
		res, err = h.svc.ListReceived(userID, status, page, limit)
	} else {
		res, err = h.svc.ListSent(userID, status, page, limit)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "server error"})
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

func (h *InterestHandler) CheckExisting(c *gin.Context) {
	userID := middleware.GetUserID(c)
	listingID, err := strconv.ParseUint(c.Query("listing_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "listing_id is required"})
		return
	}
	exists, err := h.svc.CheckExisting(uint(listingID), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "exists": exists})
}
