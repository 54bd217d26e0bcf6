package handler

import (
	"errors"
	"net/http"
	"strconv"

	"freeco/internal/listing"
	"freeco/internal/middleware"
	"freeco/internal/repository"
	"freeco/internal/service"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	svc *service.ListingService
}

func NewListingHandler(svc *service.ListingService) *ListingHandler {
	return &ListingHandler{svc: svc}
}

func listingError(c *gin.Context, err error) {
	var vErr *listing.ValidationError
	switch {
	case errors.Is(err, listing.ErrUnknownType):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "unknown listing type"})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": vErr.Error(), "fields": vErr.Fields})
	case errors.Is(err, service.ErrListingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "listing not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "server error"})
	}
}

func (h *ListingHandler) Create(c *gin.Context) {
	tag := c.Param("type")
	userID := middleware.GetUserID(c)
	var in service.ListingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	l, err := h.svc.Create(tag, userID, in)
	if err != nil {
		listingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": l})
}

func (h *ListingHandler) List(c *gin.Context) {
	tag := c.Param("type")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	res, err := h.svc.List(tag, repository.ListParams{
		Status: c.Query("status"),
		Search: c.Query("search"),
		SortBy: c.Query("sort_by"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		listingError(c, err)
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

func (h *ListingHandler) Get(c *gin.Context) {
	tag := c.Param("type")
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid listing id"})
		return
	}
	l, err := h.svc.Get(tag, uint(id))
	if err != nil {
		listingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": l})
}

func (h *ListingHandler) Update(c *gin.Context) {
	tag := c.Param("type")
	userID := middleware.GetUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid listing id"})
		return
	}
	var in service.ListingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	l, err := h.svc.Update(tag, uint(id), userID, in)
	if err != nil {
		listingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": l})
}

func (h *ListingHandler) Delete(c *gin.Context) {
	tag := c.Param("type")
	userID := middleware.GetUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid listing id"})
		return
	}
	if err := h.svc.SoftDelete(tag, uint(id), userID); err != nil {
		listingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "listing deleted"})
}

func (h *ListingHandler) Mine(c *gin.Context) {
	userID := middleware.GetUserID(c)
	grouped, err := h.svc.Mine(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": grouped})
}

func (h *ListingHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "query parameter q is required"})
		return
	}
	grouped, err := h.svc.Search(query, c.Query("type"))
	if err != nil {
		listingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": grouped})
}
