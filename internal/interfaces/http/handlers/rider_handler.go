package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"swift-parcel.backend/internal/domain/entities"
	domainerrors "swift-parcel.backend/internal/domain/errors"
	"swift-parcel.backend/internal/interfaces/http/response"
	"swift-parcel.backend/internal/usecases"
)

// RiderHandler handles rider application endpoints
type RiderHandler struct {
	riderUsecase *usecases.RiderUsecase
}

// NewRiderHandler creates a new rider handler
func NewRiderHandler(riderUsecase *usecases.RiderUsecase) *RiderHandler {
	return &RiderHandler{riderUsecase: riderUsecase}
}

// Apply submits a rider application
// POST /riders
func (h *RiderHandler) Apply(c *gin.Context) {
	var input entities.ApplyRiderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	rider, err := h.riderUsecase.Apply(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "rider application submitted", gin.H{
		"insertedId": rider.ID,
		"rider":      rider,
	})
}

// ListPending lists pending applications, admin only
// GET /riders/pending
func (h *RiderHandler) ListPending(c *gin.Context) {
	riders, err := h.riderUsecase.ListPending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "pending riders listed", gin.H{
		"riders": riders,
		"count":  len(riders),
	})
}

// ListActive lists active riders, admin only
// GET /riders/active
func (h *RiderHandler) ListActive(c *gin.Context) {
	riders, err := h.riderUsecase.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "active riders listed", gin.H{
		"riders": riders,
		"count":  len(riders),
	})
}

// ListByDistrict lists active riders for a district, admin only
// GET /riders/by-district?district=
func (h *RiderHandler) ListByDistrict(c *gin.Context) {
	riders, err := h.riderUsecase.ListByDistrict(c.Request.Context(), c.Query("district"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "riders listed", gin.H{
		"riders": riders,
		"count":  len(riders),
	})
}

// UpdateStatus applies an admin decision on an application
// PATCH /riders/:id
func (h *RiderHandler) UpdateStatus(c *gin.Context) {
	var input entities.UpdateRiderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.riderUsecase.UpdateStatus(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "rider status updated", gin.H{
		"status":        result.Status,
		"modifiedCount": result.ModifiedCount,
	})
}
