package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"swift-parcel.backend/internal/domain/entities"
	domainerrors "swift-parcel.backend/internal/domain/errors"
	"swift-parcel.backend/internal/interfaces/http/middleware"
	"swift-parcel.backend/internal/interfaces/http/response"
	"swift-parcel.backend/internal/usecases"
	"swift-parcel.backend/pkg/utils"
)

// ParcelHandler handles parcel endpoints
type ParcelHandler struct {
	parcelUsecase *usecases.ParcelUsecase
}

// NewParcelHandler creates a new parcel handler
func NewParcelHandler(parcelUsecase *usecases.ParcelUsecase) *ParcelHandler {
	return &ParcelHandler{parcelUsecase: parcelUsecase}
}

// CreateParcel creates a parcel in its initial unpaid/not_collected state
// POST /parcels
func (h *ParcelHandler) CreateParcel(c *gin.Context) {
	var input entities.CreateParcelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	parcel, err := h.parcelUsecase.CreateParcel(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "parcel created", gin.H{
		"insertedId": parcel.ID,
		"parcel":     parcel,
	})
}

// ListParcels lists parcels with optional conjunctive filters. A non-admin
// caller only sees their own parcels: a foreign email filter is forbidden
// and a missing one defaults to the caller's email.
// GET /parcels?email=&payment_status=&delivery_status=&page=&limit=
func (h *ParcelHandler) ListParcels(c *gin.Context) {
	callerEmail, _ := middleware.GetUserEmail(c)
	callerRole, _ := middleware.GetUserRole(c)

	filter := entities.ParcelFilter{
		Email:          c.Query("email"),
		PaymentStatus:  c.Query("payment_status"),
		DeliveryStatus: c.Query("delivery_status"),
	}
	if callerRole != entities.UserRoleAdmin {
		if filter.Email == "" {
			filter.Email = callerEmail
		} else if filter.Email != callerEmail {
			response.Error(c, domainerrors.Forbidden("cannot list another user's parcels"))
			return
		}
	}

	parcels, err := h.parcelUsecase.ListParcels(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	params := utils.GetPaginationParams(page, limit)
	total := int64(len(parcels))
	if params.Limit > 0 {
		offset := params.CalculateOffset()
		if offset > len(parcels) {
			offset = len(parcels)
		}
		end := offset + params.Limit
		if end > len(parcels) {
			end = len(parcels)
		}
		parcels = parcels[offset:end]
	}

	response.Success(c, http.StatusOK, "parcels listed", gin.H{
		"parcels":    parcels,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// GetParcel fetches a single parcel
// GET /parcels/:id
func (h *ParcelHandler) GetParcel(c *gin.Context) {
	parcel, err := h.parcelUsecase.GetParcel(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "parcel found", gin.H{"parcel": parcel})
}

// AssignRider assigns a rider and moves the parcel to in_transit
// PATCH /parcels/assign/:id
func (h *ParcelHandler) AssignRider(c *gin.Context) {
	var input entities.AssignRiderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.parcelUsecase.AssignRider(c.Request.Context(), c.Param("id"), &input); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "rider assigned", gin.H{
		"deliveryStatus": entities.DeliveryStatusInTransit,
		"modifiedCount":  1,
	})
}

// DeleteParcel removes a parcel
// DELETE /parcels/:id
func (h *ParcelHandler) DeleteParcel(c *gin.Context) {
	if err := h.parcelUsecase.DeleteParcel(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "parcel deleted", gin.H{"deletedCount": 1})
}
