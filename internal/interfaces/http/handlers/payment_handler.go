package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"swift-parcel.backend/internal/domain/entities"
	domainerrors "swift-parcel.backend/internal/domain/errors"
	"swift-parcel.backend/internal/interfaces/http/middleware"
	"swift-parcel.backend/internal/interfaces/http/response"
	"swift-parcel.backend/internal/usecases"
)

// PaymentHandler handles payment endpoints
type PaymentHandler struct {
	paymentUsecase *usecases.PaymentUsecase
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUsecase *usecases.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{paymentUsecase: paymentUsecase}
}

// CreateIntent obtains a charge secret from the payment provider
// POST /create-payment-intent
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var input entities.CreateIntentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	intent, err := h.paymentUsecase.CreateIntent(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "payment intent created", gin.H{
		"clientSecret": intent.ClientSecret,
	})
}

// ConfirmPayment records a successful charge and marks the parcel paid.
// The modified count is reported separately from the inserted payment id;
// zero modified parcels is still a successful confirmation.
// POST /payments
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	var input entities.ConfirmPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.paymentUsecase.Confirm(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "payment recorded", gin.H{
		"insertedId":    result.InsertedID,
		"modifiedCount": result.ModifiedCount,
	})
}

// History returns the caller's own payments. Ownership is strict equality
// on the email claim; admins get no exemption here.
// GET /payments?email=
func (h *PaymentHandler) History(c *gin.Context) {
	callerEmail, ok := middleware.GetUserEmail(c)
	if !ok {
		response.Error(c, domainerrors.Unauthenticated("authentication required"))
		return
	}

	email := c.Query("email")
	if email == "" {
		email = callerEmail
	}
	if email != callerEmail {
		response.Error(c, domainerrors.Forbidden("payment history is self-access only"))
		return
	}

	payments, err := h.paymentUsecase.History(c.Request.Context(), email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "payment history", gin.H{
		"payments": payments,
		"count":    len(payments),
	})
}
