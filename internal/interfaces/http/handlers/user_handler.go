package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"swift-parcel.backend/internal/domain/entities"
	domainerrors "swift-parcel.backend/internal/domain/errors"
	"swift-parcel.backend/internal/interfaces/http/response"
	"swift-parcel.backend/internal/usecases"
)

// UserHandler handles user and directory endpoints
type UserHandler struct {
	userUsecase *usecases.UserUsecase
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUsecase *usecases.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// CreateUser upserts a user on first sign-in
// POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input entities.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.userUsecase.CreateUser(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	status := http.StatusCreated
	message := "user created"
	if !result.Inserted {
		status = http.StatusOK
		message = "user already exists, last log in updated"
	}
	response.Success(c, status, message, gin.H{
		"email":    result.Email,
		"role":     result.Role,
		"inserted": result.Inserted,
	})
}

// SearchUsers matches emails by substring, admin only
// GET /users/search?q=
func (h *UserHandler) SearchUsers(c *gin.Context) {
	users, err := h.userUsecase.SearchUsers(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "users matched", gin.H{
		"users": users,
		"count": len(users),
	})
}

// GetRole is the public role lookup
// GET /users/role/:email
func (h *UserHandler) GetRole(c *gin.Context) {
	role, err := h.userUsecase.GetRole(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "role found", gin.H{"role": role.Role})
}

// MakeAdmin grants the admin role
// PATCH /users/make-admin/:email
func (h *UserHandler) MakeAdmin(c *gin.Context) {
	if err := h.userUsecase.MakeAdmin(c.Request.Context(), c.Param("email")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "admin role granted", gin.H{
		"role":          entities.UserRoleAdmin,
		"modifiedCount": 1,
	})
}

// RemoveAdmin revokes the admin role
// PATCH /users/remove-admin/:email
func (h *UserHandler) RemoveAdmin(c *gin.Context) {
	if err := h.userUsecase.RemoveAdmin(c.Request.Context(), c.Param("email")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "admin role revoked", gin.H{
		"role":          entities.UserRoleUser,
		"modifiedCount": 1,
	})
}
