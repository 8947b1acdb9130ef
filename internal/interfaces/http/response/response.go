package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "swift-parcel.backend/internal/domain/errors"
)

// Success sends the standard envelope with extra fields merged in
func Success(c *gin.Context, status int, message string, extra gin.H) {
	body := gin.H{
		"success": true,
		"message": message,
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}

// Error sends an error envelope, translating domain error kinds to HTTP
// statuses. Anything unrecognized is a 500.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = fromSentinel(err)
	}
	c.JSON(appErr.Status, gin.H{
		"success": false,
		"message": appErr.Message,
	})
}

func fromSentinel(err error) *domainerrors.AppError {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("resource not found")
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.Conflict("resource already exists")
	case errors.Is(err, domainerrors.ErrInvalidInput), errors.Is(err, domainerrors.ErrInvalidStatus):
		return domainerrors.BadRequest("invalid input")
	case errors.Is(err, domainerrors.ErrUnauthenticated):
		return domainerrors.Unauthenticated("authentication required")
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden("forbidden")
	case errors.Is(err, domainerrors.ErrDependencyUnavailable):
		return domainerrors.NewAppError(http.StatusInternalServerError, "dependency unavailable", err)
	default:
		return domainerrors.InternalError(err)
	}
}
