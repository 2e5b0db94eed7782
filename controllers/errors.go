package controllers

import (
	"errors"

	"orderboard/pkg/resp"
	"orderboard/services"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps the service error taxonomy to HTTP codes. The
// message always names the violated invariant so displays can show more than
// a generic failure.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrMenuItemNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrSettingNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrMenuItemUnavailable),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidOrderType),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrNoNextStatus),
		errors.Is(err, services.ErrValidation):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrArchiveConflict),
		errors.Is(err, services.ErrUsernameTaken):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrAccountInactive),
		errors.Is(err, services.ErrOwnerImmutable):
		resp.Forbidden(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
