package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/order-management-api/services"
	"github.com/yeremiapane/order-management-api/utils"
)

// ErrNoPermission is returned when a role check inside a handler fails.
var ErrNoPermission = errors.New("you do not have permission")

// respondServiceError translates the service error taxonomy into HTTP status
// codes. Anything unrecognized is an internal error.
func respondServiceError(c *gin.Context, err error) {
	var (
		notFound     *services.NotFoundError
		insufficient *services.InsufficientBalanceError
		noPurchase   *services.PurchaseNotFoundError
		conflict     *services.ConflictError
		validation   *services.ValidationError
	)

	switch {
	case errors.As(err, &notFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.As(err, &noPurchase):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.As(err, &insufficient):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.As(err, &validation):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.As(err, &conflict):
		utils.RespondError(c, http.StatusConflict, err)
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.RespondError(c, http.StatusUnauthorized, err)
	default:
		utils.ErrorLogger.Printf("Unexpected error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid id parameter"))
		return 0, false
	}
	return uint(id), true
}
