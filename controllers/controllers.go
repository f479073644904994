package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"socialfeed-api/services"
	"socialfeed-api/utils"
)

// handleServiceError maps the service layer's error kinds onto HTTP status
// codes. Anything unrecognized is a 500 and gets logged.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.SendError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrForbidden):
		utils.SendError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.SendError(c, http.StatusNotFound, err.Error())
	default:
		utils.Logger.Error("request failed",
			zap.String("path", c.FullPath()), zap.Error(err))
		utils.SendError(c, http.StatusInternalServerError, "Internal server error")
	}
}
