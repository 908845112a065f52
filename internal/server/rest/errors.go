package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/newsroom/internal/common"
	"github.com/dmitrijs2005/newsroom/internal/logging"
	"github.com/gin-gonic/gin"
)

const (
	msgUnauthorized = "unauthorized"
	msgBadRequest   = "invalid request body"
)

// writeError maps a service error to a status code and a JSON body.
// Unexpected errors are logged and reported without detail.
func writeError(c *gin.Context, logger logging.Logger, err error) {
	status, msg := http.StatusInternalServerError, common.ErrorInternal.Error()

	switch {
	case errors.Is(err, common.ErrInvalidLogin):
		status, msg = http.StatusUnauthorized, common.ErrInvalidLogin.Error()
	case errors.Is(err, common.ErrUnauthenticated), errors.Is(err, common.ErrInvalidToken):
		status, msg = http.StatusUnauthorized, msgUnauthorized
	case errors.Is(err, common.ErrValidation):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrForbidden):
		status, msg = http.StatusForbidden, common.ErrForbidden.Error()
	case errors.Is(err, common.ErrorNotFound):
		status, msg = http.StatusNotFound, common.ErrorNotFound.Error()
	case errors.Is(err, common.ErrConflict), errors.Is(err, common.ErrAlreadyExists):
		status, msg = http.StatusConflict, err.Error()
	default:
		logger.Error(c.Request.Context(), "request failed",
			"method", c.Request.Method, "path", c.FullPath(), "error", err)
	}

	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
