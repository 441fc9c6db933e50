package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xkubaj03/tennis-club/internal/apperr"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// RespondError maps a service error onto an HTTP status. Storage errors
// are reported generically so driver details never leak to clients.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperr.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperr.ErrDuplicateKey):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
