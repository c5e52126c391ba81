package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/cafe_ledger/internal/apperrors"
	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	"github.com/SscSPs/cafe_ledger/internal/dto"
	"github.com/SscSPs/cafe_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

func respondOK(c *gin.Context, status int, data any) {
	c.JSON(status, dto.APIResponse{Success: true, Data: data})
}

// respondError maps err onto its status. Internal failures are logged in full
// and reported to the client without detail.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := apperrors.StatusCode(err)
	message := err.Error()

	switch {
	case status == http.StatusUnauthorized:
		message = "unauthorized"
	case status == http.StatusForbidden:
		message = "forbidden"
	case status >= http.StatusInternalServerError:
		logger.Error("Request failed", slog.String("error", err.Error()), slog.String("path", c.FullPath()))
		message = "internal server error"
	default:
		logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	}

	c.JSON(status, dto.APIResponse{Success: false, Message: message})
}

func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.APIResponse{Success: false, Message: "invalid request: " + err.Error()})
}

// parseDateParam parses an optional YYYY-MM-DD query value.
func parseDateParam(name, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		return nil, apperrors.NewValidationError("%s must be a date in YYYY-MM-DD format", name)
	}
	return &t, nil
}
