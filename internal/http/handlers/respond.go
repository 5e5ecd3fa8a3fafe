package handlers

import (
	"log/slog"
	"net/http"

	"github.com/geocoder89/staffportal/internal/observability"
	"github.com/gin-gonic/gin"
)

// Every response body carries a top-level "message". Errors add a machine
// readable code, the request id and optional details.
type APIError struct {
	Message   string      `json:"message"`
	Code      string      `json:"code"`
	RequestID string      `json:"requestId,omitempty"`
	Details   interface{} `json:"details,omitempty"`
}

const (
	msgInvalidJSON   = "Invalid JSON in request body"
	msgInternalError = "An internal server error occurred"
	msgUserNotFound  = "User not found"
)

func requestIDFrom(ctx *gin.Context) string {
	if id, ok := observability.RequestIDFrom(ctx.Request.Context()); ok {
		return id
	}

	// fallback header
	return ctx.GetHeader("X-Request-Id")
}

// RespondMessage writes {"message": message} merged with payload.
func RespondMessage(ctx *gin.Context, status int, message string, payload gin.H) {
	body := gin.H{"message": message}
	for k, v := range payload {
		body[k] = v
	}

	ctx.JSON(status, body)
}

func RespondError(ctx *gin.Context, status int, code, message string, details interface{}) {
	ctx.AbortWithStatusJSON(status, APIError{
		Message:   message,
		Code:      code,
		RequestID: requestIDFrom(ctx),
		Details:   details,
	})
}

func RespondBadRequest(ctx *gin.Context, message string, details interface{}) {
	RespondError(ctx, http.StatusBadRequest, "invalid_request", message, details)
}

func RespondUnauthorized(ctx *gin.Context, code, message string) {
	RespondError(ctx, http.StatusUnauthorized, code, message, nil)
}

func RespondForbidden(ctx *gin.Context, code, message string) {
	RespondError(ctx, http.StatusForbidden, code, message, nil)
}

func RespondNotFound(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusNotFound, "not_found", message, nil)
}

func RespondConflict(ctx *gin.Context, code, message string) {
	RespondError(ctx, http.StatusConflict, code, message, nil)
}

func RespondInternal(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusInternalServerError, "internal_error", message, nil)
}

// respondUnexpected logs err server side and answers with a generic 500.
func respondUnexpected(ctx *gin.Context, op string, err error) {
	_ = ctx.Error(err)
	slog.Default().ErrorContext(ctx.Request.Context(), "unexpected handler error", "op", op, "err", err)
	RespondInternal(ctx, msgInternalError)
}
