package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/geocoder89/staffportal/internal/domain/user"
	"github.com/gin-gonic/gin"
)

type UserReader interface {
	GetByEmail(ctx context.Context, email string) (user.User, error)
}

type AuthHandler struct {
	users UserReader
}

func NewAuthHandler(users UserReader) *AuthHandler {
	return &AuthHandler{users: users}
}

// Login checks the credentials against the stored plaintext password. No
// session or token is issued; the client keeps the returned record.
func (h *AuthHandler) Login(ctx *gin.Context) {
	req, ok := decodeBody(ctx, user.DecodeLogin)
	if !ok {
		return
	}

	found, err := h.users.GetByEmail(ctx.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			RespondUnauthorized(ctx, "invalid_credentials", "Invalid credentials")
			return
		}
		respondUnexpected(ctx, "auth.login", err)
		return
	}

	switch err := found.Authenticate(req.Password); {
	case errors.Is(err, user.ErrInvalidCredential):
		RespondUnauthorized(ctx, "invalid_credentials", "Invalid credentials")
		return
	case errors.Is(err, user.ErrLocked):
		RespondForbidden(ctx, "account_locked", "Your account has been locked. Please contact an administrator.")
		return
	case err != nil:
		respondUnexpected(ctx, "auth.login", err)
		return
	}

	RespondMessage(ctx, http.StatusOK, "Login successful", gin.H{"user": found})
}
