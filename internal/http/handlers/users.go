package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/geocoder89/staffportal/internal/domain/user"
	"github.com/gin-gonic/gin"
)

type UsersStore interface {
	Create(ctx context.Context, u user.User) (user.User, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
	List(ctx context.Context) ([]user.User, error)
	Update(ctx context.Context, email string, req user.UpdateUserRequest) (user.User, error)
	Delete(ctx context.Context, email string) error
	ToggleLock(ctx context.Context, email string) (user.User, error)
}

type UsersHandler struct {
	repo UsersStore
}

func NewUsersHandler(repo UsersStore) *UsersHandler {
	return &UsersHandler{repo: repo}
}

func (h *UsersHandler) ListUsers(ctx *gin.Context) {
	users, err := h.repo.List(ctx.Request.Context())
	if err != nil {
		respondUnexpected(ctx, "users.list", err)
		return
	}

	RespondJSONWithETag(ctx, http.StatusOK, users)
}

// ListAssets is the read-only asset inventory, one row per user.
func (h *UsersHandler) ListAssets(ctx *gin.Context) {
	users, err := h.repo.List(ctx.Request.Context())
	if err != nil {
		respondUnexpected(ctx, "assets.list", err)
		return
	}

	RespondJSONWithETag(ctx, http.StatusOK, user.Inventory(users))
}

func (h *UsersHandler) GetUser(ctx *gin.Context) {
	u, err := h.repo.GetByEmail(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			RespondNotFound(ctx, msgUserNotFound)
			return
		}
		respondUnexpected(ctx, "users.get", err)
		return
	}

	RespondMessage(ctx, http.StatusOK, "User retrieved successfully", gin.H{"user": u})
}

// CreateUser checks for a duplicate email before checking required fields.
// The insert itself re-checks under the store lock, so a racing duplicate
// still ends in 409.
func (h *UsersHandler) CreateUser(ctx *gin.Context) {
	req, ok := decodeBody(ctx, user.DecodeCreate)
	if !ok {
		return
	}

	rctx := ctx.Request.Context()

	if req.Email != nil {
		_, err := h.repo.GetByEmail(rctx, *req.Email)
		switch {
		case err == nil:
			RespondConflict(ctx, "email_taken", "User with this email already exists")
			return
		case !errors.Is(err, user.ErrNotFound):
			respondUnexpected(ctx, "users.create", err)
			return
		}
	}

	if err := req.Validate(); err != nil {
		var verr *user.ValidationError
		if errors.As(err, &verr) {
			RespondBadRequest(ctx, "Missing required user fields", parseBindError(err, &req))
			return
		}
		respondUnexpected(ctx, "users.create", err)
		return
	}

	created, err := h.repo.Create(rctx, user.NewFromCreateRequest(req))
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			RespondConflict(ctx, "email_taken", "User with this email already exists")
			return
		}
		respondUnexpected(ctx, "users.create", err)
		return
	}

	RespondMessage(ctx, http.StatusCreated, "User added successfully", gin.H{"user": created})
}

func (h *UsersHandler) UpdateUser(ctx *gin.Context) {
	req, ok := decodeBody(ctx, user.DecodeUpdate)
	if !ok {
		return
	}

	updated, err := h.repo.Update(ctx.Request.Context(), ctx.Param("email"), req)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			RespondNotFound(ctx, msgUserNotFound)
			return
		}
		respondUnexpected(ctx, "users.update", err)
		return
	}

	RespondMessage(ctx, http.StatusOK, "User updated successfully", gin.H{"user": updated})
}

func (h *UsersHandler) DeleteUser(ctx *gin.Context) {
	email := ctx.Param("email")

	err := h.repo.Delete(ctx.Request.Context(), email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			RespondNotFound(ctx, msgUserNotFound)
			return
		}
		respondUnexpected(ctx, "users.delete", err)
		return
	}

	RespondMessage(ctx, http.StatusOK, fmt.Sprintf("User '%s' deleted successfully", email), nil)
}

// ToggleLock flips the lock flag; calling it twice restores the original state.
func (h *UsersHandler) ToggleLock(ctx *gin.Context) {
	email := ctx.Param("email")

	u, err := h.repo.ToggleLock(ctx.Request.Context(), email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			RespondNotFound(ctx, msgUserNotFound)
			return
		}
		respondUnexpected(ctx, "users.toggle_lock", err)
		return
	}

	status := "unlocked"
	if u.Locked {
		status = "locked"
	}

	RespondMessage(ctx, http.StatusOK, fmt.Sprintf("User '%s' %s successfully", email, status), gin.H{"locked": u.Locked})
}
