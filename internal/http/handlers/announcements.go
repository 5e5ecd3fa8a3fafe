package handlers

import (
	"context"
	"net/http"

	"github.com/geocoder89/staffportal/internal/domain/announcement"
	"github.com/gin-gonic/gin"
)

type AnnouncementsStore interface {
	Append(ctx context.Context, a announcement.Announcement) error
	List(ctx context.Context) ([]announcement.Announcement, error)
}

type AnnouncementsHandler struct {
	repo AnnouncementsStore
}

func NewAnnouncementsHandler(repo AnnouncementsStore) *AnnouncementsHandler {
	return &AnnouncementsHandler{repo: repo}
}

// Publish appends the message as sent. A missing message is stored as absent.
func (h *AnnouncementsHandler) Publish(ctx *gin.Context) {
	req, ok := decodeBody(ctx, announcement.DecodePublish)
	if !ok {
		return
	}

	if err := h.repo.Append(ctx.Request.Context(), announcement.FromRequest(req)); err != nil {
		respondUnexpected(ctx, "announcements.publish", err)
		return
	}

	RespondMessage(ctx, http.StatusOK, "Announcement published successfully", nil)
}

func (h *AnnouncementsHandler) List(ctx *gin.Context) {
	items, err := h.repo.List(ctx.Request.Context())
	if err != nil {
		respondUnexpected(ctx, "announcements.list", err)
		return
	}

	RespondJSONWithETag(ctx, http.StatusOK, items)
}
