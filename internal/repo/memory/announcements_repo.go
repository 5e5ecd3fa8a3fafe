package memory

import (
	"context"
	"sync"

	"github.com/geocoder89/staffportal/internal/domain/announcement"
	"github.com/geocoder89/staffportal/internal/observability"
)

// AnnouncementsRepo is an append-only sequence.
type AnnouncementsRepo struct {
	mu    sync.RWMutex
	items []announcement.Announcement
	prom  *observability.Prom
}

func NewAnnouncementsRepo(prom *observability.Prom) *AnnouncementsRepo {
	return &AnnouncementsRepo{prom: prom}
}

func (r *AnnouncementsRepo) Append(ctx context.Context, a announcement.Announcement) error {
	return observe(ctx, r.prom, "announcements.append", func() error {
		r.mu.Lock()
		defer r.mu.Unlock()

		r.items = append(r.items, a)
		if r.prom != nil {
			r.prom.AnnouncementsStored.Set(float64(len(r.items)))
		}
		return nil
	})
}

func (r *AnnouncementsRepo) List(ctx context.Context) (items []announcement.Announcement, err error) {
	err = observe(ctx, r.prom, "announcements.list", func() error {
		r.mu.RLock()
		defer r.mu.RUnlock()

		items = make([]announcement.Announcement, len(r.items))
		copy(items, r.items)
		return nil
	})

	return
}
