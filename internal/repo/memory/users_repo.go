package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/geocoder89/staffportal/internal/domain/user"
	"github.com/geocoder89/staffportal/internal/observability"
)

// UsersRepo is the users table. Every check-then-write runs under one write
// lock, and callers only ever receive copies of stored records.
type UsersRepo struct {
	mu    sync.RWMutex
	items map[string]user.User
	order []string // insertion order of keys
	prom  *observability.Prom
}

func NewUsersRepo(prom *observability.Prom) *UsersRepo {
	return &UsersRepo{
		items: make(map[string]user.User),
		prom:  prom,
	}
}

func (r *UsersRepo) observe(ctx context.Context, op string, fn func() error) error {
	return observe(ctx, r.prom, op, fn)
}

func (r *UsersRepo) setGauge() {
	if r.prom != nil {
		r.prom.UsersStored.Set(float64(len(r.items)))
	}
}

func (r *UsersRepo) Create(ctx context.Context, u user.User) (created user.User, err error) {
	err = r.observe(ctx, "users.create", func() error {
		r.mu.Lock()
		defer r.mu.Unlock()

		if _, ok := r.items[u.Email]; ok {
			return user.ErrEmailTaken
		}

		r.items[u.Email] = u
		r.order = append(r.order, u.Email)
		r.setGauge()
		created = u
		return nil
	})

	return
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (found user.User, err error) {
	err = r.observe(ctx, "users.get_by_email", func() error {
		r.mu.RLock()
		defer r.mu.RUnlock()

		u, ok := r.items[email]
		if !ok {
			return user.ErrNotFound
		}

		found = u
		return nil
	})

	return
}

func (r *UsersRepo) List(ctx context.Context) (users []user.User, err error) {
	err = r.observe(ctx, "users.list", func() error {
		r.mu.RLock()
		defer r.mu.RUnlock()

		users = make([]user.User, 0, len(r.order))
		for _, email := range r.order {
			users = append(users, r.items[email])
		}
		return nil
	})

	return
}

func (r *UsersRepo) Update(ctx context.Context, email string, req user.UpdateUserRequest) (updated user.User, err error) {
	err = r.observe(ctx, "users.update", func() error {
		r.mu.Lock()
		defer r.mu.Unlock()

		u, ok := r.items[email]
		if !ok {
			return user.ErrNotFound
		}

		u = u.Apply(req)
		r.items[email] = u
		updated = u
		return nil
	})

	return
}

func (r *UsersRepo) Delete(ctx context.Context, email string) error {
	return r.observe(ctx, "users.delete", func() error {
		r.mu.Lock()
		defer r.mu.Unlock()

		if _, ok := r.items[email]; !ok {
			return user.ErrNotFound
		}

		delete(r.items, email)
		if i := slices.Index(r.order, email); i >= 0 {
			r.order = slices.Delete(r.order, i, i+1)
		}
		r.setGauge()
		return nil
	})
}

// ToggleLock flips the locked flag and returns the record in its new state.
func (r *UsersRepo) ToggleLock(ctx context.Context, email string) (toggled user.User, err error) {
	err = r.observe(ctx, "users.toggle_lock", func() error {
		r.mu.Lock()
		defer r.mu.Unlock()

		u, ok := r.items[email]
		if !ok {
			return user.ErrNotFound
		}

		u.Locked = !u.Locked
		r.items[email] = u
		toggled = u
		return nil
	})

	return
}

func (r *UsersRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}
