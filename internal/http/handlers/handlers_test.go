package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/geocoder89/staffportal/internal/domain/announcement"
	"github.com/geocoder89/staffportal/internal/domain/user"
	"github.com/gin-gonic/gin"
)

// Make sure Gin does not spam the console during the test

func init() {
	gin.SetMode(gin.TestMode)
}

// Fake repository implementations of the handler store interfaces

type fakeUsersRepo struct {
	createFn func(ctx context.Context, u user.User) (user.User, error)
	getFn    func(ctx context.Context, email string) (user.User, error)
	listFn   func(ctx context.Context) ([]user.User, error)
	updateFn func(ctx context.Context, email string, req user.UpdateUserRequest) (user.User, error)
	deleteFn func(ctx context.Context, email string) error
	toggleFn func(ctx context.Context, email string) (user.User, error)
}

func (f *fakeUsersRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}

	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	if f.getFn != nil {
		return f.getFn(ctx, email)
	}

	return user.User{}, user.ErrNotFound
}

func (f *fakeUsersRepo) List(ctx context.Context) ([]user.User, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}

	return []user.User{}, nil
}

func (f *fakeUsersRepo) Update(ctx context.Context, email string, req user.UpdateUserRequest) (user.User, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, email, req)
	}

	return user.User{}, nil
}

func (f *fakeUsersRepo) Delete(ctx context.Context, email string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, email)
	}

	return nil
}

func (f *fakeUsersRepo) ToggleLock(ctx context.Context, email string) (user.User, error) {
	if f.toggleFn != nil {
		return f.toggleFn(ctx, email)
	}

	return user.User{}, nil
}

type fakeAnnouncementsRepo struct {
	appendFn func(ctx context.Context, a announcement.Announcement) error
	listFn   func(ctx context.Context) ([]announcement.Announcement, error)
}

func (f *fakeAnnouncementsRepo) Append(ctx context.Context, a announcement.Announcement) error {
	if f.appendFn != nil {
		return f.appendFn(ctx, a)
	}

	return nil
}

func (f *fakeAnnouncementsRepo) List(ctx context.Context) ([]announcement.Announcement, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}

	return []announcement.Announcement{}, nil
}

// small helper function which returns the gin engine to mount one handler per test

func setupRouter(method, path string, h gin.HandlerFunc) *gin.Engine {
	r := gin.New()

	r.Handle(method, path, h)

	return r
}

func doJSON(r http.Handler, method, url, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

type messageResponse struct {
	Message string          `json:"message"`
	Code    string          `json:"code"`
	User    *user.User      `json:"user"`
	Locked  *bool           `json:"locked"`
	Details json.RawMessage `json:"details"`
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) messageResponse {
	t.Helper()

	var resp messageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v body=%s", err, w.Body.String())
	}

	return resp
}

func seededUser(email string) user.User {
	return user.User{
		FirstName: "Jane",
		LastName:  "Smith",
		Email:     email,
		Password:  "password123",
		Role:      user.RoleEmployee,
		Details:   user.Details{Designation: "Engineer"},
	}
}
