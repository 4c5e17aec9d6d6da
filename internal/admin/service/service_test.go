package service

import (
	"context"
	"testing"

	usermodel "pixi/internal/auth/model"
	blogmodel "pixi/internal/blog/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	users map[uuid.UUID]*usermodel.User
}

func (f *fakeUserStore) GetAllUsers(_ context.Context) ([]*usermodel.User, error) {
	users := make([]*usermodel.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, user)
	}
	return users, nil
}

func (f *fakeUserStore) DeleteUser(_ context.Context, userID uuid.UUID) error {
	delete(f.users, userID)
	return nil
}

func (f *fakeUserStore) DeleteNonAdminUsers(_ context.Context) (int64, error) {
	var deleted int64
	for id, user := range f.users {
		if user.Role != usermodel.RoleAdmin {
			delete(f.users, id)
			deleted++
		}
	}
	return deleted, nil
}

func (f *fakeUserStore) CountUsers(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

type fakeBlogStore struct {
	blogs map[uuid.UUID]*blogmodel.Blog
}

func (f *fakeBlogStore) GetAllBlogs(_ context.Context) ([]*blogmodel.Blog, error) {
	blogs := make([]*blogmodel.Blog, 0, len(f.blogs))
	for _, blog := range f.blogs {
		blogs = append(blogs, blog)
	}
	return blogs, nil
}

func (f *fakeBlogStore) DeleteBlog(_ context.Context, blogID uuid.UUID) error {
	delete(f.blogs, blogID)
	return nil
}

func (f *fakeBlogStore) DeleteAllBlogs(_ context.Context) error {
	f.blogs = make(map[uuid.UUID]*blogmodel.Blog)
	return nil
}

func (f *fakeBlogStore) CountBlogs(_ context.Context) (int64, error) {
	return int64(len(f.blogs)), nil
}

func (f *fakeBlogStore) SumViews(_ context.Context) (int64, error) {
	var total int64
	for _, blog := range f.blogs {
		total += blog.Views
	}
	return total, nil
}

func newTestService() (*AdminService, *fakeUserStore, *fakeBlogStore) {
	users := &fakeUserStore{users: make(map[uuid.UUID]*usermodel.User)}
	blogs := &fakeBlogStore{blogs: make(map[uuid.UUID]*blogmodel.Blog)}
	return NewService(users, blogs), users, blogs
}

func TestGetDashboardStats(t *testing.T) {
	svc, users, blogs := newTestService()

	for i := 0; i < 3; i++ {
		id := uuid.New()
		users.users[id] = &usermodel.User{ID: id, Role: usermodel.RoleUser}
	}
	first := uuid.New()
	second := uuid.New()
	blogs.blogs[first] = &blogmodel.Blog{ID: first, Views: 10}
	blogs.blogs[second] = &blogmodel.Blog{ID: second, Views: 5}

	stats, err := svc.GetDashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalUsers)
	assert.Equal(t, int64(2), stats.TotalBlogs)
	assert.Equal(t, int64(15), stats.TotalViews)
}

func TestDeleteAllUsers_KeepsAdmins(t *testing.T) {
	svc, users, _ := newTestService()

	adminID := uuid.New()
	users.users[adminID] = &usermodel.User{ID: adminID, Role: usermodel.RoleAdmin}
	for i := 0; i < 2; i++ {
		id := uuid.New()
		users.users[id] = &usermodel.User{ID: id, Role: usermodel.RoleUser}
	}

	deleted, err := svc.DeleteAllUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	remaining, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, adminID, remaining[0].ID)
}

func TestListUsers_Sanitized(t *testing.T) {
	svc, users, _ := newTestService()

	id := uuid.New()
	code := "123456"
	users.users[id] = &usermodel.User{
		ID:               id,
		Name:             "alice",
		Email:            "alice@x.com",
		PasswordHashed:   "bcrypt-hash",
		VerificationCode: &code,
	}

	listed, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "alice@x.com", listed[0].Email)
}

func TestDeleteAllBlogs(t *testing.T) {
	svc, _, blogs := newTestService()

	id := uuid.New()
	blogs.blogs[id] = &blogmodel.Blog{ID: id}

	require.NoError(t, svc.DeleteAllBlogs(context.Background()))

	listed, err := svc.ListBlogs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, listed)
}
