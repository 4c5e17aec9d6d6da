package service

import (
	"context"
	"testing"

	usermodel "pixi/internal/auth/model"
	blogmodel "pixi/internal/blog/model"
	appErrors "pixi/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	users   map[uuid.UUID]*usermodel.User
	follows map[uuid.UUID]map[uuid.UUID]bool
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:   make(map[uuid.UUID]*usermodel.User),
		follows: make(map[uuid.UUID]map[uuid.UUID]bool),
	}
}

func (f *fakeUserStore) add(name string) *usermodel.User {
	user := &usermodel.User{ID: uuid.New(), Name: name, Email: name + "@x.com"}
	f.users[user.ID] = user
	return user
}

func (f *fakeUserStore) GetUserByID(_ context.Context, userID uuid.UUID) (*usermodel.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, appErrors.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserStore) GetUserWithRelations(_ context.Context, userID uuid.UUID) (*usermodel.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, appErrors.ErrUserNotFound
	}
	clone := *user
	clone.Followers = nil
	clone.Following = nil
	for followerID, targets := range f.follows {
		if targets[userID] {
			clone.Followers = append(clone.Followers, f.users[followerID])
		}
	}
	for targetID := range f.follows[userID] {
		clone.Following = append(clone.Following, f.users[targetID])
	}
	return &clone, nil
}

func (f *fakeUserStore) SaveUser(_ context.Context, user *usermodel.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return appErrors.ErrUserNotFound
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserStore) IsFollowing(_ context.Context, followerID, followingID uuid.UUID) (bool, error) {
	return f.follows[followerID][followingID], nil
}

func (f *fakeUserStore) AddFollow(_ context.Context, follower, following *usermodel.User) error {
	if f.follows[follower.ID] == nil {
		f.follows[follower.ID] = make(map[uuid.UUID]bool)
	}
	f.follows[follower.ID][following.ID] = true
	return nil
}

func (f *fakeUserStore) RemoveFollow(_ context.Context, follower, following *usermodel.User) error {
	delete(f.follows[follower.ID], following.ID)
	return nil
}

type fakeBlogStore struct {
	blogs map[uuid.UUID]*blogmodel.Blog
	saved map[uuid.UUID]map[uuid.UUID]bool
}

func newFakeBlogStore() *fakeBlogStore {
	return &fakeBlogStore{
		blogs: make(map[uuid.UUID]*blogmodel.Blog),
		saved: make(map[uuid.UUID]map[uuid.UUID]bool),
	}
}

func (f *fakeBlogStore) add(title string) *blogmodel.Blog {
	blog := &blogmodel.Blog{ID: uuid.New(), Title: title, Content: "body"}
	f.blogs[blog.ID] = blog
	return blog
}

func (f *fakeBlogStore) GetBlogByID(_ context.Context, blogID uuid.UUID) (*blogmodel.Blog, error) {
	blog, ok := f.blogs[blogID]
	if !ok {
		return nil, appErrors.ErrBlogNotFound
	}
	clone := *blog
	return &clone, nil
}

func (f *fakeBlogStore) IsSavedByUser(_ context.Context, blogID, userID uuid.UUID) (bool, error) {
	return f.saved[userID][blogID], nil
}

func (f *fakeBlogStore) SaveForUser(_ context.Context, blog *blogmodel.Blog, user *usermodel.User) error {
	if f.saved[user.ID] == nil {
		f.saved[user.ID] = make(map[uuid.UUID]bool)
	}
	f.saved[user.ID][blog.ID] = true
	return nil
}

func (f *fakeBlogStore) UnsaveForUser(_ context.Context, blog *blogmodel.Blog, user *usermodel.User) error {
	delete(f.saved[user.ID], blog.ID)
	return nil
}

func (f *fakeBlogStore) GetSavedByUser(_ context.Context, userID uuid.UUID) ([]*blogmodel.Blog, error) {
	blogs := make([]*blogmodel.Blog, 0)
	for blogID := range f.saved[userID] {
		blogs = append(blogs, f.blogs[blogID])
	}
	return blogs, nil
}

func newTestService() (*ProfileService, *fakeUserStore, *fakeBlogStore) {
	users := newFakeUserStore()
	blogs := newFakeBlogStore()
	return NewService(users, blogs), users, blogs
}

func TestFollow(t *testing.T) {
	svc, users, _ := newTestService()
	ctx := context.Background()
	alice := users.add("alice")
	bob := users.add("bob")

	profile, err := svc.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, bob.ID, profile.ID)
	require.Len(t, profile.Followers, 1)
	assert.Equal(t, alice.ID, profile.Followers[0].ID)

	_, err = svc.Follow(ctx, alice.ID, bob.ID)
	require.ErrorIs(t, err, appErrors.ErrAlreadyFollowing)
}

func TestFollow_Self(t *testing.T) {
	svc, users, _ := newTestService()
	alice := users.add("alice")

	_, err := svc.Follow(context.Background(), alice.ID, alice.ID)
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "You cannot follow yourself", appErr.Message)
}

func TestUnfollow(t *testing.T) {
	svc, users, _ := newTestService()
	ctx := context.Background()
	alice := users.add("alice")
	bob := users.add("bob")

	_, err := svc.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	profile, err := svc.Unfollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, profile.Followers)
}

func TestUpdateProfile(t *testing.T) {
	svc, users, _ := newTestService()
	ctx := context.Background()
	alice := users.add("alice")
	alice.ProfilePic = "http://img/old.png"

	name := "Alice B"
	bio := "writes about Go"
	updated, err := svc.UpdateProfile(ctx, alice.ID, &UpdateProfileRequest{Name: &name, Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "Alice B", updated.Name)
	assert.Equal(t, "writes about Go", updated.Bio)
	assert.Equal(t, "http://img/old.png", updated.ProfilePic)

	updated, err = svc.UpdateProfile(ctx, alice.ID, &UpdateProfileRequest{DeletePic: true})
	require.NoError(t, err)
	assert.Empty(t, updated.ProfilePic)
}

func TestToggleSaveBlog(t *testing.T) {
	svc, users, blogs := newTestService()
	ctx := context.Background()
	alice := users.add("alice")
	blog := blogs.add("post")

	resp, err := svc.ToggleSaveBlog(ctx, alice.ID, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, "Blog saved successfully.", resp.Message)
	assert.Contains(t, resp.SavedBlogs, blog.ID)

	resp, err = svc.ToggleSaveBlog(ctx, alice.ID, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, "Blog removed from saved posts.", resp.Message)
	assert.Empty(t, resp.SavedBlogs)
}

func TestToggleSaveBlog_Missing(t *testing.T) {
	svc, users, _ := newTestService()
	alice := users.add("alice")

	_, err := svc.ToggleSaveBlog(context.Background(), alice.ID, uuid.New())
	require.ErrorIs(t, err, appErrors.ErrBlogNotFound)
}

func TestGetMyProfile(t *testing.T) {
	svc, users, blogs := newTestService()
	ctx := context.Background()
	alice := users.add("alice")
	bob := users.add("bob")
	blog := blogs.add("post")

	_, err := svc.Follow(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	_, err = svc.ToggleSaveBlog(ctx, alice.ID, blog.ID)
	require.NoError(t, err)

	profile, err := svc.GetMyProfile(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, profile.ID)
	require.Len(t, profile.Followers, 1)
	assert.Equal(t, bob.ID, profile.Followers[0].ID)
	require.Len(t, profile.SavedBlogs, 1)
	assert.Equal(t, blog.ID, profile.SavedBlogs[0].ID)
}
