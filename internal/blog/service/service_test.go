package service

import (
	"context"
	"testing"
	"time"

	usermodel "pixi/internal/auth/model"
	"pixi/internal/blog/model"
	appErrors "pixi/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBlogStore struct {
	blogs    map[uuid.UUID]*model.Blog
	likes    map[uuid.UUID]map[uuid.UUID]bool
	viewers  map[uuid.UUID]map[uuid.UUID]bool
	comments map[uuid.UUID]*model.Comment
}

func newFakeBlogStore() *fakeBlogStore {
	return &fakeBlogStore{
		blogs:    make(map[uuid.UUID]*model.Blog),
		likes:    make(map[uuid.UUID]map[uuid.UUID]bool),
		viewers:  make(map[uuid.UUID]map[uuid.UUID]bool),
		comments: make(map[uuid.UUID]*model.Comment),
	}
}

func (f *fakeBlogStore) CreateBlog(_ context.Context, blog *model.Blog) error {
	blog.ID = uuid.New()
	blog.CreatedAt = time.Now()
	clone := *blog
	f.blogs[blog.ID] = &clone
	return nil
}

func (f *fakeBlogStore) GetBlogByID(_ context.Context, blogID uuid.UUID) (*model.Blog, error) {
	blog, ok := f.blogs[blogID]
	if !ok {
		return nil, appErrors.ErrBlogNotFound
	}
	clone := *blog
	clone.Likes = nil
	for userID := range f.likes[blogID] {
		clone.Likes = append(clone.Likes, &usermodel.User{ID: userID})
	}
	return &clone, nil
}

func (f *fakeBlogStore) GetAllBlogs(_ context.Context) ([]*model.Blog, error) {
	blogs := make([]*model.Blog, 0, len(f.blogs))
	for _, blog := range f.blogs {
		clone := *blog
		blogs = append(blogs, &clone)
	}
	return blogs, nil
}

func (f *fakeBlogStore) SaveBlog(_ context.Context, blog *model.Blog) error {
	if _, ok := f.blogs[blog.ID]; !ok {
		return appErrors.ErrBlogNotFound
	}
	clone := *blog
	f.blogs[blog.ID] = &clone
	return nil
}

func (f *fakeBlogStore) DeleteBlog(_ context.Context, blogID uuid.UUID) error {
	delete(f.blogs, blogID)
	return nil
}

func (f *fakeBlogStore) HasLiked(_ context.Context, blogID, userID uuid.UUID) (bool, error) {
	return f.likes[blogID][userID], nil
}

func (f *fakeBlogStore) AddLike(_ context.Context, blog *model.Blog, user *usermodel.User) error {
	if f.likes[blog.ID] == nil {
		f.likes[blog.ID] = make(map[uuid.UUID]bool)
	}
	f.likes[blog.ID][user.ID] = true
	return nil
}

func (f *fakeBlogStore) RemoveLike(_ context.Context, blog *model.Blog, user *usermodel.User) error {
	delete(f.likes[blog.ID], user.ID)
	return nil
}

func (f *fakeBlogStore) RecordView(_ context.Context, blog *model.Blog, user *usermodel.User) (bool, error) {
	if f.viewers[blog.ID] == nil {
		f.viewers[blog.ID] = make(map[uuid.UUID]bool)
	}
	if f.viewers[blog.ID][user.ID] {
		return false, nil
	}
	f.viewers[blog.ID][user.ID] = true
	f.blogs[blog.ID].Views++
	return true, nil
}

func (f *fakeBlogStore) GetViewers(_ context.Context, blogID uuid.UUID) ([]*usermodel.User, error) {
	viewers := make([]*usermodel.User, 0)
	for userID := range f.viewers[blogID] {
		viewers = append(viewers, &usermodel.User{ID: userID})
	}
	return viewers, nil
}

func (f *fakeBlogStore) AddComment(_ context.Context, comment *model.Comment) error {
	comment.ID = uuid.New()
	comment.CreatedAt = time.Now()
	clone := *comment
	f.comments[comment.ID] = &clone
	return nil
}

func (f *fakeBlogStore) GetComment(_ context.Context, commentID uuid.UUID) (*model.Comment, error) {
	comment, ok := f.comments[commentID]
	if !ok {
		return nil, appErrors.ErrCommentNotFound
	}
	clone := *comment
	return &clone, nil
}

func (f *fakeBlogStore) GetCommentsByBlog(_ context.Context, blogID uuid.UUID) ([]model.Comment, error) {
	comments := make([]model.Comment, 0)
	for _, comment := range f.comments {
		if comment.BlogID == blogID {
			comments = append(comments, *comment)
		}
	}
	return comments, nil
}

func (f *fakeBlogStore) SaveComment(_ context.Context, comment *model.Comment) error {
	if _, ok := f.comments[comment.ID]; !ok {
		return appErrors.ErrCommentNotFound
	}
	clone := *comment
	f.comments[comment.ID] = &clone
	return nil
}

func (f *fakeBlogStore) DeleteComment(_ context.Context, commentID uuid.UUID) error {
	delete(f.comments, commentID)
	return nil
}

func newTestService() (*BlogService, *fakeBlogStore) {
	store := newFakeBlogStore()
	return NewService(store), store
}

func createBlog(t *testing.T, svc *BlogService, authorID uuid.UUID) *model.BlogResponse {
	t.Helper()
	blog, err := svc.Create(context.Background(), authorID, &model.CreateBlogRequest{
		Title:   "First Post",
		Content: "Hello world",
	})
	require.NoError(t, err)
	return blog
}

func TestCreate_Defaults(t *testing.T) {
	svc, store := newTestService()
	authorID := uuid.New()

	blog := createBlog(t, svc, authorID)

	assert.Equal(t, "General", blog.Category)
	assert.Equal(t, authorID, store.blogs[blog.ID].AuthorID)
	assert.True(t, store.blogs[blog.ID].IsPublished)
}

func TestCreate_MissingTitle(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), uuid.New(), &model.CreateBlogRequest{Content: "body"})
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestUpdate_OnlyAuthor(t *testing.T) {
	svc, store := newTestService()
	authorID := uuid.New()
	blog := createBlog(t, svc, authorID)

	title := "Renamed"
	_, err := svc.Update(context.Background(), uuid.New(), blog.ID, &model.UpdateBlogRequest{Title: &title})
	require.ErrorIs(t, err, appErrors.ErrNotAuthorized)

	updated, err := svc.Update(context.Background(), authorID, blog.ID, &model.UpdateBlogRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "Renamed", store.blogs[blog.ID].Title)
	assert.Equal(t, "Hello world", store.blogs[blog.ID].Content)
}

func TestDelete_OnlyAuthor(t *testing.T) {
	svc, store := newTestService()
	authorID := uuid.New()
	blog := createBlog(t, svc, authorID)

	err := svc.Delete(context.Background(), uuid.New(), blog.ID)
	require.ErrorIs(t, err, appErrors.ErrNotAuthorized)

	require.NoError(t, svc.Delete(context.Background(), authorID, blog.ID))
	assert.Empty(t, store.blogs)

	err = svc.Delete(context.Background(), authorID, blog.ID)
	require.ErrorIs(t, err, appErrors.ErrBlogNotFound)
}

func TestToggleLike(t *testing.T) {
	svc, _ := newTestService()
	blog := createBlog(t, svc, uuid.New())
	userID := uuid.New()

	resp, err := svc.ToggleLike(context.Background(), userID, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, "Blog liked!", resp.Message)
	assert.Equal(t, 1, resp.LikesCount)
	assert.Contains(t, resp.Likes, userID)

	resp, err = svc.ToggleLike(context.Background(), userID, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, "Blog unliked!", resp.Message)
	assert.Equal(t, 0, resp.LikesCount)
}

func TestCountView_OncePerViewer(t *testing.T) {
	svc, _ := newTestService()
	blog := createBlog(t, svc, uuid.New())
	userID := uuid.New()

	views, err := svc.CountView(context.Background(), userID, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), views)

	views, err = svc.CountView(context.Background(), userID, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), views)

	views, err = svc.CountView(context.Background(), uuid.New(), blog.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), views)
}

func TestComments_Lifecycle(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	authorID := uuid.New()
	commenterID := uuid.New()
	blog := createBlog(t, svc, authorID)

	comments, err := svc.AddComment(ctx, commenterID, blog.ID, &model.CommentRequest{Text: "Nice post"})
	require.NoError(t, err)
	require.Len(t, comments, 1)
	commentID := comments[0].ID

	// Only the comment author may edit.
	_, err = svc.UpdateComment(ctx, authorID, blog.ID, commentID, &model.CommentRequest{Text: "edited"})
	require.ErrorIs(t, err, appErrors.ErrNotAuthorized)

	updated, err := svc.UpdateComment(ctx, commenterID, blog.ID, commentID, &model.CommentRequest{Text: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Text)

	// A stranger may not delete, the blog author may.
	err = svc.DeleteComment(ctx, uuid.New(), blog.ID, commentID)
	require.ErrorIs(t, err, appErrors.ErrNotAuthorized)

	require.NoError(t, svc.DeleteComment(ctx, authorID, blog.ID, commentID))

	comments, err = svc.GetComments(ctx, blog.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestComment_WrongBlog(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	userID := uuid.New()
	first := createBlog(t, svc, userID)
	second := createBlog(t, svc, userID)

	comments, err := svc.AddComment(ctx, userID, first.ID, &model.CommentRequest{Text: "hi"})
	require.NoError(t, err)
	commentID := comments[0].ID

	_, err = svc.UpdateComment(ctx, userID, second.ID, commentID, &model.CommentRequest{Text: "x"})
	require.ErrorIs(t, err, appErrors.ErrCommentNotFound)

	err = svc.DeleteComment(ctx, userID, second.ID, commentID)
	require.ErrorIs(t, err, appErrors.ErrCommentNotFound)
}
