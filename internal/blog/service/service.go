package service

import (
	"context"

	usermodel "pixi/internal/auth/model"
	"pixi/internal/blog/model"
	appErrors "pixi/pkg/errors"
	"pixi/pkg/utils"

	"github.com/google/uuid"
)

// BlogStore is the persistence surface the blog service relies on.
// Satisfied by *repository.BlogRepository.
type BlogStore interface {
	CreateBlog(ctx context.Context, blog *model.Blog) error
	GetBlogByID(ctx context.Context, blogID uuid.UUID) (*model.Blog, error)
	GetAllBlogs(ctx context.Context) ([]*model.Blog, error)
	SaveBlog(ctx context.Context, blog *model.Blog) error
	DeleteBlog(ctx context.Context, blogID uuid.UUID) error

	HasLiked(ctx context.Context, blogID, userID uuid.UUID) (bool, error)
	AddLike(ctx context.Context, blog *model.Blog, user *usermodel.User) error
	RemoveLike(ctx context.Context, blog *model.Blog, user *usermodel.User) error
	RecordView(ctx context.Context, blog *model.Blog, user *usermodel.User) (bool, error)
	GetViewers(ctx context.Context, blogID uuid.UUID) ([]*usermodel.User, error)

	AddComment(ctx context.Context, comment *model.Comment) error
	GetComment(ctx context.Context, commentID uuid.UUID) (*model.Comment, error)
	GetCommentsByBlog(ctx context.Context, blogID uuid.UUID) ([]model.Comment, error)
	SaveComment(ctx context.Context, comment *model.Comment) error
	DeleteComment(ctx context.Context, commentID uuid.UUID) error
}

type BlogService struct {
	repo BlogStore
}

func NewService(repo BlogStore) *BlogService {
	return &BlogService{repo: repo}
}

func (s *BlogService) Create(ctx context.Context, authorID uuid.UUID, request *model.CreateBlogRequest) (*model.BlogResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Title and content are required", err)
	}

	publish := true
	if request.Publish != nil {
		publish = *request.Publish
	}

	category := request.Category
	if category == "" {
		category = "General"
	}

	blog := &model.Blog{
		Title:       request.Title,
		Content:     request.Content,
		Image:       request.ImageURL,
		Category:    category,
		Tags:        request.Tags,
		AuthorID:    authorID,
		IsPublished: publish,
	}

	if err := s.repo.CreateBlog(ctx, blog); err != nil {
		return nil, err
	}

	created, err := s.repo.GetBlogByID(ctx, blog.ID)
	if err != nil {
		return nil, err
	}

	return created.ToResponse(), nil
}

func (s *BlogService) List(ctx context.Context) ([]*model.BlogResponse, error) {
	blogs, err := s.repo.GetAllBlogs(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*model.BlogResponse, 0, len(blogs))
	for _, blog := range blogs {
		responses = append(responses, blog.ToResponse())
	}
	return responses, nil
}

func (s *BlogService) Get(ctx context.Context, blogID uuid.UUID) (*model.BlogResponse, error) {
	blog, err := s.repo.GetBlogByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	return blog.ToResponse(), nil
}

func (s *BlogService) Update(ctx context.Context, userID, blogID uuid.UUID, request *model.UpdateBlogRequest) (*model.BlogResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	blog, err := s.repo.GetBlogByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	if blog.AuthorID != userID {
		return nil, appErrors.ErrNotAuthorized
	}

	if request.Title != nil {
		blog.Title = *request.Title
	}
	if request.Content != nil {
		blog.Content = *request.Content
	}
	if request.Category != nil {
		blog.Category = *request.Category
	}
	if request.Tags != nil {
		blog.Tags = request.Tags
	}
	if request.Publish != nil {
		blog.IsPublished = *request.Publish
	}
	if request.ImageURL != nil {
		blog.Image = *request.ImageURL
	}

	if err := s.repo.SaveBlog(ctx, blog); err != nil {
		return nil, err
	}

	return blog.ToResponse(), nil
}

func (s *BlogService) Delete(ctx context.Context, userID, blogID uuid.UUID) error {
	blog, err := s.repo.GetBlogByID(ctx, blogID)
	if err != nil {
		return err
	}

	if blog.AuthorID != userID {
		return appErrors.ErrNotAuthorized
	}

	return s.repo.DeleteBlog(ctx, blogID)
}

// ToggleLike likes the blog when the user has not liked it yet and unlikes
// it otherwise.
func (s *BlogService) ToggleLike(ctx context.Context, userID, blogID uuid.UUID) (*model.LikeResponse, error) {
	blog, err := s.repo.GetBlogByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	liked, err := s.repo.HasLiked(ctx, blogID, userID)
	if err != nil {
		return nil, err
	}

	user := &usermodel.User{ID: userID}
	message := "Blog liked!"
	if liked {
		if err := s.repo.RemoveLike(ctx, blog, user); err != nil {
			return nil, err
		}
		message = "Blog unliked!"
	} else {
		if err := s.repo.AddLike(ctx, blog, user); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.GetBlogByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	likes := make([]uuid.UUID, 0, len(updated.Likes))
	for _, u := range updated.Likes {
		likes = append(likes, u.ID)
	}

	return &model.LikeResponse{
		Message:    message,
		Likes:      likes,
		LikesCount: len(likes),
	}, nil
}

// CountView registers a view for the user; repeat views by the same user do
// not increment the counter.
func (s *BlogService) CountView(ctx context.Context, userID, blogID uuid.UUID) (int64, error) {
	blog, err := s.repo.GetBlogByID(ctx, blogID)
	if err != nil {
		return 0, err
	}

	counted, err := s.repo.RecordView(ctx, blog, &usermodel.User{ID: userID})
	if err != nil {
		return 0, err
	}

	views := blog.Views
	if counted {
		views++
	}
	return views, nil
}

func (s *BlogService) GetViewers(ctx context.Context, blogID uuid.UUID) ([]*usermodel.UserResponse, error) {
	if _, err := s.repo.GetBlogByID(ctx, blogID); err != nil {
		return nil, err
	}

	viewers, err := s.repo.GetViewers(ctx, blogID)
	if err != nil {
		return nil, err
	}

	responses := make([]*usermodel.UserResponse, 0, len(viewers))
	for _, viewer := range viewers {
		responses = append(responses, viewer.ToResponse())
	}
	return responses, nil
}

func (s *BlogService) GetComments(ctx context.Context, blogID uuid.UUID) ([]model.CommentResponse, error) {
	if _, err := s.repo.GetBlogByID(ctx, blogID); err != nil {
		return nil, err
	}

	comments, err := s.repo.GetCommentsByBlog(ctx, blogID)
	if err != nil {
		return nil, err
	}

	responses := make([]model.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, comments[i].ToResponse())
	}
	return responses, nil
}

func (s *BlogService) AddComment(ctx context.Context, userID, blogID uuid.UUID, request *model.CommentRequest) ([]model.CommentResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Comment text is required", err)
	}

	if _, err := s.repo.GetBlogByID(ctx, blogID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		BlogID: blogID,
		UserID: userID,
		Text:   request.Text,
	}

	if err := s.repo.AddComment(ctx, comment); err != nil {
		return nil, err
	}

	return s.GetComments(ctx, blogID)
}

func (s *BlogService) UpdateComment(ctx context.Context, userID, blogID, commentID uuid.UUID, request *model.CommentRequest) (*model.CommentResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Updated comment text is required", err)
	}

	if _, err := s.repo.GetBlogByID(ctx, blogID); err != nil {
		return nil, err
	}

	comment, err := s.repo.GetComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.BlogID != blogID {
		return nil, appErrors.ErrCommentNotFound
	}

	if comment.UserID != userID {
		return nil, appErrors.ErrNotAuthorized
	}

	comment.Text = request.Text
	if err := s.repo.SaveComment(ctx, comment); err != nil {
		return nil, err
	}

	response := comment.ToResponse()
	return &response, nil
}

// DeleteComment allows the comment author or the blog author to remove a
// comment.
func (s *BlogService) DeleteComment(ctx context.Context, userID, blogID, commentID uuid.UUID) error {
	blog, err := s.repo.GetBlogByID(ctx, blogID)
	if err != nil {
		return err
	}

	comment, err := s.repo.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.BlogID != blogID {
		return appErrors.ErrCommentNotFound
	}

	if comment.UserID != userID && blog.AuthorID != userID {
		return appErrors.ErrNotAuthorized
	}

	return s.repo.DeleteComment(ctx, commentID)
}
