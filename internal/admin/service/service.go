package service

import (
	"context"

	usermodel "pixi/internal/auth/model"
	blogmodel "pixi/internal/blog/model"

	"github.com/google/uuid"
)

// UserStore is the moderation surface over user records.
type UserStore interface {
	GetAllUsers(ctx context.Context) ([]*usermodel.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	DeleteNonAdminUsers(ctx context.Context) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
}

// BlogStore is the moderation surface over blogs.
type BlogStore interface {
	GetAllBlogs(ctx context.Context) ([]*blogmodel.Blog, error)
	DeleteBlog(ctx context.Context, blogID uuid.UUID) error
	DeleteAllBlogs(ctx context.Context) error
	CountBlogs(ctx context.Context) (int64, error)
	SumViews(ctx context.Context) (int64, error)
}

type DashboardStats struct {
	TotalUsers int64 `json:"total_users"`
	TotalBlogs int64 `json:"total_blogs"`
	TotalViews int64 `json:"total_views"`
}

type AdminService struct {
	users UserStore
	blogs BlogStore
}

func NewService(users UserStore, blogs BlogStore) *AdminService {
	return &AdminService{users: users, blogs: blogs}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]*usermodel.UserResponse, error) {
	users, err := s.users.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*usermodel.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, user.ToResponse())
	}
	return responses, nil
}

func (s *AdminService) ListBlogs(ctx context.Context) ([]*blogmodel.BlogResponse, error) {
	blogs, err := s.blogs.GetAllBlogs(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*blogmodel.BlogResponse, 0, len(blogs))
	for _, blog := range blogs {
		responses = append(responses, blog.ToResponse())
	}
	return responses, nil
}

func (s *AdminService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return s.users.DeleteUser(ctx, userID)
}

func (s *AdminService) DeleteBlog(ctx context.Context, blogID uuid.UUID) error {
	return s.blogs.DeleteBlog(ctx, blogID)
}

// DeleteAllUsers removes every non-admin account and reports the count.
func (s *AdminService) DeleteAllUsers(ctx context.Context) (int64, error) {
	return s.users.DeleteNonAdminUsers(ctx)
}

func (s *AdminService) DeleteAllBlogs(ctx context.Context) error {
	return s.blogs.DeleteAllBlogs(ctx)
}

func (s *AdminService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	totalUsers, err := s.users.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	totalBlogs, err := s.blogs.CountBlogs(ctx)
	if err != nil {
		return nil, err
	}

	totalViews, err := s.blogs.SumViews(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalUsers: totalUsers,
		TotalBlogs: totalBlogs,
		TotalViews: totalViews,
	}, nil
}
