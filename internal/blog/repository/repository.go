package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	usermodel "pixi/internal/auth/model"
	"pixi/internal/blog/model"
	"pixi/internal/database"
	appErrors "pixi/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BlogRepository struct {
	db *database.Database
}

func NewRepository(db *database.Database) *BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) CreateBlog(ctx context.Context, blog *model.Blog) error {
	blog.ID = uuid.New()
	blog.CreatedAt = time.Now()
	blog.UpdatedAt = time.Now()

	if err := r.db.DB.WithContext(ctx).Omit(clause.Associations).Create(blog).Error; err != nil {
		return fmt.Errorf("failed to create blog: %w", err)
	}
	return nil
}

func (r *BlogRepository) GetBlogByID(ctx context.Context, blogID uuid.UUID) (*model.Blog, error) {
	var blog model.Blog
	err := r.db.DB.WithContext(ctx).
		Preload("Author").
		Preload("Likes").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.User").
		First(&blog, "id = ?", blogID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrBlogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}
	return &blog, nil
}

func (r *BlogRepository) GetAllBlogs(ctx context.Context) ([]*model.Blog, error) {
	var blogs []*model.Blog
	err := r.db.DB.WithContext(ctx).
		Preload("Author").
		Preload("Likes").
		Order("created_at DESC").
		Find(&blogs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	return blogs, nil
}

func (r *BlogRepository) SaveBlog(ctx context.Context, blog *model.Blog) error {
	blog.UpdatedAt = time.Now()

	err := r.db.DB.WithContext(ctx).Omit(clause.Associations).Save(blog).Error
	if err != nil {
		return fmt.Errorf("failed to save blog: %w", err)
	}
	return nil
}

func (r *BlogRepository) DeleteBlog(ctx context.Context, blogID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Delete(&model.Blog{}, "id = ?", blogID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete blog: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrBlogNotFound
	}
	return nil
}

func (r *BlogRepository) DeleteAllBlogs(ctx context.Context) error {
	if err := r.db.DB.WithContext(ctx).Where("1 = 1").Delete(&model.Blog{}).Error; err != nil {
		return fmt.Errorf("failed to delete blogs: %w", err)
	}
	return nil
}

func (r *BlogRepository) HasLiked(ctx context.Context, blogID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).Table("blog_likes").
		Where("blog_id = ? AND user_id = ?", blogID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return count > 0, nil
}

func (r *BlogRepository) AddLike(ctx context.Context, blog *model.Blog, user *usermodel.User) error {
	err := r.db.DB.WithContext(ctx).Model(blog).Association("Likes").Append(user)
	if err != nil {
		return fmt.Errorf("failed to like blog: %w", err)
	}
	return nil
}

func (r *BlogRepository) RemoveLike(ctx context.Context, blog *model.Blog, user *usermodel.User) error {
	err := r.db.DB.WithContext(ctx).Model(blog).Association("Likes").Delete(user)
	if err != nil {
		return fmt.Errorf("failed to unlike blog: %w", err)
	}
	return nil
}

// RecordView counts each viewer once and bumps the view counter on the
// first sighting.
func (r *BlogRepository) RecordView(ctx context.Context, blog *model.Blog, user *usermodel.User) (bool, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).Table("blog_views").
		Where("blog_id = ? AND user_id = ?", blog.ID, user.ID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check view: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	err = r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(blog).Association("Viewers").Append(user); err != nil {
			return err
		}
		return tx.Model(&model.Blog{}).
			Where("id = ?", blog.ID).
			UpdateColumn("views", gorm.Expr("views + 1")).Error
	})
	if err != nil {
		return false, fmt.Errorf("failed to record view: %w", err)
	}
	return true, nil
}

func (r *BlogRepository) GetViewers(ctx context.Context, blogID uuid.UUID) ([]*usermodel.User, error) {
	blog := model.Blog{ID: blogID}
	var viewers []*usermodel.User
	err := r.db.DB.WithContext(ctx).Model(&blog).Association("Viewers").Find(&viewers)
	if err != nil {
		return nil, fmt.Errorf("failed to list viewers: %w", err)
	}
	return viewers, nil
}

func (r *BlogRepository) AddComment(ctx context.Context, comment *model.Comment) error {
	comment.ID = uuid.New()
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = time.Now()

	if err := r.db.DB.WithContext(ctx).Omit(clause.Associations).Create(comment).Error; err != nil {
		return fmt.Errorf("failed to add comment: %w", err)
	}
	return nil
}

func (r *BlogRepository) GetComment(ctx context.Context, commentID uuid.UUID) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.DB.WithContext(ctx).First(&comment, "id = ?", commentID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return &comment, nil
}

func (r *BlogRepository) GetCommentsByBlog(ctx context.Context, blogID uuid.UUID) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.DB.WithContext(ctx).
		Preload("User").
		Where("blog_id = ?", blogID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

func (r *BlogRepository) SaveComment(ctx context.Context, comment *model.Comment) error {
	comment.UpdatedAt = time.Now()

	err := r.db.DB.WithContext(ctx).Omit(clause.Associations).Save(comment).Error
	if err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}
	return nil
}

func (r *BlogRepository) DeleteComment(ctx context.Context, commentID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Delete(&model.Comment{}, "id = ?", commentID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrCommentNotFound
	}
	return nil
}

func (r *BlogRepository) IsSavedByUser(ctx context.Context, blogID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).Table("user_saved_blogs").
		Where("blog_id = ? AND user_id = ?", blogID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check saved blog: %w", err)
	}
	return count > 0, nil
}

func (r *BlogRepository) SaveForUser(ctx context.Context, blog *model.Blog, user *usermodel.User) error {
	err := r.db.DB.WithContext(ctx).Model(blog).Association("SavedBy").Append(user)
	if err != nil {
		return fmt.Errorf("failed to save blog for user: %w", err)
	}
	return nil
}

func (r *BlogRepository) UnsaveForUser(ctx context.Context, blog *model.Blog, user *usermodel.User) error {
	err := r.db.DB.WithContext(ctx).Model(blog).Association("SavedBy").Delete(user)
	if err != nil {
		return fmt.Errorf("failed to unsave blog for user: %w", err)
	}
	return nil
}

func (r *BlogRepository) GetSavedByUser(ctx context.Context, userID uuid.UUID) ([]*model.Blog, error) {
	var blogs []*model.Blog
	err := r.db.DB.WithContext(ctx).
		Joins("JOIN user_saved_blogs usb ON usb.blog_id = blogs.id").
		Where("usb.user_id = ?", userID).
		Preload("Author").
		Order("blogs.created_at DESC").
		Find(&blogs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list saved blogs: %w", err)
	}
	return blogs, nil
}

func (r *BlogRepository) CountBlogs(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.DB.WithContext(ctx).Model(&model.Blog{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count blogs: %w", err)
	}
	return count, nil
}

func (r *BlogRepository) SumViews(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.DB.WithContext(ctx).Model(&model.Blog{}).
		Select("COALESCE(SUM(views), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum views: %w", err)
	}
	return total, nil
}
