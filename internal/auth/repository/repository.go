package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pixi/internal/auth/model"
	"pixi/internal/database"
	appErrors "pixi/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository is the persistence collaborator for user records.
type UserRepository struct {
	db *database.Database
}

func NewRepository(db *database.Database) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) error {
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	user.LastActive = time.Now()

	if err := r.db.DB.WithContext(ctx).Create(user).Error; err != nil {
		errStr := strings.ToLower(err.Error())
		if strings.Contains(errStr, "duplicate key") && strings.Contains(errStr, "email") {
			return appErrors.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	var user model.User
	err := r.db.DB.WithContext(ctx).First(&user, "id = ?", userID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetUserByValidResetToken resolves a reset token that has not yet expired.
// An unknown and an expired token are indistinguishable to the caller.
func (r *UserRepository) GetUserByValidResetToken(ctx context.Context, token string, now time.Time) (*model.User, error) {
	var user model.User
	err := r.db.DB.WithContext(ctx).
		Where("reset_password_token = ? AND reset_password_expires > ?", token, now).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrInvalidResetToken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by reset token: %w", err)
	}
	return &user, nil
}

// SaveUser writes the full record back, leaving associations untouched.
func (r *UserRepository) SaveUser(ctx context.Context, user *model.User) error {
	user.UpdatedAt = time.Now()

	err := r.db.DB.WithContext(ctx).
		Omit(clause.Associations).
		Save(user).Error
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// TouchLastActive refreshes the advisory last_active timestamp.
func (r *UserRepository) TouchLastActive(ctx context.Context, userID uuid.UUID) error {
	return r.db.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_active", time.Now()).Error
}

func (r *UserRepository) GetUserWithRelations(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	var user model.User
	err := r.db.DB.WithContext(ctx).
		Preload("Followers").
		Preload("Following").
		First(&user, "id = ?", userID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).Table("user_follows").
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check follow state: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) AddFollow(ctx context.Context, follower, following *model.User) error {
	err := r.db.DB.WithContext(ctx).Model(follower).
		Association("Following").Append(following)
	if err != nil {
		return fmt.Errorf("failed to follow user: %w", err)
	}
	return nil
}

func (r *UserRepository) RemoveFollow(ctx context.Context, follower, following *model.User) error {
	err := r.db.DB.WithContext(ctx).Model(follower).
		Association("Following").Delete(following)
	if err != nil {
		return fmt.Errorf("failed to unfollow user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetAllUsers(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	if err := r.db.DB.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Delete(&model.User{}, "id = ?", userID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrUserNotFound
	}
	return nil
}

// DeleteNonAdminUsers removes every account except admins and reports how
// many rows were deleted.
func (r *UserRepository) DeleteNonAdminUsers(ctx context.Context) (int64, error) {
	result := r.db.DB.WithContext(ctx).Where("role <> ?", model.RoleAdmin).Delete(&model.User{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete users: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *UserRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.DB.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
