package service

import (
	"context"

	usermodel "pixi/internal/auth/model"
	blogmodel "pixi/internal/blog/model"
	appErrors "pixi/pkg/errors"
	"pixi/pkg/utils"

	"github.com/google/uuid"
)

// UserStore is the slice of the user repository the profile service needs.
type UserStore interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (*usermodel.User, error)
	GetUserWithRelations(ctx context.Context, userID uuid.UUID) (*usermodel.User, error)
	SaveUser(ctx context.Context, user *usermodel.User) error
	IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
	AddFollow(ctx context.Context, follower, following *usermodel.User) error
	RemoveFollow(ctx context.Context, follower, following *usermodel.User) error
}

// BlogStore is the slice of the blog repository backing saved posts.
type BlogStore interface {
	GetBlogByID(ctx context.Context, blogID uuid.UUID) (*blogmodel.Blog, error)
	IsSavedByUser(ctx context.Context, blogID, userID uuid.UUID) (bool, error)
	SaveForUser(ctx context.Context, blog *blogmodel.Blog, user *usermodel.User) error
	UnsaveForUser(ctx context.Context, blog *blogmodel.Blog, user *usermodel.User) error
	GetSavedByUser(ctx context.Context, userID uuid.UUID) ([]*blogmodel.Blog, error)
}

type FollowSummary struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	ProfilePic string    `json:"profile_pic"`
}

type ProfileResponse struct {
	*usermodel.UserResponse
	Followers  []FollowSummary           `json:"followers"`
	Following  []FollowSummary           `json:"following"`
	SavedBlogs []*blogmodel.BlogResponse `json:"saved_blogs"`
}

type PublicProfileResponse struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	ProfilePic string          `json:"profile_pic"`
	Bio        string          `json:"bio"`
	Followers  []FollowSummary `json:"followers"`
	Following  []FollowSummary `json:"following"`
}

type UpdateProfileRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=2,max=100"`
	Bio       *string `json:"bio" validate:"omitempty,max=100"`
	DeletePic bool    `json:"delete_pic"`
	PicURL    *string `json:"-"`
}

type SaveBlogResponse struct {
	Message    string      `json:"message"`
	SavedBlogs []uuid.UUID `json:"saved_blogs"`
}

type ProfileService struct {
	users UserStore
	blogs BlogStore
}

func NewService(users UserStore, blogs BlogStore) *ProfileService {
	return &ProfileService{users: users, blogs: blogs}
}

func summaries(users []*usermodel.User) []FollowSummary {
	result := make([]FollowSummary, 0, len(users))
	for _, u := range users {
		result = append(result, FollowSummary{
			ID:         u.ID,
			Name:       u.Name,
			ProfilePic: u.ProfilePic,
		})
	}
	return result
}

func (s *ProfileService) GetMyProfile(ctx context.Context, userID uuid.UUID) (*ProfileResponse, error) {
	user, err := s.users.GetUserWithRelations(ctx, userID)
	if err != nil {
		return nil, err
	}

	saved, err := s.blogs.GetSavedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	savedResponses := make([]*blogmodel.BlogResponse, 0, len(saved))
	for _, blog := range saved {
		savedResponses = append(savedResponses, blog.ToResponse())
	}

	return &ProfileResponse{
		UserResponse: user.ToResponse(),
		Followers:    summaries(user.Followers),
		Following:    summaries(user.Following),
		SavedBlogs:   savedResponses,
	}, nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, request *UpdateProfileRequest) (*usermodel.UserResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		user.Name = *request.Name
	}
	if request.Bio != nil {
		user.Bio = *request.Bio
	}
	if request.DeletePic {
		user.ProfilePic = ""
	}
	if request.PicURL != nil {
		user.ProfilePic = *request.PicURL
	}

	if err := s.users.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	return user.ToResponse(), nil
}

func (s *ProfileService) Follow(ctx context.Context, userID, targetID uuid.UUID) (*PublicProfileResponse, error) {
	if userID == targetID {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "You cannot follow yourself", nil)
	}

	target, err := s.users.GetUserByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	following, err := s.users.IsFollowing(ctx, userID, targetID)
	if err != nil {
		return nil, err
	}
	if following {
		return nil, appErrors.ErrAlreadyFollowing
	}

	follower := &usermodel.User{ID: userID}
	if err := s.users.AddFollow(ctx, follower, target); err != nil {
		return nil, err
	}

	return s.GetPublicProfile(ctx, targetID)
}

func (s *ProfileService) Unfollow(ctx context.Context, userID, targetID uuid.UUID) (*PublicProfileResponse, error) {
	target, err := s.users.GetUserByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	follower := &usermodel.User{ID: userID}
	if err := s.users.RemoveFollow(ctx, follower, target); err != nil {
		return nil, err
	}

	return s.GetPublicProfile(ctx, targetID)
}

// ToggleSaveBlog saves the blog for the user, or removes it when already
// saved.
func (s *ProfileService) ToggleSaveBlog(ctx context.Context, userID, blogID uuid.UUID) (*SaveBlogResponse, error) {
	blog, err := s.blogs.GetBlogByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	saved, err := s.blogs.IsSavedByUser(ctx, blogID, userID)
	if err != nil {
		return nil, err
	}

	user := &usermodel.User{ID: userID}
	message := "Blog saved successfully."
	if saved {
		if err := s.blogs.UnsaveForUser(ctx, blog, user); err != nil {
			return nil, err
		}
		message = "Blog removed from saved posts."
	} else {
		if err := s.blogs.SaveForUser(ctx, blog, user); err != nil {
			return nil, err
		}
	}

	savedBlogs, err := s.blogs.GetSavedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(savedBlogs))
	for _, b := range savedBlogs {
		ids = append(ids, b.ID)
	}

	return &SaveBlogResponse{Message: message, SavedBlogs: ids}, nil
}

func (s *ProfileService) GetPublicProfile(ctx context.Context, userID uuid.UUID) (*PublicProfileResponse, error) {
	user, err := s.users.GetUserWithRelations(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &PublicProfileResponse{
		ID:         user.ID,
		Name:       user.Name,
		ProfilePic: user.ProfilePic,
		Bio:        user.Bio,
		Followers:  summaries(user.Followers),
		Following:  summaries(user.Following),
	}, nil
}
