package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pixi/internal/auth/model"
	"pixi/internal/config"
	"pixi/internal/mailer"
	appErrors "pixi/pkg/errors"
	"pixi/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const otpValidity = 10 * time.Minute

// UserStore is the subset of the user repository the credential lifecycle
// needs. Satisfied by *repository.UserRepository.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*model.User, error)
	GetUserByValidResetToken(ctx context.Context, token string, now time.Time) (*model.User, error)
	SaveUser(ctx context.Context, user *model.User) error
}

// AuthService owns the account credential lifecycle: registration, OTP
// verification, login, and password reset.
type AuthService struct {
	repo   UserStore
	mail   mailer.Mailer
	config *config.Config
}

func NewService(repo UserStore, mail mailer.Mailer, cfg *config.Config) *AuthService {
	return &AuthService{
		repo:   repo,
		mail:   mail,
		config: cfg,
	}
}

func (s *AuthService) Register(ctx context.Context, request *model.RegisterRequest) (*model.RegisterResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Please enter all fields", err)
	}

	if err := utils.ValidatePassword(request.Password); err != nil {
		return nil, appErrors.NewAppError("WEAK_PASSWORD", err.Error(), nil)
	}

	existingUser, err := s.repo.GetUserByEmail(ctx, request.Email)
	if err != nil && !errors.Is(err, appErrors.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, appErrors.ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return nil, err
	}
	expiry := time.Now().Add(otpValidity)

	role := model.RoleUser
	if s.config.Admin.IsAdminEmail(request.Email) {
		role = model.RoleAdmin
	}

	user := &model.User{
		Name:                    request.Name,
		Email:                   request.Email,
		PasswordHashed:          hashedPassword,
		IsVerified:              false,
		VerificationCode:        &code,
		VerificationCodeExpires: &expiry,
		Role:                    role,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	// The account is kept even when delivery fails; ResendOTP is the
	// recovery path.
	if err := s.mail.Send(user.Email, "Verify Your Pixi Account", verificationEmailBody(code)); err != nil {
		zap.L().Warn("Failed to send verification email",
			zap.String("email", user.Email),
			zap.Error(err),
		)
	}

	return &model.RegisterResponse{
		Email:   user.Email,
		Message: "OTP sent to your email. Please verify your account.",
	}, nil
}

func (s *AuthService) VerifyOTP(ctx context.Context, request *model.VerifyOTPRequest) (*model.MessageResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Email and OTP are required", err)
	}

	user, err := s.repo.GetUserByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}

	if user.IsVerified {
		return &model.MessageResponse{Message: "User already verified! Please login."}, nil
	}

	if !user.HasPendingOTP() || *user.VerificationCode != request.Code {
		return nil, appErrors.ErrInvalidOTP
	}

	if user.OTPExpired(time.Now()) {
		return nil, appErrors.ErrOTPExpired
	}

	user.ClearVerification()
	if err := s.repo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	return &model.MessageResponse{Message: "Congratulations! Your account has been verified."}, nil
}

func (s *AuthService) ResendOTP(ctx context.Context, request *model.ResendOTPRequest) (*model.MessageResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Email is required", err)
	}

	user, err := s.repo.GetUserByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}

	if user.IsVerified {
		return nil, appErrors.ErrAlreadyVerified
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return nil, err
	}
	expiry := time.Now().Add(otpValidity)

	// Overwriting invalidates any previously issued code.
	user.VerificationCode = &code
	user.VerificationCodeExpires = &expiry

	if err := s.repo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	if err := s.mail.Send(user.Email, "Your New OTP Code", resendEmailBody(code)); err != nil {
		return nil, err
	}

	return &model.MessageResponse{Message: "OTP resent successfully!"}, nil
}

func (s *AuthService) Login(ctx context.Context, request *model.LoginRequest) (*model.AuthResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	user, err := s.repo.GetUserByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}

	if !user.IsVerified {
		return nil, appErrors.ErrAccountNotVerified
	}

	if !utils.CheckPassword(user.PasswordHashed, request.Password) {
		return nil, appErrors.ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, s.config.JWT.Secret, s.config.JWT.ExpiryDays)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &model.AuthResponse{
		User:    user.ToResponse(),
		Token:   token,
		Message: "Login successful!",
	}, nil
}

func (s *AuthService) ForgotPassword(ctx context.Context, request *model.ForgotPasswordRequest) (*model.MessageResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Email is required", err)
	}

	user, err := s.repo.GetUserByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateResetToken()
	if err != nil {
		return nil, err
	}
	expiry := time.Now().Add(otpValidity)

	user.ResetPasswordToken = &token
	user.ResetPasswordExpires = &expiry
	if err := s.repo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", s.config.Frontend.BaseURL, token)

	if err := s.mail.Send(user.Email, "Reset Your Pixi Password", resetEmailBody(resetURL)); err != nil {
		// Roll the token back so a usable credential is never left
		// stranded without the user having received it.
		user.ClearResetToken()
		if saveErr := s.repo.SaveUser(ctx, user); saveErr != nil {
			zap.L().Error("Failed to roll back reset token",
				zap.String("email", user.Email),
				zap.Error(saveErr),
			)
		}
		return nil, err
	}

	return &model.MessageResponse{Message: "Password reset link sent to your email."}, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token string, request *model.ResetPasswordRequest) (*model.MessageResponse, error) {
	if token == "" {
		return nil, appErrors.ErrInvalidResetToken
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Password is required", err)
	}
	if err := utils.ValidatePassword(request.Password); err != nil {
		return nil, appErrors.NewAppError("WEAK_PASSWORD", err.Error(), nil)
	}

	user, err := s.repo.GetUserByValidResetToken(ctx, token, time.Now())
	if err != nil {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHashed = hashedPassword
	user.ClearResetToken()

	if err := s.repo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	return &model.MessageResponse{Message: "Password reset successful! You can now log in."}, nil
}

func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*model.UserResponse, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return user.ToResponse(), nil
}
