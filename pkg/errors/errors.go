package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthorized      = errors.New("not authorized")

	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrAccountNotVerified = errors.New("please verify your account before logging in")
	ErrAlreadyVerified    = errors.New("user already verified")

	ErrInvalidOTP = errors.New("invalid OTP")
	ErrOTPExpired = errors.New("OTP expired, please request a new one")

	// ErrInvalidResetToken covers both an unknown and an expired reset
	// token so callers cannot probe which one it was.
	ErrInvalidResetToken = errors.New("invalid or expired password reset token")

	ErrEmailDelivery = errors.New("email could not be sent, try again later")

	ErrBlogNotFound     = errors.New("blog not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrAlreadyFollowing = errors.New("already following this user")
)

type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
