package model

import (
	"time"

	"github.com/google/uuid"
)

// Role is a closed set so authorization checks stay exhaustive.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string    `json:"name" gorm:"type:varchar(100);not null"`
	Email          string    `json:"email" gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHashed string    `json:"-" gorm:"type:varchar(255);not null"`
	ProfilePic     string    `json:"profile_pic" gorm:"type:varchar(500);default:''"`
	Bio            string    `json:"bio" gorm:"type:varchar(100);default:''"`

	IsVerified              bool       `json:"is_verified" gorm:"not null;default:false"`
	VerificationCode        *string    `json:"-" gorm:"type:varchar(6)"`
	VerificationCodeExpires *time.Time `json:"-"`
	ResetPasswordToken      *string    `json:"-" gorm:"type:varchar(64);index"`
	ResetPasswordExpires    *time.Time `json:"-"`

	Role       Role      `json:"role" gorm:"type:varchar(10);not null;default:'user'"`
	LastActive time.Time `json:"last_active"`

	Followers []*User `json:"followers,omitempty" gorm:"many2many:user_follows;joinForeignKey:FollowingID;joinReferences:FollowerID"`
	Following []*User `json:"following,omitempty" gorm:"many2many:user_follows;joinForeignKey:FollowerID;joinReferences:FollowingID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// HasPendingOTP reports whether a verification code is still outstanding.
func (u *User) HasPendingOTP() bool {
	return !u.IsVerified && u.VerificationCode != nil
}

// OTPExpired reports whether the pending code has passed its expiry.
func (u *User) OTPExpired(now time.Time) bool {
	return u.VerificationCodeExpires == nil || now.After(*u.VerificationCodeExpires)
}

// ClearVerification removes the pending code after a successful verify.
func (u *User) ClearVerification() {
	u.IsVerified = true
	u.VerificationCode = nil
	u.VerificationCodeExpires = nil
}

// ClearResetToken drops the reset token once consumed or rolled back.
func (u *User) ClearResetToken() {
	u.ResetPasswordToken = nil
	u.ResetPasswordExpires = nil
}
