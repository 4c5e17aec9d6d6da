package model

import (
	"time"

	usermodel "pixi/internal/auth/model"

	"github.com/google/uuid"
)

type Blog struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title    string    `json:"title" gorm:"type:varchar(255);not null"`
	Content  string    `json:"content" gorm:"type:text;not null"`
	Image    string    `json:"image" gorm:"type:varchar(500);default:''"`
	Category string    `json:"category" gorm:"type:varchar(100);default:'General'"`
	Tags     []string  `json:"tags" gorm:"serializer:json"`

	AuthorID uuid.UUID       `json:"author_id" gorm:"type:uuid;not null;index"`
	Author   *usermodel.User `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`

	IsPublished bool  `json:"is_published" gorm:"not null;default:true"`
	Views       int64 `json:"views" gorm:"not null;default:0"`

	Likes   []*usermodel.User `json:"likes,omitempty" gorm:"many2many:blog_likes"`
	Viewers []*usermodel.User `json:"-" gorm:"many2many:blog_views"`
	SavedBy []*usermodel.User `json:"-" gorm:"many2many:user_saved_blogs"`

	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Blog) TableName() string {
	return "blogs"
}

type Comment struct {
	ID     uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	BlogID uuid.UUID       `json:"blog_id" gorm:"type:uuid;not null;index"`
	UserID uuid.UUID       `json:"user_id" gorm:"type:uuid;not null"`
	User   *usermodel.User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Text   string          `json:"text" gorm:"type:text;not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}
