package model

import (
	"time"

	usermodel "pixi/internal/auth/model"

	"github.com/google/uuid"
)

type AuthorSummary struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ProfilePic string    `json:"profile_pic"`
}

type CommentResponse struct {
	ID        uuid.UUID      `json:"id"`
	Text      string         `json:"text"`
	User      *AuthorSummary `json:"user,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

type BlogResponse struct {
	ID          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Content     string            `json:"content"`
	Image       string            `json:"image"`
	Category    string            `json:"category"`
	Tags        []string          `json:"tags"`
	Author      *AuthorSummary    `json:"author,omitempty"`
	IsPublished bool              `json:"is_published"`
	Views       int64             `json:"views"`
	Likes       []uuid.UUID       `json:"likes"`
	LikesCount  int               `json:"likes_count"`
	Comments    []CommentResponse `json:"comments,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type LikeResponse struct {
	Message    string      `json:"message"`
	Likes      []uuid.UUID `json:"likes"`
	LikesCount int         `json:"likes_count"`
}

func summarize(u *usermodel.User) *AuthorSummary {
	if u == nil {
		return nil
	}
	return &AuthorSummary{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		ProfilePic: u.ProfilePic,
	}
}

func (c *Comment) ToResponse() CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Text:      c.Text,
		User:      summarize(c.User),
		CreatedAt: c.CreatedAt,
	}
}

func (b *Blog) ToResponse() *BlogResponse {
	likes := make([]uuid.UUID, 0, len(b.Likes))
	for _, u := range b.Likes {
		likes = append(likes, u.ID)
	}

	comments := make([]CommentResponse, 0, len(b.Comments))
	for i := range b.Comments {
		comments = append(comments, b.Comments[i].ToResponse())
	}

	return &BlogResponse{
		ID:          b.ID,
		Title:       b.Title,
		Content:     b.Content,
		Image:       b.Image,
		Category:    b.Category,
		Tags:        b.Tags,
		Author:      summarize(b.Author),
		IsPublished: b.IsPublished,
		Views:       b.Views,
		Likes:       likes,
		LikesCount:  len(likes),
		Comments:    comments,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
