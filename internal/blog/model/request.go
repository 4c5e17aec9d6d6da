package model

type CreateBlogRequest struct {
	Title    string   `json:"title" validate:"required,min=1,max=255"`
	Content  string   `json:"content" validate:"required"`
	Category string   `json:"category" validate:"omitempty,max=100"`
	Tags     []string `json:"tags" validate:"omitempty,dive,max=50"`
	Publish  *bool    `json:"publish"`
	ImageURL string   `json:"image_url" validate:"omitempty,url"`
}

type UpdateBlogRequest struct {
	Title    *string  `json:"title" validate:"omitempty,min=1,max=255"`
	Content  *string  `json:"content"`
	Category *string  `json:"category" validate:"omitempty,max=100"`
	Tags     []string `json:"tags" validate:"omitempty,dive,max=50"`
	Publish  *bool    `json:"publish"`
	ImageURL *string  `json:"image_url" validate:"omitempty,url"`
}

type CommentRequest struct {
	Text string `json:"text" validate:"required"`
}
