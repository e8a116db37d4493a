package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateBlogRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// UpdateBlogRequest keeps the previous value for omitted or empty fields.
type UpdateBlogRequest struct {
	Title   string `json:"title" validate:"omitempty"`
	Content string `json:"content" validate:"omitempty"`
}

// Response DTOs

type BlogAuthorView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role,omitempty"`
}

type BlogResponse struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	Author    *BlogAuthorView `json:"author,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type BlogListResponse struct {
	Blogs []BlogResponse `json:"blogs"`
	Total int            `json:"total"`
}
