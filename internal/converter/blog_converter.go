package converter

import (
	"healthlink/internal/delivery/dto"
	"healthlink/internal/domain/entity"

	"github.com/google/uuid"
)

func BlogToResponse(blog *entity.Blog) *dto.BlogResponse {
	if blog == nil {
		return nil
	}

	resp := &dto.BlogResponse{
		ID:        blog.ID,
		UserID:    blog.UserID,
		Title:     blog.Title,
		Content:   blog.Content,
		CreatedAt: blog.CreatedAt,
		UpdatedAt: blog.UpdatedAt,
	}

	if blog.User.ID != uuid.Nil {
		resp.Author = &dto.BlogAuthorView{
			ID:    blog.User.ID,
			Name:  blog.User.FullName,
			Email: blog.User.Email,
			Role:  blog.User.RoleName(),
		}
	}

	return resp
}

func BlogsToResponses(blogs []entity.Blog) []dto.BlogResponse {
	responses := make([]dto.BlogResponse, len(blogs))
	for i := range blogs {
		if resp := BlogToResponse(&blogs[i]); resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
