package handler

import (
	"encoding/json"
	"net/http"

	"healthlink/internal/delivery/dto"
	"healthlink/internal/usecase"
	"healthlink/pkg/response"
	"healthlink/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BlogHandler struct {
	blogUsecase usecase.BlogUsecase
	validator   *validator.CustomValidator
}

func NewBlogHandler(blogUsecase usecase.BlogUsecase, validator *validator.CustomValidator) *BlogHandler {
	return &BlogHandler{
		blogUsecase: blogUsecase,
		validator:   validator,
	}
}

// Create handles creating a blog
// @Summary Create a blog
// @Description Create a blog post authored by the authenticated user
// @Tags Blogs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateBlogRequest true "Create Blog Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /blogs [post]
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	blog, err := h.blogUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrSubjectNotFound:
			response.Unauthorized(w, "Invalid token")
		default:
			response.InternalServerError(w, "Failed to create blog")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Blog created successfully", blog)
}

// ListMine handles listing the authenticated user's blogs
// @Summary List my blogs
// @Description List every blog authored by the authenticated user
// @Tags Blogs
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /blogs [get]
func (h *BlogHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogUsecase.ListMine(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrSubjectNotFound:
			response.Unauthorized(w, "Invalid token")
		default:
			response.InternalServerError(w, "Failed to list blogs")
		}
		return
	}

	response.Success(w, http.StatusOK, "Blogs retrieved successfully", blogs)
}

// Update handles updating a blog
// @Summary Update a blog
// @Description Update a blog's title and content; only the author may update
// @Tags Blogs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Blog ID"
// @Param request body dto.UpdateBlogRequest true "Update Blog Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /blogs/{id} [put]
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	blogID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid blog ID", nil)
		return
	}

	var req dto.UpdateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	blog, err := h.blogUsecase.Update(r.Context(), blogID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBlogNotFound:
			response.NotFound(w, "Blog not found")
		case usecase.ErrBlogNotOwned:
			response.Forbidden(w, "Blog belongs to another user")
		case usecase.ErrSubjectNotFound:
			response.Unauthorized(w, "Invalid token")
		default:
			response.InternalServerError(w, "Failed to update blog")
		}
		return
	}

	response.Success(w, http.StatusOK, "Blog updated successfully", blog)
}

// Delete handles deleting a blog
// @Summary Delete a blog
// @Description Delete a blog; only the author may delete
// @Tags Blogs
// @Security BearerAuth
// @Produce json
// @Param id path string true "Blog ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /blogs/{id} [delete]
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	blogID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid blog ID", nil)
		return
	}

	if err := h.blogUsecase.Delete(r.Context(), blogID); err != nil {
		switch err {
		case usecase.ErrBlogNotFound:
			response.NotFound(w, "Blog not found")
		case usecase.ErrBlogNotOwned:
			response.Forbidden(w, "Blog belongs to another user")
		case usecase.ErrSubjectNotFound:
			response.Unauthorized(w, "Invalid token")
		default:
			response.InternalServerError(w, "Failed to delete blog")
		}
		return
	}

	response.Success(w, http.StatusOK, "Blog deleted successfully", nil)
}

// ListPublic handles the public blog feed
// @Summary List public blogs
// @Description List every doctor-authored blog
// @Tags Blogs
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /blogs/public [get]
func (h *BlogHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogUsecase.ListPublic(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrNoBlogsFound:
			response.NotFound(w, "No blogs found")
		default:
			response.InternalServerError(w, "Failed to list blogs")
		}
		return
	}

	response.Success(w, http.StatusOK, "Blogs retrieved successfully", blogs)
}
