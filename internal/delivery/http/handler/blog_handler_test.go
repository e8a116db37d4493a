package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthlink/internal/delivery/dto"
	"healthlink/internal/usecase"
	"healthlink/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

type stubBlogUsecase struct {
	createFn     func(ctx context.Context, req *dto.CreateBlogRequest) (*dto.BlogResponse, error)
	listMineFn   func(ctx context.Context) (*dto.BlogListResponse, error)
	updateFn     func(ctx context.Context, blogID uuid.UUID, req *dto.UpdateBlogRequest) (*dto.BlogResponse, error)
	deleteFn     func(ctx context.Context, blogID uuid.UUID) error
	listPublicFn func(ctx context.Context) (*dto.BlogListResponse, error)
}

func (s *stubBlogUsecase) Create(ctx context.Context, req *dto.CreateBlogRequest) (*dto.BlogResponse, error) {
	return s.createFn(ctx, req)
}

func (s *stubBlogUsecase) ListMine(ctx context.Context) (*dto.BlogListResponse, error) {
	return s.listMineFn(ctx)
}

func (s *stubBlogUsecase) Update(ctx context.Context, blogID uuid.UUID, req *dto.UpdateBlogRequest) (*dto.BlogResponse, error) {
	return s.updateFn(ctx, blogID, req)
}

func (s *stubBlogUsecase) Delete(ctx context.Context, blogID uuid.UUID) error {
	return s.deleteFn(ctx, blogID)
}

func (s *stubBlogUsecase) ListPublic(ctx context.Context) (*dto.BlogListResponse, error) {
	return s.listPublicFn(ctx)
}

func blogRouter(h *BlogHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/blogs", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/blogs", h.ListMine).Methods(http.MethodGet)
	r.HandleFunc("/blogs/public", h.ListPublic).Methods(http.MethodGet)
	r.HandleFunc("/blogs/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/blogs/{id}", h.Delete).Methods(http.MethodDelete)
	return r
}

func TestBlogHandler_Create(t *testing.T) {
	userID := uuid.New()
	stub := &stubBlogUsecase{
		createFn: func(ctx context.Context, req *dto.CreateBlogRequest) (*dto.BlogResponse, error) {
			return &dto.BlogResponse{ID: uuid.New(), UserID: userID, Title: req.Title, Content: req.Content}, nil
		},
	}
	h := NewBlogHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/blogs", jsonBody(t, dto.CreateBlogRequest{
		Title:   "Managing hypertension",
		Content: "Monitor your blood pressure at home.",
	}))
	rec := httptest.NewRecorder()

	blogRouter(h).ServeHTTP(rec, withSubject(req, userID))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestBlogHandler_Create_MissingContent(t *testing.T) {
	stub := &stubBlogUsecase{
		createFn: func(ctx context.Context, req *dto.CreateBlogRequest) (*dto.BlogResponse, error) {
			t.Fatal("usecase must not be reached on validation failure")
			return nil, nil
		},
	}
	h := NewBlogHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/blogs", jsonBody(t, dto.CreateBlogRequest{
		Title: "Managing hypertension",
	}))
	rec := httptest.NewRecorder()

	blogRouter(h).ServeHTTP(rec, withSubject(req, uuid.New()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBlogHandler_Update_NotOwner(t *testing.T) {
	stub := &stubBlogUsecase{
		updateFn: func(ctx context.Context, blogID uuid.UUID, req *dto.UpdateBlogRequest) (*dto.BlogResponse, error) {
			return nil, usecase.ErrBlogNotOwned
		},
	}
	h := NewBlogHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPut, "/blogs/"+uuid.New().String(), jsonBody(t, dto.UpdateBlogRequest{
		Title: "Edited title",
	}))
	rec := httptest.NewRecorder()

	blogRouter(h).ServeHTTP(rec, withSubject(req, uuid.New()))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestBlogHandler_Update_NotFound(t *testing.T) {
	stub := &stubBlogUsecase{
		updateFn: func(ctx context.Context, blogID uuid.UUID, req *dto.UpdateBlogRequest) (*dto.BlogResponse, error) {
			return nil, usecase.ErrBlogNotFound
		},
	}
	h := NewBlogHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPut, "/blogs/"+uuid.New().String(), jsonBody(t, dto.UpdateBlogRequest{}))
	rec := httptest.NewRecorder()

	blogRouter(h).ServeHTTP(rec, withSubject(req, uuid.New()))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBlogHandler_Delete(t *testing.T) {
	blogID := uuid.New()
	stub := &stubBlogUsecase{
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			assert.Equal(t, blogID, id)
			return nil
		},
	}
	h := NewBlogHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodDelete, "/blogs/"+blogID.String(), nil)
	rec := httptest.NewRecorder()

	blogRouter(h).ServeHTTP(rec, withSubject(req, uuid.New()))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBlogHandler_ListPublic_Empty(t *testing.T) {
	stub := &stubBlogUsecase{
		listPublicFn: func(ctx context.Context) (*dto.BlogListResponse, error) {
			return nil, usecase.ErrNoBlogsFound
		},
	}
	h := NewBlogHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/blogs/public", nil)
	rec := httptest.NewRecorder()

	blogRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBlogHandler_ListPublic(t *testing.T) {
	stub := &stubBlogUsecase{
		listPublicFn: func(ctx context.Context) (*dto.BlogListResponse, error) {
			return &dto.BlogListResponse{
				Blogs: []dto.BlogResponse{
					{
						ID:     uuid.New(),
						Title:  "Managing hypertension",
						Author: &dto.BlogAuthorView{Name: "Dr. Casey Moore", Role: "doctor"},
					},
				},
				Total: 1,
			}, nil
		},
	}
	h := NewBlogHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/blogs/public", nil)
	rec := httptest.NewRecorder()

	blogRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool                 `json:"success"`
		Data    dto.BlogListResponse `json:"data"`
	}
	assert.NoError(t, decodeJSON(rec, &envelope))
	assert.Equal(t, 1, envelope.Data.Total)
	assert.Equal(t, "doctor", envelope.Data.Blogs[0].Author.Role)
}
