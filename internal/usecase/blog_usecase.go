package usecase

import (
	"context"
	"errors"

	"healthlink/internal/converter"
	"healthlink/internal/delivery/dto"
	"healthlink/internal/delivery/http/middleware"
	"healthlink/internal/domain/entity"
	"healthlink/internal/domain/repository"
	"healthlink/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBlogNotFound = errors.New("blog not found")
	ErrBlogNotOwned = errors.New("blog does not belong to the authenticated user")
	ErrNoBlogsFound = errors.New("no blogs found")
)

type BlogUsecase interface {
	Create(ctx context.Context, req *dto.CreateBlogRequest) (*dto.BlogResponse, error)
	ListMine(ctx context.Context) (*dto.BlogListResponse, error)
	Update(ctx context.Context, blogID uuid.UUID, req *dto.UpdateBlogRequest) (*dto.BlogResponse, error)
	Delete(ctx context.Context, blogID uuid.UUID) error
	ListPublic(ctx context.Context) (*dto.BlogListResponse, error)
}

type blogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	blogRepo     repository.BlogRepository
	auditService service.AuditService
}

func NewBlogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	blogRepo repository.BlogRepository,
	auditService service.AuditService,
) BlogUsecase {
	return &blogUsecase{
		db:           db,
		log:          log,
		blogRepo:     blogRepo,
		auditService: auditService,
	}
}

func (u *blogUsecase) Create(ctx context.Context, req *dto.CreateBlogRequest) (*dto.BlogResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrSubjectNotFound
	}

	blog := &entity.Blog{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.blogRepo.Create(tx, blog); err != nil {
		u.log.Warnf("Failed to create blog: %+v", err)
		return nil, err
	}

	_ = u.auditService.Record(ctx, tx, &userID, entity.AuditActionBlogCreate, "blog", blog.ID.String(), nil, map[string]interface{}{
		"title": blog.Title,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BlogToResponse(blog), nil
}

func (u *blogUsecase) ListMine(ctx context.Context) (*dto.BlogListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrSubjectNotFound
	}

	blogs, err := u.blogRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list blogs: %+v", err)
		return nil, err
	}

	return &dto.BlogListResponse{
		Blogs: converter.BlogsToResponses(blogs),
		Total: len(blogs),
	}, nil
}

// Update replaces the title and content fields that arrive non-empty.
// Only the author may update a blog.
func (u *blogUsecase) Update(ctx context.Context, blogID uuid.UUID, req *dto.UpdateBlogRequest) (*dto.BlogResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrSubjectNotFound
	}

	blog, err := u.blogRepo.FindByID(u.db.WithContext(ctx), blogID)
	if err != nil {
		u.log.Warnf("Failed to find blog: %+v", err)
		return nil, err
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}
	if !blog.IsOwnedBy(userID) {
		return nil, ErrBlogNotOwned
	}

	oldValue := map[string]interface{}{
		"title":   blog.Title,
		"content": blog.Content,
	}

	if req.Title != "" {
		blog.Title = req.Title
	}
	if req.Content != "" {
		blog.Content = req.Content
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.blogRepo.Update(tx, blog); err != nil {
		u.log.Warnf("Failed to update blog: %+v", err)
		return nil, err
	}

	_ = u.auditService.Record(ctx, tx, &userID, entity.AuditActionBlogUpdate, "blog", blog.ID.String(), oldValue, map[string]interface{}{
		"title":   blog.Title,
		"content": blog.Content,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BlogToResponse(blog), nil
}

func (u *blogUsecase) Delete(ctx context.Context, blogID uuid.UUID) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrSubjectNotFound
	}

	blog, err := u.blogRepo.FindByID(u.db.WithContext(ctx), blogID)
	if err != nil {
		u.log.Warnf("Failed to find blog: %+v", err)
		return err
	}
	if blog == nil {
		return ErrBlogNotFound
	}
	if !blog.IsOwnedBy(userID) {
		return ErrBlogNotOwned
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.blogRepo.Delete(tx, blog.ID); err != nil {
		u.log.Warnf("Failed to delete blog: %+v", err)
		return err
	}

	_ = u.auditService.Record(ctx, tx, &userID, entity.AuditActionBlogDelete, "blog", blog.ID.String(), map[string]interface{}{
		"title": blog.Title,
	}, nil)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// ListPublic returns every blog authored by a doctor. Patient-authored
// blogs stay private to their authors.
func (u *blogUsecase) ListPublic(ctx context.Context) (*dto.BlogListResponse, error) {
	blogs, err := u.blogRepo.FindByAuthorRole(u.db.WithContext(ctx), entity.RoleIDDoctor)
	if err != nil {
		u.log.Warnf("Failed to list public blogs: %+v", err)
		return nil, err
	}
	if len(blogs) == 0 {
		return nil, ErrNoBlogsFound
	}

	return &dto.BlogListResponse{
		Blogs: converter.BlogsToResponses(blogs),
		Total: len(blogs),
	}, nil
}
