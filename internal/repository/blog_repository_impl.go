package repository

import (
	"errors"

	"healthlink/internal/domain/entity"
	domainRepo "healthlink/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type blogRepository struct{}

func NewBlogRepository() domainRepo.BlogRepository {
	return &blogRepository{}
}

func (r *blogRepository) Create(db *gorm.DB, blog *entity.Blog) error {
	return db.Create(blog).Error
}

func (r *blogRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Blog, error) {
	var blog entity.Blog
	err := db.Where("id = ?", id).First(&blog).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Blog, error) {
	var blogs []entity.Blog
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&blogs).Error
	if err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *blogRepository) FindByAuthorRole(db *gorm.DB, roleID int) ([]entity.Blog, error) {
	var blogs []entity.Blog
	err := db.Preload("User").
		Joins("JOIN users ON users.id = blogs.user_id").
		Where("users.role_id = ?", roleID).
		Order("blogs.created_at DESC").
		Find(&blogs).Error
	if err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *blogRepository) Update(db *gorm.DB, blog *entity.Blog) error {
	return db.Save(blog).Error
}

func (r *blogRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Blog{}).Error
}
