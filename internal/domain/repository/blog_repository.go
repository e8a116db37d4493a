package repository

import (
	"healthlink/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogRepository interface {
	Create(db *gorm.DB, blog *entity.Blog) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Blog, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Blog, error)
	// FindByAuthorRole lists posts whose author carries the given role,
	// newest first.
	FindByAuthorRole(db *gorm.DB, roleID int) ([]entity.Blog, error)
	Update(db *gorm.DB, blog *entity.Blog) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
