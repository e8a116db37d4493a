package entity

import (
	"time"

	"github.com/google/uuid"
)

// Blog is a post owned by a user. Mutation is restricted to the owner;
// the public listing only surfaces doctor-authored posts.
type Blog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Blog) TableName() string {
	return "blogs"
}

// IsOwnedBy reports whether userID owns the post.
func (b *Blog) IsOwnedBy(userID uuid.UUID) bool {
	return b.UserID == userID
}
