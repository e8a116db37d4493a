package entity

// Role represents a user role in the system. Roles are fixed at
// registration and never change afterwards.
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants (seeded by migrations)
const (
	RoleIDDoctor  = 1
	RoleIDPatient = 2
)

// Role name constants
const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)
