package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account that owns patient records
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username  string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patients []Patient `gorm:"foreignKey:UserID" json:"patients,omitempty"`
}

func (User) TableName() string {
	return "users"
}
