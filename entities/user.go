package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username  string     `json:"username"`
	Email     string     `gorm:"uniqueIndex" json:"email"`
	SessionID *uuid.UUID `gorm:"type:uuid;index" json:"-"` // nil until first session is issued
	CreatedAt time.Time  `json:"created_at"`

	Meals []Meal `gorm:"foreignKey:UserID" json:"-"`
}
