package entities

import (
	"time"

	"github.com/google/uuid"
)

type Meal struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `gorm:"default:now()" json:"created_at"`
	IsOnDiet    bool      `json:"isOnDiet"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}
