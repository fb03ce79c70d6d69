package model

import "time"

// User is an account that owns tasks. Email uniqueness is enforced by the
// unique index in addition to the pre-check in the auth service.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:250;not null"`
	PasswordHash string    `json:"-" gorm:"size:250;not null"` // Never expose in JSON
	Name         string    `json:"name" gorm:"size:100;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Tasks []Task `json:"tasks,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}
