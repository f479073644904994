// File: /models/user.go
package models

import (
	"time"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	FirstName string    `json:"first_name" gorm:"not null;size:100"`
	LastName  string    `json:"last_name" gorm:"not null;size:100"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password  string    `json:"-" gorm:"not null;size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Posts    []Post    `json:"posts,omitempty" gorm:"foreignKey:UserID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:UserID"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// UserSummary is the owner shape embedded in feed responses. Post owners carry
// their email, comment owners do not.
type UserSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
}

func (u *User) Summary(includeEmail bool) UserSummary {
	summary := UserSummary{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
	if includeEmail {
		summary.Email = u.Email
	}
	return summary
}
