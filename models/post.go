// File: /models/post.go
package models

import (
	"time"
)

const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

type Post struct {
	ID         string    `json:"id" gorm:"primaryKey;size:191"`
	UserID     string    `json:"user_id" gorm:"not null;index;size:191"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	ImagePath  *string   `json:"image_path,omitempty" gorm:"size:500"`
	VideoPath  *string   `json:"video_path,omitempty" gorm:"size:500"`
	Visibility string    `json:"visibility" gorm:"not null;default:'public';size:20"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	User     User      `json:"user" gorm:"foreignKey:UserID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:PostID"`
}

// PostView is the fully assembled feed item. Every endpoint that returns a
// post returns this exact shape, built by a single assembly path.
type PostView struct {
	ID            string         `json:"id"`
	Content       string         `json:"content"`
	ImageURL      *string        `json:"image_url"`
	VideoURL      *string        `json:"video_url"`
	Visibility    string         `json:"visibility"`
	CreatedAt     time.Time      `json:"created_at"`
	User          UserSummary    `json:"user"`
	LikesCount    int            `json:"likes_count"`
	CommentsCount int            `json:"comments_count"`
	IsLiked       bool           `json:"is_liked"`
	Likes         []LikerSummary `json:"likes"`
	Comments      []CommentView  `json:"comments"`
}
