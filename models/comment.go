package models

import (
	"time"
)

// Comment is attached to a post. A nil ParentID marks a top-level comment; a
// set ParentID marks a reply to a top-level comment on the same post. Reply
// depth is capped at one level, enforced by the comment service.
type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	PostID    string    `json:"post_id" gorm:"not null;index;size:191"`
	UserID    string    `json:"user_id" gorm:"not null;index;size:191"`
	ParentID  *string   `json:"parent_id" gorm:"index;size:191"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `json:"user" gorm:"foreignKey:UserID"`
}

// CommentView is one node of the assembled comment tree. Reply nodes carry an
// empty replies list.
type CommentView struct {
	ID           string         `json:"id"`
	Content      string         `json:"content"`
	CreatedAt    time.Time      `json:"created_at"`
	User         UserSummary    `json:"user"`
	LikesCount   int            `json:"likes_count"`
	IsLiked      bool           `json:"is_liked"`
	Likes        []LikerSummary `json:"likes"`
	RepliesCount int            `json:"replies_count"`
	Replies      []CommentView  `json:"replies"`
}
