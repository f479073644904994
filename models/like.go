// File: /models/like.go
package models

import (
	"fmt"
	"time"
)

// LikeableType tags which entity type a like attaches to.
type LikeableType string

const (
	LikeablePost    LikeableType = "post"
	LikeableComment LikeableType = "comment"
)

// ParseLikeableType validates a client-supplied kind string.
func ParseLikeableType(s string) (LikeableType, error) {
	switch LikeableType(s) {
	case LikeablePost, LikeableComment:
		return LikeableType(s), nil
	}
	return "", fmt.Errorf("unknown likeable type %q", s)
}

// LikeTarget pairs the kind with the target id so the two always travel
// together through the service layer.
type LikeTarget struct {
	Kind LikeableType
	ID   string
}

func PostTarget(id string) LikeTarget {
	return LikeTarget{Kind: LikeablePost, ID: id}
}

func CommentTarget(id string) LikeTarget {
	return LikeTarget{Kind: LikeableComment, ID: id}
}

// Like is a polymorphic reaction row. The combination of UserID, LikeableType
// and LikeableID is unique, which is what keeps concurrent toggles from ever
// producing duplicate rows.
type Like struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	UserID       string       `json:"user_id" gorm:"not null;size:191;uniqueIndex:idx_likes_owner_target"`
	LikeableType LikeableType `json:"likeable_type" gorm:"not null;size:20;uniqueIndex:idx_likes_owner_target"`
	LikeableID   string       `json:"likeable_id" gorm:"not null;size:191;uniqueIndex:idx_likes_owner_target"`
	CreatedAt    time.Time    `json:"created_at"`

	User User `json:"user" gorm:"foreignKey:UserID"`
}

// LikerSummary is one entry of the "liked by" list.
type LikerSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToggleResult reports the like state after a toggle.
type ToggleResult struct {
	Liked   bool   `json:"liked"`
	Message string `json:"message"`
}
