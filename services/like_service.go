// File: /services/like_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"socialfeed-api/models"
)

type LikeService struct {
	db *gorm.DB
}

func NewLikeService(db *gorm.DB) *LikeService {
	return &LikeService{db: db}
}

// Toggle creates a like for the target if the actor has none, or removes the
// existing one. The unique index on (user_id, likeable_type, likeable_id)
// collapses concurrent toggles to a single row: a duplicate-key insert means
// the concurrent toggle won, and exactly one row exists either way.
func (s *LikeService) Toggle(actorID string, target models.LikeTarget) (*models.ToggleResult, error) {
	if _, err := models.ParseLikeableType(string(target.Kind)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	liked := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := targetExists(tx, target); err != nil {
			return err
		}

		res := tx.Where("user_id = ? AND likeable_type = ? AND likeable_id = ?",
			actorID, target.Kind, target.ID).Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}

		like := models.Like{
			UserID:       actorID,
			LikeableType: target.Kind,
			LikeableID:   target.ID,
		}
		if err := tx.Create(&like).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				liked = true
				return nil
			}
			return err
		}
		liked = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &models.ToggleResult{Liked: liked, Message: "Unliked"}
	if liked {
		result.Message = "Liked"
	}
	return result, nil
}

// Count returns the number of likes for a target, recomputed from the rows on
// every call.
func (s *LikeService) Count(target models.LikeTarget) (int, error) {
	var count int64
	err := s.db.Model(&models.Like{}).
		Where("likeable_type = ? AND likeable_id = ?", target.Kind, target.ID).
		Count(&count).Error
	return int(count), err
}

// IsLikedBy reports whether the actor currently likes the target.
func (s *LikeService) IsLikedBy(actorID string, target models.LikeTarget) (bool, error) {
	var count int64
	err := s.db.Model(&models.Like{}).
		Where("user_id = ? AND likeable_type = ? AND likeable_id = ?", actorID, target.Kind, target.ID).
		Count(&count).Error
	return count > 0, err
}

// Likers returns the "liked by" list for a target in insertion order.
func (s *LikeService) Likers(target models.LikeTarget) ([]models.LikerSummary, error) {
	byTarget, err := s.ForTargets(target.Kind, []string{target.ID})
	if err != nil {
		return nil, err
	}
	return LikerSummaries(byTarget[target.ID]), nil
}

// ForTargets loads every like for a set of same-kind targets in one query,
// keyed by target id. The feed assembly uses this to avoid a query per node.
func (s *LikeService) ForTargets(kind models.LikeableType, ids []string) (map[string][]models.Like, error) {
	byTarget := make(map[string][]models.Like, len(ids))
	if len(ids) == 0 {
		return byTarget, nil
	}

	var likes []models.Like
	if err := s.db.Preload("User").
		Where("likeable_type = ? AND likeable_id IN ?", kind, ids).
		Order("id ASC").
		Find(&likes).Error; err != nil {
		return nil, err
	}

	for _, like := range likes {
		byTarget[like.LikeableID] = append(byTarget[like.LikeableID], like)
	}
	return byTarget, nil
}

// LikerSummaries shapes like rows into the "liked by" list.
func LikerSummaries(likes []models.Like) []models.LikerSummary {
	summaries := make([]models.LikerSummary, 0, len(likes))
	for _, like := range likes {
		summaries = append(summaries, models.LikerSummary{
			ID:   like.User.ID,
			Name: like.User.FullName(),
		})
	}
	return summaries
}

func likedBy(likes []models.Like, actorID string) bool {
	for _, like := range likes {
		if like.UserID == actorID {
			return true
		}
	}
	return false
}

// targetExists verifies the liked entity is real, so likes can never attach
// to a dangling id.
func targetExists(tx *gorm.DB, target models.LikeTarget) error {
	var count int64
	var err error

	switch target.Kind {
	case models.LikeablePost:
		err = tx.Model(&models.Post{}).Where("id = ?", target.ID).Count(&count).Error
	case models.LikeableComment:
		err = tx.Model(&models.Comment{}).Where("id = ?", target.ID).Count(&count).Error
	default:
		return fmt.Errorf("%w: unknown likeable type %q", ErrValidation, target.Kind)
	}
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: %s %s", ErrNotFound, target.Kind, target.ID)
	}
	return nil
}
