// File: /services/post_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"socialfeed-api/models"
	"socialfeed-api/utils"
)

type PostService struct {
	db       *gorm.DB
	likes    *LikeService
	comments *CommentService
	media    *MediaService
}

func NewPostService(db *gorm.DB, likes *LikeService, comments *CommentService, media *MediaService) *PostService {
	return &PostService{
		db:       db,
		likes:    likes,
		comments: comments,
		media:    media,
	}
}

// VisiblePosts returns every public post plus the viewer's own private posts,
// newest first. This is the only access-control rule on the feed.
func (s *PostService) VisiblePosts(viewerID string) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.Preload("User").
		Where("visibility = ? OR (visibility = ? AND user_id = ?)",
			models.VisibilityPublic, models.VisibilityPrivate, viewerID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Feed assembles the visible posts into wire shapes.
func (s *PostService) Feed(viewerID string) ([]models.PostView, error) {
	posts, err := s.VisiblePosts(viewerID)
	if err != nil {
		return nil, err
	}

	feed := make([]models.PostView, 0, len(posts))
	for i := range posts {
		view, err := s.Assemble(&posts[i], viewerID)
		if err != nil {
			return nil, err
		}
		feed = append(feed, *view)
	}
	return feed, nil
}

// Assemble builds the full wire shape for one post: post fields, owner
// summary, like summary, and the comment tree. Create, update, and list all
// go through this one function so the shapes can never diverge.
func (s *PostService) Assemble(post *models.Post, viewerID string) (*models.PostView, error) {
	likesByPost, err := s.likes.ForTargets(models.LikeablePost, []string{post.ID})
	if err != nil {
		return nil, err
	}
	likes := likesByPost[post.ID]

	comments, err := s.comments.TreeForPost(post.ID, viewerID)
	if err != nil {
		return nil, err
	}

	return &models.PostView{
		ID:            post.ID,
		Content:       post.Content,
		ImageURL:      s.media.PublicURL(post.ImagePath),
		VideoURL:      s.media.PublicURL(post.VideoPath),
		Visibility:    post.Visibility,
		CreatedAt:     post.CreatedAt,
		User:          post.User.Summary(true),
		LikesCount:    len(likes),
		CommentsCount: len(comments),
		IsLiked:       likedBy(likes, viewerID),
		Likes:         LikerSummaries(likes),
		Comments:      comments,
	}, nil
}

// AssembleByID reloads the post with its owner and assembles it.
func (s *PostService) AssembleByID(postID, viewerID string) (*models.PostView, error) {
	var post models.Post
	if err := s.db.Preload("User").First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: post %s", ErrNotFound, postID)
		}
		return nil, err
	}
	return s.Assemble(&post, viewerID)
}

// CreatePost stores the post and returns it assembled the same way the feed
// renders it.
func (s *PostService) CreatePost(post *models.Post) (*models.PostView, error) {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if strings.TrimSpace(post.Content) == "" {
		return nil, fmt.Errorf("%w: post content must not be empty", ErrValidation)
	}
	if err := validVisibility(post.Visibility); err != nil {
		return nil, err
	}

	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}
	return s.AssembleByID(post.ID, post.UserID)
}

// UpdatePost applies a partial update (only the provided fields change) and
// returns the reassembled post. Only the owner may update.
func (s *PostService) UpdatePost(postID, actorID string, content, visibility *string) (*models.PostView, error) {
	if visibility != nil {
		if err := validVisibility(*visibility); err != nil {
			return nil, err
		}
	}
	if content != nil && strings.TrimSpace(*content) == "" {
		return nil, fmt.Errorf("%w: post content must not be empty", ErrValidation)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, "id = ?", postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: post %s", ErrNotFound, postID)
			}
			return err
		}
		if post.UserID != actorID {
			return fmt.Errorf("%w: only the post owner may update it", ErrForbidden)
		}

		updates := map[string]interface{}{}
		if content != nil {
			updates["content"] = *content
		}
		if visibility != nil {
			updates["visibility"] = *visibility
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&post).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return s.AssembleByID(postID, actorID)
}

// DeletePost removes the post, its comments and replies, and every like
// targeting the post or any of its comments, all-or-nothing. Stored media is
// released afterwards; a failure there is logged, not surfaced, since the
// rows are already gone.
func (s *PostService) DeletePost(postID, actorID string) error {
	hadMedia := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, "id = ?", postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: post %s", ErrNotFound, postID)
			}
			return err
		}
		if post.UserID != actorID {
			return fmt.Errorf("%w: only the post owner may delete it", ErrForbidden)
		}
		hadMedia = post.ImagePath != nil || post.VideoPath != nil

		var topLevelIDs []string
		if err := tx.Model(&models.Comment{}).
			Where("post_id = ? AND parent_id IS NULL", postID).
			Pluck("id", &topLevelIDs).Error; err != nil {
			return err
		}
		if err := deleteCommentTrees(tx, topLevelIDs); err != nil {
			return err
		}

		if err := tx.Where("likeable_type = ? AND likeable_id = ?", models.LikeablePost, postID).
			Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		return err
	}

	if hadMedia {
		if err := s.media.DeletePostMedia(postID); err != nil {
			utils.Logger.Warn("failed to release post media",
				zap.String("post_id", postID), zap.Error(err))
		}
	}
	return nil
}

func validVisibility(v string) error {
	if v != models.VisibilityPublic && v != models.VisibilityPrivate {
		return fmt.Errorf("%w: visibility must be public or private", ErrValidation)
	}
	return nil
}
