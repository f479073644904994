// File: /services/comment_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"socialfeed-api/models"
)

type CommentService struct {
	db    *gorm.DB
	likes *LikeService
}

func NewCommentService(db *gorm.DB, likes *LikeService) *CommentService {
	return &CommentService{db: db, likes: likes}
}

// AddComment creates a top-level comment, or a reply when parentID is set.
// A reply's parent must be a top-level comment on the same post.
func (s *CommentService) AddComment(postID, authorID, content string, parentID *string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: comment content must not be empty", ErrValidation)
	}

	comment := models.Comment{
		ID:       uuid.New().String(),
		PostID:   postID,
		UserID:   authorID,
		ParentID: parentID,
		Content:  content,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, "id = ?", postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: post %s", ErrNotFound, postID)
			}
			return err
		}

		if parentID != nil {
			var parent models.Comment
			if err := tx.First(&parent, "id = ?", *parentID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: parent comment %s", ErrNotFound, *parentID)
				}
				return err
			}
			if parent.PostID != postID {
				return fmt.Errorf("%w: parent comment belongs to another post", ErrValidation)
			}
			if parent.ParentID != nil {
				return fmt.Errorf("%w: replies to replies are not allowed", ErrValidation)
			}
		}

		return tx.Create(&comment).Error
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.Preload("User").First(&comment, "id = ?", comment.ID).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes a comment, its replies, and every like on any of
// them. Only the comment's owner may delete it.
func (s *CommentService) DeleteComment(commentID, actorID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.First(&comment, "id = ?", commentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: comment %s", ErrNotFound, commentID)
			}
			return err
		}
		if comment.UserID != actorID {
			return fmt.Errorf("%w: only the comment owner may delete it", ErrForbidden)
		}
		return deleteCommentTrees(tx, []string{comment.ID})
	})
}

// deleteCommentTrees removes the given comments, their replies, and all likes
// targeting any of them. Must run inside a transaction.
func deleteCommentTrees(tx *gorm.DB, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	var replyIDs []string
	if err := tx.Model(&models.Comment{}).Where("parent_id IN ?", ids).
		Pluck("id", &replyIDs).Error; err != nil {
		return err
	}
	all := append(append([]string{}, ids...), replyIDs...)

	if err := tx.Where("likeable_type = ? AND likeable_id IN ?", models.LikeableComment, all).
		Delete(&models.Like{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", all).Delete(&models.Comment{}).Error
}

// TreeForPost returns the post's top-level comments in creation order, each
// with its likes and its replies nested one level deep. All comments for the
// post are loaded in one query and linked in memory; likes for every node
// come from a second query.
func (s *CommentService) TreeForPost(postID, viewerID string) ([]models.CommentView, error) {
	var comments []models.Comment
	if err := s.db.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.ID)
	}
	likesByComment, err := s.likes.ForTargets(models.LikeableComment, ids)
	if err != nil {
		return nil, err
	}

	node := func(c models.Comment, replies []models.CommentView) models.CommentView {
		likes := likesByComment[c.ID]
		if replies == nil {
			replies = []models.CommentView{}
		}
		return models.CommentView{
			ID:           c.ID,
			Content:      c.Content,
			CreatedAt:    c.CreatedAt,
			User:         c.User.Summary(false),
			LikesCount:   len(likes),
			IsLiked:      likedBy(likes, viewerID),
			Likes:        LikerSummaries(likes),
			RepliesCount: len(replies),
			Replies:      replies,
		}
	}

	repliesByParent := make(map[string][]models.CommentView)
	for _, c := range comments {
		if c.ParentID != nil {
			repliesByParent[*c.ParentID] = append(repliesByParent[*c.ParentID], node(c, nil))
		}
	}

	tree := make([]models.CommentView, 0, len(comments))
	for _, c := range comments {
		if c.ParentID == nil {
			tree = append(tree, node(c, repliesByParent[c.ID]))
		}
	}
	return tree, nil
}

// NodeView returns the assembled view of one comment, shaped exactly as the
// same node appears in the post's comment tree.
func (s *CommentService) NodeView(commentID, viewerID string) (*models.CommentView, error) {
	var comment models.Comment
	if err := s.db.First(&comment, "id = ?", commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: comment %s", ErrNotFound, commentID)
		}
		return nil, err
	}

	tree, err := s.TreeForPost(comment.PostID, viewerID)
	if err != nil {
		return nil, err
	}
	for i := range tree {
		if tree[i].ID == commentID {
			return &tree[i], nil
		}
		for j := range tree[i].Replies {
			if tree[i].Replies[j].ID == commentID {
				return &tree[i].Replies[j], nil
			}
		}
	}
	return nil, fmt.Errorf("%w: comment %s", ErrNotFound, commentID)
}
