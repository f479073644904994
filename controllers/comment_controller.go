package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"socialfeed-api/services"
	"socialfeed-api/utils"
)

type CommentController struct {
	comments *services.CommentService
}

func NewCommentController(comments *services.CommentService) *CommentController {
	return &CommentController{comments: comments}
}

type CreateCommentRequest struct {
	Content  string  `json:"content" binding:"required"`
	ParentID *string `json:"parent_id"`
}

// CreateComment adds a comment (or a reply when parent_id is set) to the post
// and returns the assembled comment node.
func (cc *CommentController) CreateComment(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("id")

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := cc.comments.AddComment(postID, userID, req.Content, req.ParentID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	view, err := cc.comments.NodeView(comment.ID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

func (cc *CommentController) DeleteComment(c *gin.Context) {
	userID := c.GetString("user_id")
	commentID := c.Param("id")

	if err := cc.comments.DeleteComment(commentID, userID); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Comment deleted successfully", nil)
}
