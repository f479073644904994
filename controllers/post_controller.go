// File: /controllers/post_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"socialfeed-api/models"
	"socialfeed-api/services"
	"socialfeed-api/utils"
)

const (
	maxImageSize = 5 << 20  // 5MB
	maxVideoSize = 10 << 20 // 10MB
)

type PostController struct {
	posts *services.PostService
	media *services.MediaService
}

func NewPostController(posts *services.PostService, media *services.MediaService) *PostController {
	return &PostController{
		posts: posts,
		media: media,
	}
}

// GetPosts returns the viewer's feed: public posts plus their own private
// posts, newest first, fully assembled.
func (pc *PostController) GetPosts(c *gin.Context) {
	userID := c.GetString("user_id")

	feed, err := pc.posts.Feed(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, feed)
}

// CreatePost accepts a multipart form with content, visibility, and optional
// image/video attachments.
func (pc *PostController) CreatePost(c *gin.Context) {
	userID := c.GetString("user_id")

	content := c.PostForm("content")
	visibility := c.DefaultPostForm("visibility", models.VisibilityPublic)

	if content == "" {
		utils.SendValidationError(c, "content is required")
		return
	}
	if visibility != models.VisibilityPublic && visibility != models.VisibilityPrivate {
		utils.SendValidationError(c, "visibility must be public or private")
		return
	}

	// Media lands under the post's directory, so the id is fixed up front
	postID := uuid.New().String()

	var imagePath, videoPath *string

	if file, err := c.FormFile("image"); err == nil {
		if !utils.IsAllowedImage(file.Filename) {
			utils.SendValidationError(c, "unsupported image type")
			return
		}
		if file.Size > maxImageSize {
			utils.SendValidationError(c, "image must not exceed 5MB")
			return
		}
		ref, err := pc.media.SavePostMedia(postID, file)
		if err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to store image")
			return
		}
		imagePath = &ref
	}

	if file, err := c.FormFile("video"); err == nil {
		if !utils.IsAllowedVideo(file.Filename) {
			utils.SendValidationError(c, "unsupported video type")
			return
		}
		if file.Size > maxVideoSize {
			utils.SendValidationError(c, "video must not exceed 10MB")
			return
		}
		ref, err := pc.media.SavePostMedia(postID, file)
		if err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to store video")
			return
		}
		videoPath = &ref
	}

	view, err := pc.posts.CreatePost(&models.Post{
		ID:         postID,
		UserID:     userID,
		Content:    content,
		ImagePath:  imagePath,
		VideoPath:  videoPath,
		Visibility: visibility,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

type UpdatePostRequest struct {
	Content    *string `json:"content"`
	Visibility *string `json:"visibility" binding:"omitempty,oneof=public private"`
}

// UpdatePost applies a partial update; only the provided fields change.
func (pc *PostController) UpdatePost(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("id")

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	view, err := pc.posts.UpdatePost(postID, userID, req.Content, req.Visibility)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (pc *PostController) DeletePost(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("id")

	if err := pc.posts.DeletePost(postID, userID); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Post deleted successfully", nil)
}
