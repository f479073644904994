package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"socialfeed-api/models"
	"socialfeed-api/services"
)

type LikeController struct {
	likes *services.LikeService
}

func NewLikeController(likes *services.LikeService) *LikeController {
	return &LikeController{likes: likes}
}

type ToggleLikeRequest struct {
	LikeableType string `json:"likeable_type" binding:"required,oneof=post comment"`
	LikeableID   string `json:"likeable_id" binding:"required"`
}

// Toggle likes the target if the user hasn't liked it yet, otherwise removes
// the like.
func (lc *LikeController) Toggle(c *gin.Context) {
	userID := c.GetString("user_id")

	var req ToggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kind, err := models.ParseLikeableType(req.LikeableType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := lc.likes.Toggle(userID, models.LikeTarget{Kind: kind, ID: req.LikeableID})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
