package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"socialfeed-api/models"
)

// setupTestDB opens a per-test in-memory database. The dsn is keyed by test
// name so parallel tests never share state, while cache=shared keeps every
// connection of one test on the same database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	))
	return db
}

func newTestServices(t *testing.T) (*gorm.DB, *LikeService, *CommentService, *PostService) {
	t.Helper()

	db := setupTestDB(t)
	likes := NewLikeService(db)
	comments := NewCommentService(db, likes)

	media, err := NewMediaService(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	posts := NewPostService(db, likes, comments, media)
	return db, likes, comments, posts
}

func createTestUser(t *testing.T, db *gorm.DB, first, last string) *models.User {
	t.Helper()

	user := &models.User{
		ID:        uuid.New().String(),
		FirstName: first,
		LastName:  last,
		Email:     strings.ToLower(first + "." + last + "@example.com"),
		Password:  "$2a$10$testhash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestPost(t *testing.T, posts *PostService, owner *models.User, content, visibility string) *models.PostView {
	t.Helper()

	view, err := posts.CreatePost(&models.Post{
		UserID:     owner.ID,
		Content:    content,
		Visibility: visibility,
	})
	require.NoError(t, err)
	return view
}
