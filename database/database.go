// File: /database/database.go
package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"socialfeed-api/models"
	"socialfeed-api/utils"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Duplicate-key violations must surface as gorm.ErrDuplicatedKey so
		// the like toggle can resolve insert races.
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// The unique index on likes(user_id, likeable_type, likeable_id) comes
	// from the model tags; only the query-path indexes are added here.
	addCustomIndexes(db)

	return nil
}

func addCustomIndexes(db *gorm.DB) {
	// Feed query: visibility filter ordered by recency
	if err := db.Exec("CREATE INDEX idx_posts_visibility_created ON posts(visibility, created_at DESC)").Error; err != nil {
		utils.Logger.Warn("could not create index for posts feed", zap.Error(err))
	}

	// Comment tree loads every row for a post in creation order
	if err := db.Exec("CREATE INDEX idx_comments_post_created ON comments(post_id, created_at)").Error; err != nil {
		utils.Logger.Warn("could not create index for comments", zap.Error(err))
	}

	// Like lookups by target
	if err := db.Exec("CREATE INDEX idx_likes_target ON likes(likeable_type, likeable_id)").Error; err != nil {
		utils.Logger.Warn("could not create index for likes", zap.Error(err))
	}
}
