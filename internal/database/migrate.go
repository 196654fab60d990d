package database

import (
	"fmt"

	"github.com/pageza/cookbook/backend/internal/model"
	"gorm.io/gorm"
)

// Models lists every table in dependency order.
var Models = []interface{}{
	&model.User{},
	&model.Topic{},
	&model.Recipe{},
	&model.Step{},
	&model.Ingredient{},
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "sqlite" {
		// cascades on steps/ingredients need foreign keys switched on
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return backfillSearch(db)
}

// backfillSearch fills the folded search columns of recipes written before
// those columns existed.
func backfillSearch(db *gorm.DB) error {
	var stale []*model.Recipe
	err := db.Select("id", "title", "description").
		Where("search_title = ? AND title <> ?", "", "").
		Find(&stale).Error
	if err != nil {
		return fmt.Errorf("failed to find recipes without search columns: %w", err)
	}
	for _, r := range stale {
		err := db.Model(&model.Recipe{}).Where("id = ?", r.ID).UpdateColumns(map[string]interface{}{
			"search_title": model.FoldSearch(r.Title),
			"search_body":  model.FoldSearch(r.Description),
		}).Error
		if err != nil {
			return fmt.Errorf("failed to backfill recipe %d: %w", r.ID, err)
		}
	}
	return nil
}

// Reset drops every table and migrates again.
func Reset(db *gorm.DB) error {
	for i := len(Models) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(Models[i]); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
	}
	return Migrate(db)
}
