package testhelpers

import (
	"fmt"
	"testing"

	"github.com/pageza/cookbook/backend/internal/model"
	"gorm.io/gorm"
)

// CreateUser inserts a user with the given username.
func CreateUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{
		Username:     username,
		FirstName:    "Test",
		LastName:     "Cook",
		Role:         "USER",
		PasswordHash: "not-a-real-hash",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTopic inserts a topic with the given name.
func CreateTopic(t *testing.T, db *gorm.DB, name string) *model.Topic {
	t.Helper()
	topic := &model.Topic{Name: name}
	if err := db.Create(topic).Error; err != nil {
		t.Fatalf("failed to create test topic: %v", err)
	}
	return topic
}

// CreateRecipe inserts a bare recipe row with one step and one ingredient,
// bypassing the service. Useful to build read fixtures quickly.
func CreateRecipe(t *testing.T, db *gorm.DB, authorID, topicID uint, title string, difficulty model.Difficulty) *model.Recipe {
	t.Helper()
	recipe := &model.Recipe{
		Title:       title,
		Description: fmt.Sprintf("How to make %s", title),
		CookingTime: 20,
		Difficulty:  difficulty,
		TopicID:     topicID,
		AuthorID:    authorID,
	}
	if err := db.Omit("Steps", "Ingredients", "Topic", "Author").Create(recipe).Error; err != nil {
		t.Fatalf("failed to create test recipe: %v", err)
	}
	if err := db.Create(&model.Step{RecipeID: recipe.ID, StepName: "Prepare"}).Error; err != nil {
		t.Fatalf("failed to create test step: %v", err)
	}
	if err := db.Create(&model.Ingredient{RecipeID: recipe.ID, IngredientName: "Water", IngredientAmount: "1 l"}).Error; err != nil {
		t.Fatalf("failed to create test ingredient: %v", err)
	}
	return recipe
}
