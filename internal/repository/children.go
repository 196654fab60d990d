package repository

import (
	"context"

	"github.com/pageza/cookbook/backend/internal/model"
	"github.com/pageza/cookbook/backend/internal/reconcile"
	"gorm.io/gorm"
)

// stepStore writes the steps of one recipe inside tx.
type stepStore struct {
	tx       *gorm.DB
	recipeID uint
}

// NewStepStore scopes step writes to recipeID. tx should be the
// transaction of the aggregate write.
func NewStepStore(tx *gorm.DB, recipeID uint) reconcile.Store[*model.Step] {
	return &stepStore{tx: tx, recipeID: recipeID}
}

func (s *stepStore) Insert(ctx context.Context, step *model.Step) error {
	step.SetOwner(s.recipeID)
	return s.tx.WithContext(ctx).Create(step).Error
}

func (s *stepStore) Update(ctx context.Context, step *model.Step) error {
	step.SetOwner(s.recipeID)
	return s.tx.WithContext(ctx).
		Model(&model.Step{ID: step.ID}).
		Where("recipe_id = ?", s.recipeID).
		Select("step_name", "step_description", "position").
		Updates(step).Error
}

func (s *stepStore) Delete(ctx context.Context, step *model.Step) error {
	return s.tx.WithContext(ctx).
		Where("recipe_id = ?", s.recipeID).
		Delete(&model.Step{}, step.ID).Error
}

// ingredientStore writes the ingredients of one recipe inside tx.
type ingredientStore struct {
	tx       *gorm.DB
	recipeID uint
}

func NewIngredientStore(tx *gorm.DB, recipeID uint) reconcile.Store[*model.Ingredient] {
	return &ingredientStore{tx: tx, recipeID: recipeID}
}

func (s *ingredientStore) Insert(ctx context.Context, ingredient *model.Ingredient) error {
	ingredient.SetOwner(s.recipeID)
	return s.tx.WithContext(ctx).Create(ingredient).Error
}

func (s *ingredientStore) Update(ctx context.Context, ingredient *model.Ingredient) error {
	ingredient.SetOwner(s.recipeID)
	return s.tx.WithContext(ctx).
		Model(&model.Ingredient{ID: ingredient.ID}).
		Where("recipe_id = ?", s.recipeID).
		Select("ingredient_name", "ingredient_amount").
		Updates(ingredient).Error
}

func (s *ingredientStore) Delete(ctx context.Context, ingredient *model.Ingredient) error {
	return s.tx.WithContext(ctx).
		Where("recipe_id = ?", s.recipeID).
		Delete(&model.Ingredient{}, ingredient.ID).Error
}
