package model

import (
	"time"

	"golang.org/x/text/cases"
	"gorm.io/gorm"
)

// Difficulty is the preparation difficulty bucket of a recipe.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// Difficulties lists every bucket in featured order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParseDifficulty returns the bucket for s, or false when s is not one of the three values.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch d := Difficulty(s); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, true
	}
	return "", false
}

// Recipe is the aggregate root. Steps and Ingredients are owned rows;
// Topic and Author are references.
type Recipe struct {
	ID               uint          `gorm:"primaryKey" json:"id"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
	Title            string        `gorm:"size:255;not null" json:"title" validate:"required"`
	Description      string        `gorm:"type:text" json:"description"`
	CookingTime      int           `gorm:"not null" json:"cooking_time" validate:"gt=0"`
	Difficulty       Difficulty    `gorm:"size:10;not null;index" json:"difficulty" validate:"oneof=EASY MEDIUM HARD"`
	PreviewImageLink *string       `gorm:"size:512" json:"preview_image_link"`
	SearchTitle      string        `gorm:"type:text;not null;default:''" json:"-"`
	SearchBody       string        `gorm:"type:text;not null;default:''" json:"-"`
	TopicID          uint          `gorm:"not null;index" json:"-"`
	Topic            *Topic        `json:"topic"`
	AuthorID         uint          `gorm:"not null;index" json:"-"`
	Author           *Author       `gorm:"foreignKey:AuthorID;-:migration" json:"author"`
	Steps            []*Step       `gorm:"constraint:OnDelete:CASCADE" json:"steps"`
	Ingredients      []*Ingredient `gorm:"constraint:OnDelete:CASCADE" json:"ingredients"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// FoldSearch case-folds s for substring search. Title and description are
// stored folded so matching does not depend on the dialect's LOWER().
func FoldSearch(s string) string {
	return cases.Fold().String(s)
}

// BeforeSave keeps the folded search columns in step with title and description.
func (r *Recipe) BeforeSave(*gorm.DB) error {
	r.SearchTitle = FoldSearch(r.Title)
	r.SearchBody = FoldSearch(r.Description)
	return nil
}

// Validate checks the scalar fields of the recipe. Children are validated
// when they are reconciled.
func (r *Recipe) Validate() error {
	return validateStruct(r)
}

// Step is one preparation step. Steps are read back ordered by Position;
// the values are sparse sort keys, not indexes.
type Step struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	RecipeID        uint   `gorm:"not null;index" json:"-"`
	Position        int    `gorm:"not null" json:"position"`
	StepName        string `gorm:"size:255;not null" json:"step_name" validate:"required"`
	StepDescription string `gorm:"type:text" json:"step_description"`
}

func (Step) TableName() string {
	return "steps"
}

// NewStep builds a step from its field set. A zero id marks it transient.
func NewStep(id uint, name, description string) *Step {
	return &Step{ID: id, StepName: name, StepDescription: description}
}

func (s *Step) Key() uint        { return s.ID }
func (s *Step) ClearKey()        { s.ID = 0 }
func (s *Step) Order() int       { return s.Position }
func (s *Step) SetOrder(pos int) { s.Position = pos }
func (s *Step) Validate() error  { return validateStruct(s) }
func (s *Step) SetOwner(id uint) { s.RecipeID = id }

// SameContent reports whether both steps carry the same name and
// description. Position is handled by the reconciler.
func (s *Step) SameContent(other *Step) bool {
	return s.StepName == other.StepName &&
		s.StepDescription == other.StepDescription
}

// Ingredient is one entry of a recipe's unordered ingredient list.
type Ingredient struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	RecipeID         uint   `gorm:"not null;index" json:"-"`
	IngredientName   string `gorm:"size:255;not null" json:"ingredient_name" validate:"required"`
	IngredientAmount string `gorm:"size:100" json:"ingredient_amount"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}

// NewIngredient builds an ingredient from its field set. A zero id marks it transient.
func NewIngredient(id uint, name, amount string) *Ingredient {
	return &Ingredient{ID: id, IngredientName: name, IngredientAmount: amount}
}

func (i *Ingredient) Key() uint        { return i.ID }
func (i *Ingredient) ClearKey()        { i.ID = 0 }
func (i *Ingredient) Validate() error  { return validateStruct(i) }
func (i *Ingredient) SetOwner(id uint) { i.RecipeID = id }

func (i *Ingredient) SameContent(other *Ingredient) bool {
	return i.IngredientName == other.IngredientName &&
		i.IngredientAmount == other.IngredientAmount
}
