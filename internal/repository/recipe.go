package repository

import (
	"context"
	"strings"

	"github.com/pageza/cookbook/backend/internal/logger"
	"github.com/pageza/cookbook/backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecipeFilter narrows a recipe listing. Nil/empty fields match everything.
type RecipeFilter struct {
	TopicID    *uint
	Difficulty model.Difficulty
	AuthorID   *uint
	Search     string
	Offset     int
	Limit      int
}

type RecipeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, recipe *model.Recipe) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*model.Recipe, error)
	List(ctx context.Context, tx *gorm.DB, filter RecipeFilter) ([]*model.Recipe, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	Newest(ctx context.Context, tx *gorm.DB, n int) ([]*model.Recipe, error)
	Random(ctx context.Context, tx *gorm.DB, n int, difficulty model.Difficulty) ([]*model.Recipe, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uint, fields map[string]interface{}) (int64, error)
}

type recipeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecipeRepo(db *gorm.DB, baseLog *logger.Logger) RecipeRepo {
	return &recipeRepo{db: db, log: baseLog.With("repo", "RecipeRepo")}
}

func (r *recipeRepo) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx)
}

// WithRelations loads the full read shape of a recipe: ordered steps,
// ingredients, topic and the author's public projection.
func WithRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("steps.position ASC").Order("steps.id ASC")
		}).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("ingredients.id ASC")
		}).
		Preload("Topic").
		Preload("Author", func(db *gorm.DB) *gorm.DB {
			return db.Select(model.AuthorColumns)
		})
}

// likeEscaper makes LIKE wildcards in a search term match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// randomOrder is the dialect's native random ordering.
func randomOrder(db *gorm.DB) clause.OrderBy {
	fn := "RANDOM()"
	if db.Dialector.Name() == "mysql" {
		fn = "RAND()"
	}
	return clause.OrderBy{Expression: clause.Expr{SQL: fn}}
}

func (r *recipeRepo) Create(ctx context.Context, tx *gorm.DB, recipe *model.Recipe) error {
	return r.conn(ctx, tx).Omit(clause.Associations).Create(recipe).Error
}

func (r *recipeRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := r.conn(ctx, tx).Scopes(WithRelations).First(&recipe, id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepo) List(ctx context.Context, tx *gorm.DB, filter RecipeFilter) ([]*model.Recipe, error) {
	query := r.conn(ctx, tx).Model(&model.Recipe{})

	if filter.TopicID != nil {
		query = query.Where("recipes.topic_id = ?", *filter.TopicID)
	}
	if filter.Difficulty != "" {
		query = query.Where("recipes.difficulty = ?", filter.Difficulty)
	}
	if filter.AuthorID != nil {
		query = query.Where("recipes.author_id = ?", *filter.AuthorID)
	}
	if filter.Search != "" {
		like := "%" + likeEscaper.Replace(model.FoldSearch(filter.Search)) + "%"
		query = query.Where(`(recipes.search_title LIKE ? ESCAPE '\' OR recipes.search_body LIKE ? ESCAPE '\')`, like, like)
	}

	var recipes []*model.Recipe
	err := query.Scopes(WithRelations).
		Order("recipes.id ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// Count is the size of the whole collection, ignoring any filter.
func (r *recipeRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	var total int64
	if err := r.conn(ctx, tx).Model(&model.Recipe{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *recipeRepo) Newest(ctx context.Context, tx *gorm.DB, n int) ([]*model.Recipe, error) {
	var recipes []*model.Recipe
	err := r.conn(ctx, tx).Scopes(WithRelations).
		Order("recipes.id DESC").
		Limit(n).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// Random samples up to n recipes uniformly, optionally within one difficulty.
func (r *recipeRepo) Random(ctx context.Context, tx *gorm.DB, n int, difficulty model.Difficulty) ([]*model.Recipe, error) {
	query := r.conn(ctx, tx)
	if difficulty != "" {
		query = query.Where("recipes.difficulty = ?", difficulty)
	}

	var recipes []*model.Recipe
	err := query.Scopes(WithRelations).
		Clauses(randomOrder(query)).
		Limit(n).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// UpdateFields writes the given columns of one recipe, zero values included.
func (r *recipeRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uint, fields map[string]interface{}) (int64, error) {
	result := r.conn(ctx, tx).Model(&model.Recipe{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return 0, result.Error
	}
	r.log.Debug("recipe fields updated", "recipe_id", id, "rows", result.RowsAffected)
	return result.RowsAffected, nil
}
