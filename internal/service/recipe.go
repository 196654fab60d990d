package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pageza/cookbook/backend/internal/logger"
	"github.com/pageza/cookbook/backend/internal/metrics"
	"github.com/pageza/cookbook/backend/internal/model"
	"github.com/pageza/cookbook/backend/internal/reconcile"
	"github.com/pageza/cookbook/backend/internal/repository"
	"github.com/pageza/cookbook/backend/internal/types"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	DefaultPage      = 1
	DefaultPageLimit = 10

	newestCount   = 3
	todayCount    = 5
	featuredCount = 3
)

// UpdateResult is what an update reports. Callers wanting the new state
// read the recipe again.
type UpdateResult struct {
	ID           uint  `json:"id"`
	RowsAffected int64 `json:"rows_affected"`
}

// ListResult is one page of recipes. Total counts the whole collection,
// not the filtered subset.
type ListResult struct {
	Recipes []*model.Recipe `json:"recipes"`
	Total   int64           `json:"total"`
}

// FeaturedRecipes holds up to three random recipes per difficulty.
type FeaturedRecipes struct {
	Easy   []*model.Recipe `json:"easy"`
	Medium []*model.Recipe `json:"medium"`
	Hard   []*model.Recipe `json:"hard"`
}

// RecipeService writes and reads recipe aggregates
type RecipeService struct {
	db      *gorm.DB
	recipes repository.RecipeRepo
	topics  repository.TopicRepo
	users   repository.UserRepo
	log     *logger.Logger
	opts    reconcile.Options
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB, baseLog *logger.Logger) *RecipeService {
	return &RecipeService{
		db:      db,
		recipes: repository.NewRecipeRepo(db, baseLog),
		topics:  repository.NewTopicRepo(db, baseLog),
		users:   repository.NewUserRepo(db, baseLog),
		log:     baseLog.With("service", "RecipeService"),
	}
}

// WithStrictChildIDs makes updates fail with ErrNotFound when a step or
// ingredient id does not belong to the stored recipe.
func (s *RecipeService) WithStrictChildIDs(strict bool) *RecipeService {
	s.opts.Strict = strict
	return s
}

// Create persists a new recipe with its steps and ingredients in one
// transaction and returns it in full read shape.
func (s *RecipeService) Create(ctx context.Context, input *types.CreateRecipeInput) (recipe *model.Recipe, err error) {
	defer func() { metrics.RecordWrite("create", err) }()

	var (
		ingredientPlan *reconcile.Plan[*model.Ingredient]
		stepPlan       *reconcile.Plan[*model.Step]
	)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.users.GetByID(ctx, tx, input.AuthorID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user %d", ErrAuthorNotFound, input.AuthorID)
			}
			return err
		}
		if err := s.checkTopic(ctx, tx, input.TopicID); err != nil {
			return err
		}

		root := newRecipe(&input.RecipeRequest)
		root.AuthorID = input.AuthorID
		if err := root.Validate(); err != nil {
			return err
		}

		// plan before any write so child validation failures leave nothing behind
		var err error
		ingredientPlan, err = reconcile.Diff(nil, ingredientsFromSpecs(input.Ingredients), s.opts)
		if err != nil {
			return fmt.Errorf("ingredients: %w", err)
		}
		stepPlan, err = reconcile.Diff(nil, stepsFromSpecs(input.Steps), s.opts)
		if err != nil {
			return fmt.Errorf("steps: %w", err)
		}

		if err := s.recipes.Create(ctx, tx, root); err != nil {
			return fmt.Errorf("insert recipe: %w", err)
		}
		if err := reconcile.Apply(ctx, repository.NewIngredientStore(tx, root.ID), ingredientPlan); err != nil {
			return fmt.Errorf("ingredients: %w", err)
		}
		if err := reconcile.Apply(ctx, repository.NewStepStore(tx, root.ID), stepPlan); err != nil {
			return fmt.Errorf("steps: %w", err)
		}
		recipe, err = s.recipes.GetByID(ctx, tx, root.ID)
		return err
	})
	if err != nil {
		err = s.classify(err)
		s.log.Warn("recipe create failed", "author_id", input.AuthorID, "error", err)
		return nil, err
	}

	observePlans(ingredientPlan, stepPlan)
	s.log.Info("recipe created", "recipe_id", recipe.ID, "author_id", input.AuthorID)
	return recipe, nil
}

// Update reconciles the stored recipe with req. Ingredients are reconciled
// first, then steps, then the scalar fields are written; all in one transaction.
func (s *RecipeService) Update(ctx context.Context, id uint, req *types.RecipeRequest) (result *UpdateResult, err error) {
	defer func() { metrics.RecordWrite("update", err) }()

	var (
		ingredientPlan *reconcile.Plan[*model.Ingredient]
		stepPlan       *reconcile.Plan[*model.Step]
	)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.recipes.GetByID(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: recipe %d", ErrNotFound, id)
			}
			return err
		}

		next := newRecipe(req)
		next.ID = existing.ID
		next.AuthorID = existing.AuthorID
		if err := next.Validate(); err != nil {
			return err
		}
		if err := s.checkTopic(ctx, tx, req.TopicID); err != nil {
			return err
		}

		ingredientPlan, err = reconcile.Diff(existing.Ingredients, ingredientsFromSpecs(req.Ingredients), s.opts)
		if err != nil {
			return childError("ingredients", err)
		}
		stepPlan, err = reconcile.Diff(existing.Steps, stepsFromSpecs(req.Steps), s.opts)
		if err != nil {
			return childError("steps", err)
		}

		if err := reconcile.Apply(ctx, repository.NewIngredientStore(tx, id), ingredientPlan); err != nil {
			return fmt.Errorf("ingredients: %w", err)
		}
		if err := reconcile.Apply(ctx, repository.NewStepStore(tx, id), stepPlan); err != nil {
			return fmt.Errorf("steps: %w", err)
		}

		rows, err := s.recipes.UpdateFields(ctx, tx, id, map[string]interface{}{
			"title":              next.Title,
			"description":        next.Description,
			"search_title":       model.FoldSearch(next.Title),
			"search_body":        model.FoldSearch(next.Description),
			"topic_id":           next.TopicID,
			"cooking_time":       next.CookingTime,
			"difficulty":         next.Difficulty,
			"preview_image_link": next.PreviewImageLink,
		})
		if err != nil {
			return fmt.Errorf("update recipe: %w", err)
		}

		result = &UpdateResult{ID: id, RowsAffected: rows}
		return nil
	})
	if err != nil {
		err = s.classify(err)
		s.log.Warn("recipe update failed", "recipe_id", id, "error", err)
		return nil, err
	}

	observePlans(ingredientPlan, stepPlan)
	s.log.Info("recipe updated", "recipe_id", id)
	return result, nil
}

// observePlans records committed child writes.
func observePlans(ingredients *reconcile.Plan[*model.Ingredient], steps *reconcile.Plan[*model.Step]) {
	metrics.ObservePlan("ingredients", len(ingredients.Inserts), len(ingredients.Updates), len(ingredients.Deletes))
	metrics.ObservePlan("steps", len(steps.Inserts), len(steps.Updates), len(steps.Deletes))
}

// GetOne returns one recipe in full read shape.
func (s *RecipeService) GetOne(ctx context.Context, id uint) (*model.Recipe, error) {
	recipe, err := s.recipes.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: recipe %d", ErrNotFound, id)
		}
		return nil, err
	}
	return recipe, nil
}

// List returns one page of recipes matching params. Page and limit below 1
// fall back to the defaults.
func (s *RecipeService) List(ctx context.Context, params types.ListRecipesParams) (*ListResult, error) {
	page := params.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := params.Limit
	if limit < 1 {
		limit = DefaultPageLimit
	}

	filter := repository.RecipeFilter{
		TopicID:  params.TopicID,
		AuthorID: params.UserID,
		Search:   params.Search,
		Offset:   limit * (page - 1),
		Limit:    limit,
	}
	if params.Difficulty != "" {
		d, ok := model.ParseDifficulty(params.Difficulty)
		if !ok {
			return nil, &ValidationError{Field: "difficulty", Message: "must be one of EASY, MEDIUM, HARD"}
		}
		filter.Difficulty = d
	}

	recipes, err := s.recipes.List(ctx, nil, filter)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	total, err := s.recipes.Count(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("count recipes: %w", err)
	}
	return &ListResult{Recipes: recipes, Total: total}, nil
}

// Newest returns the three most recently created recipes.
func (s *RecipeService) Newest(ctx context.Context) ([]*model.Recipe, error) {
	return s.recipes.Newest(ctx, nil, newestCount)
}

// TodaySelection samples five recipes; every call draws again.
func (s *RecipeService) TodaySelection(ctx context.Context) ([]*model.Recipe, error) {
	return s.recipes.Random(ctx, nil, todayCount, "")
}

// Featured samples up to three recipes per difficulty, concurrently.
func (s *RecipeService) Featured(ctx context.Context) (*FeaturedRecipes, error) {
	featured := &FeaturedRecipes{}
	buckets := map[model.Difficulty]*[]*model.Recipe{
		model.DifficultyEasy:   &featured.Easy,
		model.DifficultyMedium: &featured.Medium,
		model.DifficultyHard:   &featured.Hard,
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, difficulty := range model.Difficulties {
		difficulty, dst := difficulty, buckets[difficulty]
		g.Go(func() error {
			recipes, err := s.recipes.Random(gctx, nil, featuredCount, difficulty)
			if err != nil {
				return fmt.Errorf("sample %s recipes: %w", difficulty, err)
			}
			*dst = recipes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return featured, nil
}

func (s *RecipeService) checkTopic(ctx context.Context, tx *gorm.DB, topicID uint) error {
	if _, err := s.topics.GetByID(ctx, tx, topicID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: topic %d does not exist", ErrInvalidRequest, topicID)
		}
		return err
	}
	return nil
}

// classify wraps storage failures of an aggregate write; domain failures
// pass through unchanged.
func (s *RecipeService) classify(err error) error {
	if isDomainError(err) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrTransactionFailure, err)
}

func childError(collection string, err error) error {
	if errors.Is(err, reconcile.ErrUnknownChild) {
		return fmt.Errorf("%w: %s: %w", ErrNotFound, collection, err)
	}
	return fmt.Errorf("%s: %w", collection, err)
}

func newRecipe(req *types.RecipeRequest) *model.Recipe {
	return &model.Recipe{
		Title:            req.Title,
		Description:      req.Description,
		CookingTime:      req.CookingTime,
		Difficulty:       model.Difficulty(req.Difficulty),
		PreviewImageLink: req.PreviewImageLink,
		TopicID:          req.TopicID,
	}
}

func stepsFromSpecs(specs []types.StepSpec) []*model.Step {
	steps := make([]*model.Step, 0, len(specs))
	for _, spec := range specs {
		steps = append(steps, model.NewStep(specID(spec.ID), spec.StepName, spec.StepDescription))
	}
	return steps
}

func ingredientsFromSpecs(specs []types.IngredientSpec) []*model.Ingredient {
	ingredients := make([]*model.Ingredient, 0, len(specs))
	for _, spec := range specs {
		ingredients = append(ingredients, model.NewIngredient(specID(spec.ID), spec.IngredientName, spec.IngredientAmount))
	}
	return ingredients
}

func specID(id *uint) uint {
	if id == nil {
		return 0
	}
	return *id
}
