package service_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/pageza/cookbook/backend/internal/logger"
	"github.com/pageza/cookbook/backend/internal/model"
	"github.com/pageza/cookbook/backend/internal/reconcile"
	"github.com/pageza/cookbook/backend/internal/service"
	"github.com/pageza/cookbook/backend/internal/testhelpers"
	"github.com/pageza/cookbook/backend/internal/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recipeFixture struct {
	db     *gorm.DB
	svc    *service.RecipeService
	author *model.User
	topic  *model.Topic
}

func setupRecipeTest(t *testing.T) *recipeFixture {
	t.Helper()
	db := testhelpers.SetupSQLite(t)
	return &recipeFixture{
		db:     db,
		svc:    service.NewRecipeService(db, logger.Nop()),
		author: testhelpers.CreateUser(t, db, "chef"),
		topic:  testhelpers.CreateTopic(t, db, "Soups"),
	}
}

func (f *recipeFixture) request(title string, steps ...string) types.RecipeRequest {
	req := types.RecipeRequest{
		Title:       title,
		Description: "A recipe for " + title,
		CookingTime: 30,
		Difficulty:  "EASY",
		TopicID:     f.topic.ID,
		Ingredients: []types.IngredientSpec{
			{IngredientName: "Salt", IngredientAmount: "1 tsp"},
			{IngredientName: "Water", IngredientAmount: "1 l"},
		},
	}
	for _, name := range steps {
		req.Steps = append(req.Steps, types.StepSpec{StepName: name, StepDescription: name + " carefully"})
	}
	return req
}

func (f *recipeFixture) create(t *testing.T, req types.RecipeRequest) *model.Recipe {
	t.Helper()
	recipe, err := f.svc.Create(context.Background(), &types.CreateRecipeInput{RecipeRequest: req, AuthorID: f.author.ID})
	require.NoError(t, err)
	return recipe
}

func countRows(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}

func stepNames(steps []*model.Step) []string {
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.StepName
	}
	return names
}

// countWrites counts create, update and delete statements against table.
func countWrites(t *testing.T, db *gorm.DB, table string) *int {
	t.Helper()
	n := new(int)
	count := func(tx *gorm.DB) {
		if tx.Statement.Table == table && tx.Error == nil {
			*n++
		}
	}
	name := "test:count_" + table
	require.NoError(t, db.Callback().Create().After("gorm:create").Register(name, count))
	require.NoError(t, db.Callback().Update().After("gorm:update").Register(name, count))
	require.NoError(t, db.Callback().Delete().After("gorm:delete").Register(name, count))
	return n
}

// childWrites reads cookbook_child_writes_total for one collection and kind.
func childWrites(t *testing.T, collection, kind string) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "cookbook_child_writes_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			if labels["collection"] == collection && labels["kind"] == kind {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestCreateRecipe(t *testing.T) {
	f := setupRecipeTest(t)

	recipe := f.create(t, f.request("Tomato Soup", "Chop", "Simmer", "Blend"))

	assert.NotZero(t, recipe.ID)
	assert.Equal(t, "Tomato Soup", recipe.Title)
	assert.Equal(t, model.DifficultyEasy, recipe.Difficulty)
	require.NotNil(t, recipe.Topic)
	assert.Equal(t, "Soups", recipe.Topic.Name)
	require.NotNil(t, recipe.Author)
	assert.Equal(t, f.author.Public(), *recipe.Author)

	assert.Equal(t, []string{"Chop", "Simmer", "Blend"}, stepNames(recipe.Steps))
	for i, step := range recipe.Steps {
		assert.Equal(t, (i+1)*reconcile.PositionGap, step.Position)
		assert.NotZero(t, step.ID)
	}
	assert.Len(t, recipe.Ingredients, 2)
}

func TestCreateRecipe_UnknownTopic(t *testing.T) {
	f := setupRecipeTest(t)
	req := f.request("Orphan", "Step one")
	req.TopicID = 999

	_, err := f.svc.Create(context.Background(), &types.CreateRecipeInput{RecipeRequest: req, AuthorID: f.author.ID})

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInvalidRequest))
	assert.Zero(t, countRows(t, f.db, &model.Recipe{}))
	assert.Zero(t, countRows(t, f.db, &model.Step{}))
	assert.Zero(t, countRows(t, f.db, &model.Ingredient{}))
}

func TestCreateRecipe_UnknownAuthor(t *testing.T) {
	f := setupRecipeTest(t)

	_, err := f.svc.Create(context.Background(), &types.CreateRecipeInput{
		RecipeRequest: f.request("Ghost", "Boo"),
		AuthorID:      12345,
	})

	assert.ErrorIs(t, err, service.ErrAuthorNotFound)
	assert.Zero(t, countRows(t, f.db, &model.Recipe{}))
}

func TestCreateRecipe_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *types.RecipeRequest)
		field  string
	}{
		{"empty title", func(req *types.RecipeRequest) { req.Title = "" }, "title"},
		{"zero cooking time", func(req *types.RecipeRequest) { req.CookingTime = 0 }, "cooking_time"},
		{"unknown difficulty", func(req *types.RecipeRequest) { req.Difficulty = "EXTREME" }, "difficulty"},
		{"empty step name", func(req *types.RecipeRequest) { req.Steps[1].StepName = "" }, "step_name"},
		{"empty ingredient name", func(req *types.RecipeRequest) { req.Ingredients[0].IngredientName = "" }, "ingredient_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupRecipeTest(t)
			req := f.request("Broken", "One", "Two")
			tt.mutate(&req)

			_, err := f.svc.Create(context.Background(), &types.CreateRecipeInput{RecipeRequest: req, AuthorID: f.author.ID})

			require.ErrorIs(t, err, service.ErrValidation)
			var verr *service.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.Zero(t, countRows(t, f.db, &model.Recipe{}))
			assert.Zero(t, countRows(t, f.db, &model.Step{}))
			assert.Zero(t, countRows(t, f.db, &model.Ingredient{}))
		})
	}
}

func TestGetOne(t *testing.T) {
	f := setupRecipeTest(t)
	created := f.create(t, f.request("Stew", "Brown", "Braise"))

	got, err := f.svc.GetOne(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, []string{"Brown", "Braise"}, stepNames(got.Steps))

	_, err = f.svc.GetOne(context.Background(), created.ID+100)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestUpdateRecipe_NotFound(t *testing.T) {
	f := setupRecipeTest(t)
	req := f.request("Nothing", "Step")

	_, err := f.svc.Update(context.Background(), 42, &req)

	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestUpdateRecipe_UnknownTopic(t *testing.T) {
	f := setupRecipeTest(t)
	created := f.create(t, f.request("Soup", "Boil"))
	req := f.request("Soup", "Boil")
	req.TopicID = 999

	_, err := f.svc.Update(context.Background(), created.ID, &req)

	assert.ErrorIs(t, err, service.ErrInvalidRequest)
}

func TestUpdateRecipe_ScalarFields(t *testing.T) {
	f := setupRecipeTest(t)
	created := f.create(t, f.request("Soup", "Boil"))
	other := testhelpers.CreateTopic(t, f.db, "Mains")
	link := "https://cdn.example.com/soup.png"

	req := f.request("Better Soup", "Boil")
	req.Description = "Now with herbs"
	req.CookingTime = 45
	req.Difficulty = "HARD"
	req.TopicID = other.ID
	req.PreviewImageLink = &link

	result, err := f.svc.Update(context.Background(), created.ID, &req)
	require.NoError(t, err)
	assert.Equal(t, created.ID, result.ID)
	assert.Equal(t, int64(1), result.RowsAffected)

	got, err := f.svc.GetOne(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Better Soup", got.Title)
	assert.Equal(t, "Now with herbs", got.Description)
	assert.Equal(t, 45, got.CookingTime)
	assert.Equal(t, model.DifficultyHard, got.Difficulty)
	assert.Equal(t, "Mains", got.Topic.Name)
	require.NotNil(t, got.PreviewImageLink)
	assert.Equal(t, link, *got.PreviewImageLink)
	assert.Equal(t, f.author.ID, got.Author.ID)
}

func TestUpdateRecipe_PreservesIdentityAndOrder(t *testing.T) {
	f := setupRecipeTest(t)
	created := f.create(t, f.request("Bread", "Mix", "Knead", "Bake"))
	mix, knead, bake := created.Steps[0], created.Steps[1], created.Steps[2]

	// drop the middle step and insert two new ones in its place
	req := f.request("Bread")
	req.Steps = []types.StepSpec{
		{ID: &mix.ID, StepName: mix.StepName, StepDescription: mix.StepDescription},
		{StepName: "Proof", StepDescription: "one hour"},
		{StepName: "Shape", StepDescription: "into a loaf"},
		{ID: &bake.ID, StepName: bake.StepName, StepDescription: bake.StepDescription},
	}
	salt := created.Ingredients[0]
	req.Ingredients = []types.IngredientSpec{
		{ID: &salt.ID, IngredientName: salt.IngredientName, IngredientAmount: "2 tsp"},
	}

	_, err := f.svc.Update(context.Background(), created.ID, &req)
	require.NoError(t, err)

	got, err := f.svc.GetOne(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mix", "Proof", "Shape", "Bake"}, stepNames(got.Steps))
	assert.Equal(t, mix.ID, got.Steps[0].ID)
	assert.Equal(t, bake.ID, got.Steps[3].ID)
	assert.Equal(t, mix.Position, got.Steps[0].Position)
	assert.Equal(t, bake.Position, got.Steps[3].Position)
	for i := 1; i < len(got.Steps); i++ {
		assert.Less(t, got.Steps[i-1].Position, got.Steps[i].Position)
	}

	var deleted int64
	require.NoError(t, f.db.Model(&model.Step{}).Where("id = ?", knead.ID).Count(&deleted).Error)
	assert.Zero(t, deleted)

	require.Len(t, got.Ingredients, 1)
	assert.Equal(t, salt.ID, got.Ingredients[0].ID)
	assert.Equal(t, "2 tsp", got.Ingredients[0].IngredientAmount)
}

func TestUpdateRecipe_Idempotent(t *testing.T) {
	f := setupRecipeTest(t)
	created := f.create(t, f.request("Salad", "Wash", "Toss"))

	req := f.request("Salad")
	for _, s := range created.Steps {
		id := s.ID
		req.Steps = append(req.Steps, types.StepSpec{ID: &id, StepName: s.StepName, StepDescription: s.StepDescription})
	}
	req.Ingredients = nil
	for _, i := range created.Ingredients {
		id := i.ID
		req.Ingredients = append(req.Ingredients, types.IngredientSpec{ID: &id, IngredientName: i.IngredientName, IngredientAmount: i.IngredientAmount})
	}

	stepWrites := countWrites(t, f.db, "steps")
	ingredientWrites := countWrites(t, f.db, "ingredients")

	_, err := f.svc.Update(context.Background(), created.ID, &req)
	require.NoError(t, err)
	_, err = f.svc.Update(context.Background(), created.ID, &req)
	require.NoError(t, err)

	assert.Zero(t, *stepWrites)
	assert.Zero(t, *ingredientWrites)
}

// keepSpecs builds an update request that restates every stored child of recipe.
func keepSpecs(f *recipeFixture, recipe *model.Recipe) types.RecipeRequest {
	req := f.request(recipe.Title)
	req.Description = recipe.Description
	for _, s := range recipe.Steps {
		id := s.ID
		req.Steps = append(req.Steps, types.StepSpec{ID: &id, StepName: s.StepName, StepDescription: s.StepDescription})
	}
	req.Ingredients = nil
	for _, i := range recipe.Ingredients {
		id := i.ID
		req.Ingredients = append(req.Ingredients, types.IngredientSpec{ID: &id, IngredientName: i.IngredientName, IngredientAmount: i.IngredientAmount})
	}
	return req
}

func TestUpdateRecipe_DeletingFirstStepLeavesOthersUntouched(t *testing.T) {
	f := setupRecipeTest(t)
	created := f.create(t, f.request("Bread", "Mix", "Knead", "Bake"))
	knead, bake := created.Steps[1], created.Steps[2]

	req := keepSpecs(f, created)
	req.Steps = req.Steps[1:]

	var stepUpdates int
	err := f.db.Callback().Update().After("gorm:update").Register("test:count_step_updates", func(tx *gorm.DB) {
		if tx.Statement.Table == "steps" && tx.Error == nil {
			stepUpdates++
		}
	})
	require.NoError(t, err)
	stepWrites := countWrites(t, f.db, "steps")

	deletesBefore := childWrites(t, "steps", "delete")
	_, err = f.svc.Update(context.Background(), created.ID, &req)
	require.NoError(t, err)

	assert.Equal(t, deletesBefore+1, childWrites(t, "steps", "delete"))
	assert.Zero(t, stepUpdates)
	assert.Equal(t, 1, *stepWrites, "only the delete of the first step")

	got, err := f.svc.GetOne(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Knead", "Bake"}, stepNames(got.Steps))
	assert.Equal(t, knead.ID, got.Steps[0].ID)
	assert.Equal(t, knead.Position, got.Steps[0].Position)
	assert.Equal(t, bake.Position, got.Steps[1].Position)
}

func TestUpdateRecipe_InvalidPayloadLeavesRecipeUnchanged(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(req *types.RecipeRequest)
		field string
	}{
		{"zero cooking time", func(req *types.RecipeRequest) { req.CookingTime = 0 }, "cooking_time"},
		{"empty step name", func(req *types.RecipeRequest) {
			req.Steps = append(req.Steps, types.StepSpec{StepDescription: "nameless"})
		}, "step_name"},
		{"empty ingredient name", func(req *types.RecipeRequest) {
			req.Ingredients[0].IngredientName = ""
		}, "ingredient_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupRecipeTest(t)
			created := f.create(t, f.request("Curry", "Fry", "Simmer"))

			req := keepSpecs(f, created)
			req.Title = "Renamed"
			req.Steps = req.Steps[1:]
			tt.edit(&req)

			_, err := f.svc.Update(context.Background(), created.ID, &req)
			require.ErrorIs(t, err, service.ErrValidation)
			var verr *service.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)

			got, err := f.svc.GetOne(context.Background(), created.ID)
			require.NoError(t, err)
			assert.Equal(t, "Curry", got.Title)
			assert.Equal(t, 30, got.CookingTime)
			assert.Equal(t, []string{"Fry", "Simmer"}, stepNames(got.Steps))
			require.Len(t, got.Ingredients, 2)
			assert.Equal(t, "Salt", got.Ingredients[0].IngredientName)
		})
	}
}

func TestUpdateRecipe_RollsBackChildWrites(t *testing.T) {
	f := setupRecipeTest(t)
	created := f.create(t, f.request("Curry", "Fry", "Simmer"))

	err := f.db.Callback().Update().Before("gorm:update").Register("test:fail_recipe_update", func(tx *gorm.DB) {
		if tx.Statement.Table == "recipes" {
			_ = tx.AddError(errors.New("forced failure"))
		}
	})
	require.NoError(t, err)

	req := f.request("Curry", "Only step")
	req.Ingredients = []types.IngredientSpec{{IngredientName: "Chili", IngredientAmount: "3"}}
	deletesBefore := childWrites(t, "steps", "delete")

	_, err = f.svc.Update(context.Background(), created.ID, &req)
	require.ErrorIs(t, err, service.ErrTransactionFailure)
	assert.Contains(t, err.Error(), "forced failure")
	// rolled back writes are not counted
	assert.Equal(t, deletesBefore, childWrites(t, "steps", "delete"))

	got, err := f.svc.GetOne(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fry", "Simmer"}, stepNames(got.Steps))
	assert.Equal(t, created.Steps[0].ID, got.Steps[0].ID)
	require.Len(t, got.Ingredients, 2)
	assert.Equal(t, "Salt", got.Ingredients[0].IngredientName)
}

func TestUpdateRecipe_UnknownChildID(t *testing.T) {
	f := setupRecipeTest(t)
	created := f.create(t, f.request("Pie", "Roll"))
	bogus := uint(9999)

	req := f.request("Pie")
	req.Steps = []types.StepSpec{{ID: &bogus, StepName: "Roll"}}

	t.Run("strict", func(t *testing.T) {
		f.svc.WithStrictChildIDs(true)
		defer f.svc.WithStrictChildIDs(false)

		_, err := f.svc.Update(context.Background(), created.ID, &req)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("lenient", func(t *testing.T) {
		_, err := f.svc.Update(context.Background(), created.ID, &req)
		require.NoError(t, err)

		got, err := f.svc.GetOne(context.Background(), created.ID)
		require.NoError(t, err)
		require.Len(t, got.Steps, 1)
		assert.NotEqual(t, bogus, got.Steps[0].ID)
		assert.Equal(t, "Roll", got.Steps[0].StepName)
	})
}

func seedRecipes(t *testing.T, f *recipeFixture, n int, difficulty model.Difficulty) []*model.Recipe {
	t.Helper()
	recipes := make([]*model.Recipe, n)
	for i := range recipes {
		recipes[i] = testhelpers.CreateRecipe(t, f.db, f.author.ID, f.topic.ID, fmt.Sprintf("%s recipe %d", difficulty, i), difficulty)
	}
	return recipes
}

func recipeIDs(recipes []*model.Recipe) []uint {
	ids := make([]uint, len(recipes))
	for i, r := range recipes {
		ids[i] = r.ID
	}
	return ids
}

func TestList_Pagination(t *testing.T) {
	f := setupRecipeTest(t)
	all := seedRecipes(t, f, 12, model.DifficultyMedium)

	page, err := f.svc.List(context.Background(), types.ListRecipesParams{Page: 2, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, recipeIDs(all[5:10]), recipeIDs(page.Recipes))
	assert.Equal(t, int64(12), page.Total)

	last, err := f.svc.List(context.Background(), types.ListRecipesParams{Page: 3, Limit: 5})
	require.NoError(t, err)
	assert.Len(t, last.Recipes, 2)

	beyond, err := f.svc.List(context.Background(), types.ListRecipesParams{Page: 4, Limit: 5})
	require.NoError(t, err)
	assert.Empty(t, beyond.Recipes)
}

func TestList_Defaults(t *testing.T) {
	f := setupRecipeTest(t)
	seedRecipes(t, f, 12, model.DifficultyEasy)

	result, err := f.svc.List(context.Background(), types.ListRecipesParams{})
	require.NoError(t, err)
	assert.Len(t, result.Recipes, service.DefaultPageLimit)
}

func TestList_Filters(t *testing.T) {
	f := setupRecipeTest(t)
	soup := testhelpers.CreateRecipe(t, f.db, f.author.ID, f.topic.ID, "Tomato Soup", model.DifficultyEasy)
	mains := testhelpers.CreateTopic(t, f.db, "Mains")
	other := testhelpers.CreateUser(t, f.db, "sous")
	steak := testhelpers.CreateRecipe(t, f.db, other.ID, mains.ID, "Steak", model.DifficultyHard)

	tests := []struct {
		name   string
		params types.ListRecipesParams
		want   []uint
	}{
		{"search matches title case-insensitively", types.ListRecipesParams{Search: "tomato"}, []uint{soup.ID}},
		{"search excludes non matching", types.ListRecipesParams{Search: "pasta"}, []uint{}},
		{"search matches description", types.ListRecipesParams{Search: "HOW TO MAKE STEAK"}, []uint{steak.ID}},
		{"percent is literal", types.ListRecipesParams{Search: "%"}, []uint{}},
		{"underscore is literal", types.ListRecipesParams{Search: "t_m"}, []uint{}},
		{"backslash is literal", types.ListRecipesParams{Search: `\`}, []uint{}},
		{"topic", types.ListRecipesParams{TopicID: &mains.ID}, []uint{steak.ID}},
		{"difficulty", types.ListRecipesParams{Difficulty: "EASY"}, []uint{soup.ID}},
		{"author", types.ListRecipesParams{UserID: &other.ID}, []uint{steak.ID}},
		{"combined filters must all match", types.ListRecipesParams{UserID: &other.ID, Difficulty: "EASY"}, []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := f.svc.List(context.Background(), tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, recipeIDs(result.Recipes))
			// total is the size of the whole collection whatever the filter
			assert.Equal(t, int64(2), result.Total)
		})
	}
}

func TestList_SearchIsUnicodeCaseInsensitive(t *testing.T) {
	f := setupRecipeTest(t)
	eclair := testhelpers.CreateRecipe(t, f.db, f.author.ID, f.topic.ID, "Éclair", model.DifficultyHard)
	created := f.create(t, f.request("Crème Brûlée", "Torch"))

	result, err := f.svc.List(context.Background(), types.ListRecipesParams{Search: "éclair"})
	require.NoError(t, err)
	assert.Equal(t, []uint{eclair.ID}, recipeIDs(result.Recipes))

	result, err = f.svc.List(context.Background(), types.ListRecipesParams{Search: "CRÈME"})
	require.NoError(t, err)
	assert.Equal(t, []uint{created.ID}, recipeIDs(result.Recipes))

	// renamed recipes are found under the new title only
	req := keepSpecs(f, created)
	req.Title = "Île Flottante"
	req.Description = "Poached meringue on custard"
	_, err = f.svc.Update(context.Background(), created.ID, &req)
	require.NoError(t, err)

	result, err = f.svc.List(context.Background(), types.ListRecipesParams{Search: "île"})
	require.NoError(t, err)
	assert.Equal(t, []uint{created.ID}, recipeIDs(result.Recipes))
	result, err = f.svc.List(context.Background(), types.ListRecipesParams{Search: "brûlée"})
	require.NoError(t, err)
	assert.Empty(t, result.Recipes)
}

func TestList_InvalidDifficulty(t *testing.T) {
	f := setupRecipeTest(t)

	_, err := f.svc.List(context.Background(), types.ListRecipesParams{Difficulty: "easy-ish"})

	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestNewest(t *testing.T) {
	f := setupRecipeTest(t)
	all := seedRecipes(t, f, 5, model.DifficultyEasy)

	newest, err := f.svc.Newest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []uint{all[4].ID, all[3].ID, all[2].ID}, recipeIDs(newest))
	for _, r := range newest {
		assert.NotEmpty(t, r.Steps)
		assert.NotNil(t, r.Author)
	}
}

func TestTodaySelection(t *testing.T) {
	f := setupRecipeTest(t)

	empty, err := f.svc.TodaySelection(context.Background())
	require.NoError(t, err)
	assert.Empty(t, empty)

	seedRecipes(t, f, 8, model.DifficultyMedium)
	today, err := f.svc.TodaySelection(context.Background())
	require.NoError(t, err)
	require.Len(t, today, 5)

	seen := make(map[uint]bool)
	for _, r := range today {
		assert.False(t, seen[r.ID], "recipe %d sampled twice", r.ID)
		seen[r.ID] = true
		assert.NotNil(t, r.Topic)
	}
}

func TestTodaySelection_DrawsAfreshEachCall(t *testing.T) {
	f := setupRecipeTest(t)
	seedRecipes(t, f, 8, model.DifficultyEasy)

	// 56 possible sets of 5 out of 8; twenty identical draws would mean caching
	selections := make(map[string]bool)
	for i := 0; i < 20; i++ {
		today, err := f.svc.TodaySelection(context.Background())
		require.NoError(t, err)
		require.Len(t, today, 5)
		ids := recipeIDs(today)
		sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
		selections[fmt.Sprint(ids)] = true
	}
	assert.Greater(t, len(selections), 1)
}

func TestFeatured(t *testing.T) {
	f := setupRecipeTest(t)
	seedRecipes(t, f, 2, model.DifficultyEasy)
	seedRecipes(t, f, 5, model.DifficultyMedium)

	featured, err := f.svc.Featured(context.Background())
	require.NoError(t, err)
	assert.Len(t, featured.Easy, 2)
	assert.Len(t, featured.Medium, 3)
	assert.Len(t, featured.Hard, 0)

	for _, r := range featured.Medium {
		assert.Equal(t, model.DifficultyMedium, r.Difficulty)
	}
}
