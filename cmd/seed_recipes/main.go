package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pageza/cookbook/backend/config"
	"github.com/pageza/cookbook/backend/internal/database"
	"github.com/pageza/cookbook/backend/internal/logger"
	"github.com/pageza/cookbook/backend/internal/model"
	"github.com/pageza/cookbook/backend/internal/service"
	"github.com/pageza/cookbook/backend/internal/types"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type seedOptions struct {
	password string
	migrate  bool
}

func newRootCommand() *cobra.Command {
	opts := &seedOptions{}

	cmd := &cobra.Command{
		Use:           "seed_recipes",
		Short:         "Fill the database with sample users, topics and recipes",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.IsProduction() {
				return fmt.Errorf("refusing to seed a production database")
			}
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logg, err := logger.New(cfg.LogMode)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer logg.Sync()

			db, err := database.Open(cfg, logg)
			if err != nil {
				return err
			}
			if opts.migrate {
				if err := database.Migrate(db); err != nil {
					return err
				}
			}

			created, err := seed(cmd.Context(), db, logg, opts.password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d recipes\n", created)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.password, "password", "password123", "password of every seeded user")
	cmd.Flags().BoolVar(&opts.migrate, "migrate", true, "migrate the schema before seeding")
	return cmd
}

// seed creates the sample users and topics if missing, then adds every
// sample recipe whose title is not taken yet.
func seed(ctx context.Context, db *gorm.DB, logg *logger.Logger, password string) (int, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	users := make(map[string]uint, len(sampleUsers))
	for _, u := range sampleUsers {
		user := model.User{Username: u.username}
		err := db.WithContext(ctx).
			Where(model.User{Username: u.username}).
			Attrs(model.User{FirstName: u.firstName, LastName: u.lastName, Role: "USER", PasswordHash: string(hash)}).
			FirstOrCreate(&user).Error
		if err != nil {
			return 0, fmt.Errorf("seed user %s: %w", u.username, err)
		}
		users[u.username] = user.ID
	}

	topics := make(map[string]uint, len(sampleTopics))
	for _, name := range sampleTopics {
		topic := model.Topic{Name: name}
		if err := db.WithContext(ctx).Where(model.Topic{Name: name}).FirstOrCreate(&topic).Error; err != nil {
			return 0, fmt.Errorf("seed topic %s: %w", name, err)
		}
		topics[name] = topic.ID
	}

	recipes := service.NewRecipeService(db, logg)
	created := 0
	for _, r := range sampleRecipes {
		var existing int64
		if err := db.WithContext(ctx).Model(&model.Recipe{}).Where("title = ?", r.title).Count(&existing).Error; err != nil {
			return created, err
		}
		if existing > 0 {
			continue
		}

		req := types.RecipeRequest{
			Title:       r.title,
			Description: r.description,
			CookingTime: r.cookingTime,
			Difficulty:  string(r.difficulty),
			TopicID:     topics[r.topic],
		}
		for _, s := range r.steps {
			req.Steps = append(req.Steps, types.StepSpec{StepName: s[0], StepDescription: s[1]})
		}
		for _, i := range r.ingredients {
			req.Ingredients = append(req.Ingredients, types.IngredientSpec{IngredientName: i[0], IngredientAmount: i[1]})
		}

		if _, err := recipes.Create(ctx, &types.CreateRecipeInput{RecipeRequest: req, AuthorID: users[r.author]}); err != nil {
			return created, fmt.Errorf("seed recipe %q: %w", r.title, err)
		}
		created++
	}
	return created, nil
}
