package service

import (
	"context"

	"github.com/pageza/cookbook/backend/internal/model"
	"github.com/pageza/cookbook/backend/internal/types"
)

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	Create(ctx context.Context, input *types.CreateRecipeInput) (*model.Recipe, error)
	Update(ctx context.Context, id uint, req *types.RecipeRequest) (*UpdateResult, error)
	GetOne(ctx context.Context, id uint) (*model.Recipe, error)
	List(ctx context.Context, params types.ListRecipesParams) (*ListResult, error)
	Newest(ctx context.Context) ([]*model.Recipe, error)
	TodaySelection(ctx context.Context) ([]*model.Recipe, error)
	Featured(ctx context.Context) (*FeaturedRecipes, error)
}

// ITopicService defines the interface for topic operations
type ITopicService interface {
	List(ctx context.Context) ([]*model.Topic, error)
	Get(ctx context.Context, id uint) (*model.Topic, error)
	Create(ctx context.Context, name string) (*model.Topic, error)
}

// ITokenService issues and validates bearer tokens
type ITokenService interface {
	GenerateToken(user *model.User) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*model.User, string, error)
	Login(ctx context.Context, username, password string) (*model.User, string, error)
}

var (
	_ IAuthService   = (*AuthService)(nil)
	_ IRecipeService = (*RecipeService)(nil)
	_ ITopicService  = (*TopicService)(nil)
	_ ITokenService  = (*TokenService)(nil)
)
