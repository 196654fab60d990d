package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pageza/cookbook/backend/internal/logger"
	"github.com/pageza/cookbook/backend/internal/model"
	"github.com/pageza/cookbook/backend/internal/repository"
	"github.com/pageza/cookbook/backend/internal/types"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// AuthService registers users and logs them in
type AuthService struct {
	db     *gorm.DB
	users  repository.UserRepo
	tokens ITokenService
	log    *logger.Logger
}

func NewAuthService(db *gorm.DB, tokens ITokenService, baseLog *logger.Logger) *AuthService {
	return &AuthService{
		db:     db,
		users:  repository.NewUserRepo(db, baseLog),
		tokens: tokens,
		log:    baseLog.With("service", "AuthService"),
	}
}

// Register creates a user with role USER and returns it with a fresh token.
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*model.User, string, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, "", &ValidationError{Field: "username", Message: "must not be empty"}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         "USER",
		PasswordHash: string(hashedPassword),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.users.GetByUsername(ctx, tx, username); err == nil {
			return ErrUsernameTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return s.users.Create(ctx, tx, user)
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	s.log.Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, token, nil
}

// Login checks the password and issues a token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	user, err := s.users.GetByUsername(ctx, nil, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}
