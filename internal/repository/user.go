package repository

import (
	"context"

	"github.com/pageza/cookbook/backend/internal/logger"
	"github.com/pageza/cookbook/backend/internal/model"
	"gorm.io/gorm"
)

type UserRepo interface {
	Create(ctx context.Context, tx *gorm.DB, user *model.User) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*model.User, error)
	GetByUsername(ctx context.Context, tx *gorm.DB, username string) (*model.User, error)
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return &userRepo{db: db, log: baseLog.With("repo", "UserRepo")}
}

func (r *userRepo) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx)
}

func (r *userRepo) Create(ctx context.Context, tx *gorm.DB, user *model.User) error {
	return r.conn(ctx, tx).Create(user).Error
}

func (r *userRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*model.User, error) {
	var user model.User
	if err := r.conn(ctx, tx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, tx *gorm.DB, username string) (*model.User, error) {
	var user model.User
	if err := r.conn(ctx, tx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
