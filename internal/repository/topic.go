package repository

import (
	"context"

	"github.com/pageza/cookbook/backend/internal/logger"
	"github.com/pageza/cookbook/backend/internal/model"
	"gorm.io/gorm"
)

type TopicRepo interface {
	Create(ctx context.Context, tx *gorm.DB, topic *model.Topic) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*model.Topic, error)
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*model.Topic, error)
	List(ctx context.Context, tx *gorm.DB) ([]*model.Topic, error)
}

type topicRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTopicRepo(db *gorm.DB, baseLog *logger.Logger) TopicRepo {
	return &topicRepo{db: db, log: baseLog.With("repo", "TopicRepo")}
}

func (r *topicRepo) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx)
}

func (r *topicRepo) Create(ctx context.Context, tx *gorm.DB, topic *model.Topic) error {
	return r.conn(ctx, tx).Create(topic).Error
}

func (r *topicRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*model.Topic, error) {
	var topic model.Topic
	if err := r.conn(ctx, tx).First(&topic, id).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *topicRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*model.Topic, error) {
	var topic model.Topic
	if err := r.conn(ctx, tx).Where("name = ?", name).First(&topic).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *topicRepo) List(ctx context.Context, tx *gorm.DB) ([]*model.Topic, error) {
	var topics []*model.Topic
	if err := r.conn(ctx, tx).Order("name ASC").Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}
