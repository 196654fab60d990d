package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pageza/cookbook/backend/internal/logger"
	"github.com/pageza/cookbook/backend/internal/model"
	"github.com/pageza/cookbook/backend/internal/repository"
	"gorm.io/gorm"
)

// ErrTopicExists is returned when a topic with the same name is already stored.
var ErrTopicExists = errors.New("topic already exists")

// TopicService manages the topics recipes are filed under
type TopicService struct {
	topics repository.TopicRepo
	log    *logger.Logger
}

// NewTopicService creates a new TopicService instance
func NewTopicService(db *gorm.DB, baseLog *logger.Logger) *TopicService {
	return &TopicService{
		topics: repository.NewTopicRepo(db, baseLog),
		log:    baseLog.With("service", "TopicService"),
	}
}

func (s *TopicService) List(ctx context.Context) ([]*model.Topic, error) {
	return s.topics.List(ctx, nil)
}

func (s *TopicService) Get(ctx context.Context, id uint) (*model.Topic, error) {
	topic, err := s.topics.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: topic %d", ErrNotFound, id)
		}
		return nil, err
	}
	return topic, nil
}

// Create stores a topic under the trimmed name.
func (s *TopicService) Create(ctx context.Context, name string) (*model.Topic, error) {
	topic := &model.Topic{Name: strings.TrimSpace(name)}
	if err := topic.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.topics.GetByName(ctx, nil, topic.Name); err == nil {
		return nil, fmt.Errorf("%w: %q", ErrTopicExists, topic.Name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup topic: %w", err)
	}
	if err := s.topics.Create(ctx, nil, topic); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %q", ErrTopicExists, topic.Name)
		}
		return nil, fmt.Errorf("create topic: %w", err)
	}
	s.log.Info("topic created", "topic_id", topic.ID, "name", topic.Name)
	return topic, nil
}
