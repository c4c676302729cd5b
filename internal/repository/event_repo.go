package repository

import (
	"ImpulseGuard/internal/model"
	"context"

	"gorm.io/gorm"
)

type EventRepo interface {
	CreateEvent(ctx context.Context, event *model.Event) error
	CreateEvents(ctx context.Context, events []*model.Event) error
	// GetEventsByUserId 按创建时间升序返回用户的全部事件
	GetEventsByUserId(ctx context.Context, userID uint64) ([]*model.Event, error)
}

type EventRepoImpl struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return &EventRepoImpl{db: db}
}

func (s *EventRepoImpl) CreateEvent(ctx context.Context, event *model.Event) error {
	result := s.db.WithContext(ctx).Create(event)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (s *EventRepoImpl) CreateEvents(ctx context.Context, events []*model.Event) error {
	if len(events) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(events); result.Error != nil {
			return result.Error
		}
		return nil
	})
}

func (s *EventRepoImpl) GetEventsByUserId(ctx context.Context, userID uint64) ([]*model.Event, error) {
	events := make([]*model.Event, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}
	return events, nil
}
