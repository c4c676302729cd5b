package service

import (
	"ImpulseGuard/internal/api/dto"
	"ImpulseGuard/internal/model"
	"ImpulseGuard/internal/repository"
	"context"
	"math/rand"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

// 演示数据使用的固定标签集
var (
	demoEmotionTags = []string{"anger", "frustration", "calm", "anxiety"}
	demoRiskTags    = []string{"sarcasm", "threat", "insult"}
)

const (
	demoDays        = 7
	demoMinPerDay   = 3
	demoMaxPerDay   = 8
	demoMinScore    = 20
	demoMaxScore    = 90
)

type EventService interface {
	SaveEvent(ctx context.Context, userID uint64, dto *dto.EventDTO) error
	GetSummary(ctx context.Context, userID uint64) (*dto.SummaryDTO, error)
	GetFullSummary(ctx context.Context, userID uint64) (*dto.FullSummaryDTO, error)
	SeedDemo(ctx context.Context, userID uint64) (int, error)
}

type EventServiceImpl struct {
	eventRepo repository.EventRepo
}

func NewEventService(eventRepo repository.EventRepo) EventService {
	return &EventServiceImpl{
		eventRepo: eventRepo,
	}
}

func (s *EventServiceImpl) SaveEvent(ctx context.Context, userID uint64, eventDTO *dto.EventDTO) error {
	event := &model.Event{}
	err := copier.Copy(event, eventDTO)
	if err != nil {
		return err
	}

	emotionsJSON, err := encodeTagMap(eventDTO.Emotions)
	if err != nil {
		return err
	}
	risksJSON, err := encodeTagMap(eventDTO.Risks)
	if err != nil {
		return err
	}

	event.UserID = userID
	event.EmotionsJSON = emotionsJSON
	event.RisksJSON = risksJSON
	event.CreatedAt = nowEpochSeconds()

	return s.eventRepo.CreateEvent(ctx, event)
}

func (s *EventServiceImpl) GetSummary(ctx context.Context, userID uint64) (*dto.SummaryDTO, error) {
	events, err := s.eventRepo.GetEventsByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	return BuildSummary(events), nil
}

func (s *EventServiceImpl) GetFullSummary(ctx context.Context, userID uint64) (*dto.FullSummaryDTO, error) {
	events, err := s.eventRepo.GetEventsByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	return BuildFullSummary(events), nil
}

// SeedDemo 生成约7天的随机演示事件 每天3-8条 分数20-90
func (s *EventServiceImpl) SeedDemo(ctx context.Context, userID uint64) (int, error) {
	now := time.Now()
	events := make([]*model.Event, 0, demoDays*demoMaxPerDay)

	for day := demoDays - 1; day >= 0; day-- {
		dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
			AddDate(0, 0, -day)
		count := demoMinPerDay + rand.Intn(demoMaxPerDay-demoMinPerDay+1)

		for i := 0; i < count; i++ {
			emotions := make(map[string]int)
			for _, tag := range demoEmotionTags {
				if rand.Intn(2) == 1 {
					emotions[tag] = 1 + rand.Intn(5)
				}
			}
			risks := make(map[string]int)
			for _, tag := range demoRiskTags {
				if n := rand.Intn(4); n > 0 {
					risks[tag] = n
				}
			}

			emotionsJSON, err := encodeTagMap(emotions)
			if err != nil {
				return 0, err
			}
			risksJSON, err := encodeTagMap(risks)
			if err != nil {
				return 0, err
			}

			events = append(events, &model.Event{
				UserID:       userID,
				Score:        demoMinScore + rand.Intn(demoMaxScore-demoMinScore+1),
				EmotionsJSON: emotionsJSON,
				RisksJSON:    risksJSON,
				CreatedAt:    float64(dayStart.Unix()) + float64(rand.Intn(24*3600)),
			})
		}
	}

	if err := s.eventRepo.CreateEvents(ctx, events); err != nil {
		return 0, err
	}
	return len(events), nil
}

// encodeTagMap 序列化标签映射 nil 视作空映射
func encodeTagMap(tags map[string]int) (string, error) {
	if tags == nil {
		tags = make(map[string]int)
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func nowEpochSeconds() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}
