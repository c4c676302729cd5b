package service

import (
	"ImpulseGuard/internal/api/dto"
	"ImpulseGuard/internal/model"
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventRepo 内存实现 按创建时间升序返回
type fakeEventRepo struct {
	events []*model.Event
	nextID uint64
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{nextID: 1}
}

func (f *fakeEventRepo) CreateEvent(_ context.Context, event *model.Event) error {
	event.ID = f.nextID
	f.nextID++
	f.events = append(f.events, event)
	return nil
}

func (f *fakeEventRepo) CreateEvents(ctx context.Context, events []*model.Event) error {
	for _, e := range events {
		if err := f.CreateEvent(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeEventRepo) GetEventsByUserId(_ context.Context, userID uint64) ([]*model.Event, error) {
	out := make([]*model.Event, 0)
	for _, e := range f.events {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].CreatedAt > out[j].CreatedAt; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out, nil
}

func TestEventService_SaveEvent(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)
	ctx := context.Background()

	err := svc.SaveEvent(ctx, 42, &dto.EventDTO{
		Score:    77,
		Emotions: map[string]int{"calm": 2},
	})
	require.NoError(t, err)

	require.Len(t, repo.events, 1)
	event := repo.events[0]
	assert.Equal(t, uint64(42), event.UserID)
	assert.Equal(t, 77, event.Score)
	assert.JSONEq(t, `{"calm":2}`, event.EmotionsJSON)
	// 缺省风险映射序列化为空对象而不是null
	assert.Equal(t, "{}", event.RisksJSON)
	assert.InDelta(t, float64(time.Now().Unix()), event.CreatedAt, 5)
}

func TestEventService_SummaryRoundTrip(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)
	ctx := context.Background()

	for _, score := range []int{10, 20, 90} {
		require.NoError(t, svc.SaveEvent(ctx, 1, &dto.EventDTO{
			Score:    score,
			Emotions: map[string]int{"anger": 1},
		}))
	}
	// 其他用户的事件不计入
	require.NoError(t, svc.SaveEvent(ctx, 2, &dto.EventDTO{Score: 100}))

	summary, err := svc.GetSummary(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 40.0, summary.AvgScore)
	assert.Equal(t, 3, summary.Events)
	assert.Equal(t, map[string]int{"anger": 3}, summary.TopEmotions)

	full, err := svc.GetFullSummary(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 40.0, full.AvgScore)
	assert.Len(t, full.Timeline, 3)
}

func TestEventService_SeedDemoShape(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)
	ctx := context.Background()

	seeded, err := svc.SeedDemo(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, len(repo.events), seeded)

	// 7天 每天3-8条
	assert.GreaterOrEqual(t, seeded, demoDays*demoMinPerDay)
	assert.LessOrEqual(t, seeded, demoDays*demoMaxPerDay)

	now := time.Now()
	earliest := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -(demoDays - 1))

	perDay := make(map[string]int)
	for _, e := range repo.events {
		assert.Equal(t, uint64(7), e.UserID)
		assert.GreaterOrEqual(t, e.Score, demoMinScore)
		assert.LessOrEqual(t, e.Score, demoMaxScore)
		assert.GreaterOrEqual(t, e.CreatedAt, float64(earliest.Unix()))

		emotions := make(map[string]int)
		require.NoError(t, json.Unmarshal([]byte(e.EmotionsJSON), &emotions))
		for tag, v := range emotions {
			assert.Contains(t, demoEmotionTags, tag)
			assert.GreaterOrEqual(t, v, 1)
			assert.LessOrEqual(t, v, 5)
		}

		risks := make(map[string]int)
		require.NoError(t, json.Unmarshal([]byte(e.RisksJSON), &risks))
		for tag, v := range risks {
			assert.Contains(t, demoRiskTags, tag)
			assert.GreaterOrEqual(t, v, 1)
			assert.LessOrEqual(t, v, 3)
		}

		day := time.Unix(int64(e.CreatedAt), 0).Format("2006-01-02")
		perDay[day]++
	}

	assert.Len(t, perDay, demoDays)
	for day, n := range perDay {
		assert.GreaterOrEqual(t, n, demoMinPerDay, "day=%s", day)
		assert.LessOrEqual(t, n, demoMaxPerDay, "day=%s", day)
	}
}
