package service

import (
	"ImpulseGuard/internal/api/dto"
	"ImpulseGuard/internal/model"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/goccy/go-json"
)

const (
	timelineLimit     = 20
	timelineRiskLimit = 3
	dailyTrendLimit   = 14
	weeklyTrendLimit  = 6
	monthlyTrendLimit = 6
)

// 风险分级阈值 count>=8 为 critical count>=4 为 super-risky 其余为 warning
const (
	RiskLevelWarning    = "warning"
	RiskLevelSuperRisky = "super-risky"
	RiskLevelCritical   = "critical"

	riskCountCritical   = 8
	riskCountSuperRisky = 4
)

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// decodeTagMap 反序列化落库的标签映射 损坏或为空时返回空映射
func decodeTagMap(raw string) map[string]int {
	tags := make(map[string]int)
	if raw == "" {
		return tags
	}
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return make(map[string]int)
	}
	return tags
}

// BuildSummary 基础汇总 平均分保留1位小数 情绪按标签逐项求和
func BuildSummary(events []*model.Event) *dto.SummaryDTO {
	if len(events) == 0 {
		return &dto.SummaryDTO{
			AvgScore:    0.0,
			Events:      0,
			TopEmotions: make(map[string]int),
		}
	}

	total := 0
	emotions := make(map[string]int)
	for _, e := range events {
		total += e.Score
		for tag, v := range decodeTagMap(e.EmotionsJSON) {
			emotions[tag] += v
		}
	}

	return &dto.SummaryDTO{
		AvgScore:    round1(float64(total) / float64(len(events))),
		Events:      len(events),
		TopEmotions: emotions,
	}
}

// BuildFullSummary 增强汇总 输入必须按创建时间升序
func BuildFullSummary(events []*model.Event) *dto.FullSummaryDTO {
	summary := BuildSummary(events)
	return &dto.FullSummaryDTO{
		AvgScore:    summary.AvgScore,
		Events:      summary.Events,
		TopEmotions: summary.TopEmotions,
		Timeline:    buildTimeline(events),
		Risks:       buildRiskSummary(events),
		Trends:      buildTrends(events),
	}
}

// buildTimeline 取最近 timelineLimit 条事件 保持时间升序
func buildTimeline(events []*model.Event) []*dto.TimelineEventDTO {
	start := 0
	if len(events) > timelineLimit {
		start = len(events) - timelineLimit
	}

	timeline := make([]*dto.TimelineEventDTO, 0, len(events)-start)
	for _, e := range events[start:] {
		description := "Sent"
		if e.Score < 50 {
			description = "Rewritten"
		}
		timeline = append(timeline, &dto.TimelineEventDTO{
			ID:            e.ID,
			Timestamp:     int64(e.CreatedAt * 1000),
			BehaviorScore: e.Score,
			Emotions:      decodeTagMap(e.EmotionsJSON),
			Risks:         topRiskTags(decodeTagMap(e.RisksJSON), timelineRiskLimit),
			Description:   description,
		})
	}
	return timeline
}

// topRiskTags 按次数降序取前 limit 个非零风险标签 次数相同时按标签名升序
func topRiskTags(risks map[string]int, limit int) []string {
	type tagCount struct {
		tag   string
		count int
	}
	tags := make([]tagCount, 0, len(risks))
	for tag, count := range risks {
		if count > 0 {
			tags = append(tags, tagCount{tag: tag, count: count})
		}
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].count != tags[j].count {
			return tags[i].count > tags[j].count
		}
		return tags[i].tag < tags[j].tag
	})
	if len(tags) > limit {
		tags = tags[:limit]
	}

	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.tag)
	}
	return out
}

// RiskLevel 风险分级 对 count 单调
func RiskLevel(count int) string {
	switch {
	case count >= riskCountCritical:
		return RiskLevelCritical
	case count >= riskCountSuperRisky:
		return RiskLevelSuperRisky
	default:
		return RiskLevelWarning
	}
}

// buildRiskSummary 按标签汇总全量风险次数 按次数降序输出
func buildRiskSummary(events []*model.Event) []*dto.RiskAssessmentDTO {
	totals := make(map[string]int)
	for _, e := range events {
		for tag, count := range decodeTagMap(e.RisksJSON) {
			totals[tag] += count
		}
	}

	risks := make([]*dto.RiskAssessmentDTO, 0, len(totals))
	for tag, count := range totals {
		risks = append(risks, &dto.RiskAssessmentDTO{
			Category:    tag,
			Level:       RiskLevel(count),
			Count:       count,
			Description: fmt.Sprintf("Detected %d occurrences of %s", count, tag),
		})
	}
	sort.Slice(risks, func(i, j int) bool {
		if risks[i].Count != risks[j].Count {
			return risks[i].Count > risks[j].Count
		}
		return risks[i].Category < risks[j].Category
	})
	return risks
}

// buildTrends 三种独立口径的分桶 桶值为桶内平均分
func buildTrends(events []*model.Event) dto.TrendsDTO {
	daily := bucketScores(events, dailyTrendLimit, func(t time.Time) string {
		return t.Format("2006-01-02")
	})
	weekly := bucketScores(events, weeklyTrendLimit, func(t time.Time) string {
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	})
	monthly := bucketScores(events, monthlyTrendLimit, func(t time.Time) string {
		return t.Format("2006-01")
	})

	trends := dto.TrendsDTO{
		Daily:   make([]*dto.TrendPointDTO, 0, len(daily)),
		Weekly:  make([]*dto.TrendPointDTO, 0, len(weekly)),
		Monthly: make([]*dto.TrendPointDTO, 0, len(monthly)),
	}
	for _, p := range daily {
		trends.Daily = append(trends.Daily, &dto.TrendPointDTO{Date: p.label, Score: p.score})
	}
	for _, p := range weekly {
		trends.Weekly = append(trends.Weekly, &dto.TrendPointDTO{Week: p.label, Score: p.score})
	}
	for _, p := range monthly {
		trends.Monthly = append(trends.Monthly, &dto.TrendPointDTO{Month: p.label, Score: p.score})
	}
	return trends
}

type bucketPoint struct {
	label string
	score float64
}

// bucketScores 按标签分桶求平均 标签升序排列后保留最近 limit 个桶
// 三种标签格式的字典序均与时间序一致
func bucketScores(events []*model.Event, limit int, label func(time.Time) string) []bucketPoint {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, e := range events {
		key := label(time.Unix(int64(e.CreatedAt), 0))
		sums[key] += e.Score
		counts[key]++
	}

	labels := make([]string, 0, len(sums))
	for key := range sums {
		labels = append(labels, key)
	}
	sort.Strings(labels)
	if len(labels) > limit {
		labels = labels[len(labels)-limit:]
	}

	points := make([]bucketPoint, 0, len(labels))
	for _, key := range labels {
		points = append(points, bucketPoint{
			label: key,
			score: round1(float64(sums[key]) / float64(counts[key])),
		})
	}
	return points
}
