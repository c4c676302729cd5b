package dto

// SummaryDTO 基础汇总
type SummaryDTO struct {
	AvgScore    float64        `json:"avgScore"`
	Events      int            `json:"events"`
	TopEmotions map[string]int `json:"topEmotions"`
}

// TimelineEventDTO 时间线上的单个事件
type TimelineEventDTO struct {
	ID            uint64         `json:"id"`
	Timestamp     int64          `json:"timestamp"` // UNIX 毫秒
	BehaviorScore int            `json:"behaviorScore"`
	Emotions      map[string]int `json:"emotions"`
	Risks         []string       `json:"risks"` // 按次数降序的前3个风险标签
	Description   string         `json:"description"`
}

// RiskAssessmentDTO 单类风险的汇总评估
type RiskAssessmentDTO struct {
	Category    string `json:"category"`
	Level       string `json:"level"` // warning | super-risky | critical
	Count       int    `json:"count"`
	Description string `json:"description"`
}

// TrendPointDTO 单个时间桶的平均分
type TrendPointDTO struct {
	Date  string  `json:"date,omitempty"`
	Week  string  `json:"week,omitempty"`
	Month string  `json:"month,omitempty"`
	Score float64 `json:"score"`
}

// TrendsDTO 三种独立口径的分数趋势
type TrendsDTO struct {
	Daily   []*TrendPointDTO `json:"daily"`
	Weekly  []*TrendPointDTO `json:"weekly"`
	Monthly []*TrendPointDTO `json:"monthly"`
}

// FullSummaryDTO 增强汇总 是基础汇总的超集
type FullSummaryDTO struct {
	AvgScore    float64              `json:"avgScore"`
	Events      int                  `json:"events"`
	TopEmotions map[string]int       `json:"topEmotions"`
	Timeline    []*TimelineEventDTO  `json:"timeline"`
	Risks       []*RiskAssessmentDTO `json:"risks"`
	Trends      TrendsDTO            `json:"trends"`
}
