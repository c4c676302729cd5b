package dto

// EventDTO 事件上报 emotions/risks 缺省为空映射
type EventDTO struct {
	Score    int            `json:"score" validate:"gte=0,lte=100"`
	Emotions map[string]int `json:"emotions"`
	Risks    map[string]int `json:"risks"`
}

// SeedRespDTO 演示数据生成返回
type SeedRespDTO struct {
	Ok     bool `json:"ok"`
	Seeded int  `json:"seeded"`
}
