package model

// Event 一条沟通事件记录 emotions/risks 以 JSON 文本形式落库
type Event struct {
	ID           uint64  `gorm:"primaryKey"`
	UserID       uint64  `gorm:"index:idx_user_id;not null"`
	Score        int     `gorm:"type:int;not null"`
	EmotionsJSON string  `gorm:"type:text"`
	RisksJSON    string  `gorm:"type:text"`
	CreatedAt    float64 `gorm:"type:double;not null;autoCreateTime:false"`
}

func (Event) TableName() string {
	return "events"
}
