package model

import (
	"time"
)

type User struct {
	ID           uint64 `gorm:"primaryKey"`
	Email        string `gorm:"type:varchar(255);uniqueIndex:idx_email;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	ApiToken     string `gorm:"type:varchar(64);uniqueIndex:idx_api_token;not null"`
	CreatedAt    time.Time

	Events []Event `gorm:"foreignKey:UserID;references:ID"`
}

func (User) TableName() string {
	return "users"
}
