package model

import (
	"time"

	"gorm.io/gorm"
)

// User 사용자 모델
// 인증/세션 처리는 별도 시스템 담당 - 여기서는 카탈로그 표시용 최소 정보만 보관
type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Email string `gorm:"uniqueIndex;not null" json:"email"` // 이메일
	Name  string `gorm:"not null" json:"name"`              // 이름
}

func (User) TableName() string {
	return "users"
}
