package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 1ユーザーにつきカートは1つ（ユーザー作成時に空で作る）
type Cart struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64 `gorm:"not null;uniqueIndex" json:"user_id"`

	//常に明細のpriceの合計と一致させる
	Total decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
