package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 提出時点のカートのスナップショット。作成後は変更しない。
type Order struct {
	ID     int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Number string `gorm:"type:varchar(64);uniqueIndex;not null" json:"number"`
	UserID int64  `gorm:"not null;index" json:"user_id"`

	Total decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
