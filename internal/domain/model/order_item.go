package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderItem struct {
	ID      int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID int64 `gorm:"not null;index" json:"order_id"`
	ItemID  int64 `gorm:"not null;index" json:"item_id"`

	//提出時点のスナップショット
	NameSnapshot        string          `gorm:"type:varchar(255);not null" json:"name_snapshot"`
	PriceSnapshot       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price_snapshot"`
	DescriptionSnapshot string          `gorm:"type:text" json:"description_snapshot"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
