package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// カートの明細。1個追加するごとに1行（同じ商品でも行を分ける）。
// 追加時点の価格を必ず保存。
type CartEntry struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID int64 `gorm:"not null;index" json:"cart_id"`
	ItemID int64 `gorm:"not null;index" json:"item_id"`

	Price decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
