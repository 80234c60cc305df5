package model

import "github.com/shopspring/decimal"

// カタログ商品。カート/注文からは参照されるだけで変更しない。
type Item struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null;index" json:"name"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Description string          `gorm:"type:text" json:"description"`
}
