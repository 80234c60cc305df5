package repository

import (
	"context"

	"app/internal/domain/model"

	"github.com/shopspring/decimal"
)

type CartEntryRepository interface {
	//id昇順＝追加順
	ListByCartID(ctx context.Context, cartID int64) ([]model.CartEntry, error)
	// 1個につき1行。qtyが0以下なら何も挿入しない。
	AppendUnits(ctx context.Context, cartID int64, itemID int64, qty int64, price decimal.Decimal) error
	// 最大qty行まで、idの小さい順に削除。削除した行数を返す。
	RemoveUnits(ctx context.Context, cartID int64, itemID int64, qty int64) (int64, error)
	//カートの明細を全削除
	DeleteByCartID(ctx context.Context, cartID int64) error
}
