package repository

import (
	"context"

	"app/internal/domain/model"

	"github.com/shopspring/decimal"
)

type CartRepository interface {
	Create(ctx context.Context, cart model.Cart) (model.Cart, error)
	FindByUserID(ctx context.Context, userID int64) (model.Cart, error)
	//行ロック付きで取得（同一ユーザーの同時更新を直列化する）
	FindByUserIDForUpdate(ctx context.Context, userID int64) (model.Cart, error)
	UpdateTotal(ctx context.Context, cartID int64, total decimal.Decimal) error
}
