package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	//提出順（id昇順）で返す
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	Create(ctx context.Context, order model.Order) (int64, error)
}
