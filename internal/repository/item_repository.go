package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の取得だけを約束。カート/注文からは読み取り専用。
type ItemRepository interface {
	ListAll(ctx context.Context) ([]model.Item, error)
	FindByID(ctx context.Context, id int64) (model.Item, error)
	//同名の商品をまとめて返す（0件でもエラーにしない）
	ListByName(ctx context.Context, name string) ([]model.Item, error)

	Create(ctx context.Context, item model.Item) (model.Item, error)
}
