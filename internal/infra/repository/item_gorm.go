package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewItemGormRepository(db *gorm.DB) *ItemGormRepository {
	return &ItemGormRepository{db: db}
}

// 全商品を一覧取得
func (r *ItemGormRepository) ListAll(ctx context.Context) ([]model.Item, error) {
	var items []model.Item

	if err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.Item{}, err
	}

	return items, nil
}

// IDで商品を1件取得
func (r *ItemGormRepository) FindByID(ctx context.Context, id int64) (model.Item, error) {
	var item model.Item

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&item).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Item{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Item{}, err
	}
	return item, nil
}

// 同名の商品をまとめて取得（0件は空スライス）
func (r *ItemGormRepository) ListByName(ctx context.Context, name string) ([]model.Item, error) {
	var items []model.Item

	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.Item{}, err
	}

	return items, nil
}

// 商品を登録（シード・テスト用）
func (r *ItemGormRepository) Create(ctx context.Context, item model.Item) (model.Item, error) {
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return model.Item{}, err
	}
	return item, nil
}
