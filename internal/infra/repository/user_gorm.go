package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type UserGormRepository struct {
	db *gorm.DB
}

// DI
func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

// Create はユーザーを新規作成
func (r *UserGormRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return err
	}
	return nil
}

// IDでユーザーを1件取得
func (r *UserGormRepository) FindByID(ctx context.Context, userID int64) (model.User, error) {
	var u model.User

	err := r.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&u).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, repo.ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

// ユーザー名でユーザーを1件取得
func (r *UserGormRepository) FindByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User

	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&u).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, repo.ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}
