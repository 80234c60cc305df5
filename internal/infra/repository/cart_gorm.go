package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository と CartEntryRepository の両方を実装する。
type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// カートを新規作成（ユーザー登録時に空で作る）
func (r *CartGormRepository) Create(ctx context.Context, cart model.Cart) (model.Cart, error) {
	if err := r.db.WithContext(ctx).Create(&cart).Error; err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// ユーザーのカートを取得
func (r *CartGormRepository) FindByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	var cart model.Cart

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&cart).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// 行ロック付きで取得。トランザクション内で呼ぶこと。
func (r *CartGormRepository) FindByUserIDForUpdate(ctx context.Context, userID int64) (model.Cart, error) {
	var cart model.Cart

	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&cart).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// carts.totalを更新
func (r *CartGormRepository) UpdateTotal(ctx context.Context, cartID int64, total decimal.Decimal) error {
	res := r.db.WithContext(ctx).
		Model(&model.Cart{}).
		Where("id = ?", cartID).
		Update("total", total)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// カート明細を一覧取得（id昇順＝追加順）
func (r *CartGormRepository) ListByCartID(ctx context.Context, cartID int64) ([]model.CartEntry, error) {
	var entries []model.CartEntry

	if err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("id asc").
		Find(&entries).Error; err != nil {
		return []model.CartEntry{}, err
	}

	return entries, nil
}

// 1個につき1行で追加。qtyが0以下なら何もしない。
func (r *CartGormRepository) AppendUnits(ctx context.Context, cartID int64, itemID int64, qty int64, price decimal.Decimal) error {
	if qty <= 0 {
		return nil
	}

	entries := make([]model.CartEntry, 0, qty)
	for i := int64(0); i < qty; i++ {
		entries = append(entries, model.CartEntry{
			CartID: cartID,
			ItemID: itemID,
			Price:  price,
		})
	}

	if err := r.db.WithContext(ctx).Create(&entries).Error; err != nil {
		return err
	}
	return nil
}

// 最大qty行まで、idの小さい順に削除。足りない分は削除できた分だけでよい。
func (r *CartGormRepository) RemoveUnits(ctx context.Context, cartID int64, itemID int64, qty int64) (int64, error) {
	if qty <= 0 {
		return 0, nil
	}

	var ids []int64
	if err := r.db.WithContext(ctx).
		Model(&model.CartEntry{}).
		Where("cart_id = ? AND item_id = ?", cartID, itemID).
		Order("id asc").
		Limit(int(qty)).
		Pluck("id", &ids).Error; err != nil {
		return 0, err
	}

	if len(ids) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.CartEntry{})

	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// カートの明細を全削除
func (r *CartGormRepository) DeleteByCartID(ctx context.Context, cartID int64) error {
	if err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&model.CartEntry{}).Error; err != nil {
		return err
	}
	return nil
}
