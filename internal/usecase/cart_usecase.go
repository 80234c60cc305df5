package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// CartUsecase は /api/cart の業務ロジックです。
// 同一商品は1個につき1明細行（数量カラムは持たない）。
type CartUsecase struct {
	tx repo.TransactionManager
}

func NewCartUsecase(tx repo.TransactionManager) *CartUsecase {
	return &CartUsecase{tx: tx}
}

type ModifyCartInput struct {
	Username string
	ItemID   int64
	Quantity int64
}

type CartItemResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

type CartResponse struct {
	ID     int64              `json:"id"`
	UserID int64              `json:"user_id"`
	Items  []CartItemResponse `json:"items"`
	Total  decimal.Decimal    `json:"total"`
}

// AddItem は指定数量ぶんの明細行を追加して合計を再計算する。
// quantityが0以下のときは何も追加せずそのままのカートを返す。
func (u *CartUsecase) AddItem(ctx context.Context, in ModifyCartInput) (CartResponse, error) {
	var out CartResponse

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		user, cart, item, err := u.resolve(ctx, r, in.Username, in.ItemID)
		if err != nil {
			return err
		}

		if err := r.CartEntries().AppendUnits(ctx, cart.ID, item.ID, in.Quantity, item.Price); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out, err = recalcAndBuild(ctx, r, user, cart)
		return err
	})

	if err != nil {
		return CartResponse{}, err
	}
	return out, nil
}

// RemoveItem は一致する明細行を最大quantity行まで削除して合計を再計算する。
// 足りない場合はある分だけ削除する（エラーにしない）。
func (u *CartUsecase) RemoveItem(ctx context.Context, in ModifyCartInput) (CartResponse, error) {
	var out CartResponse

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		user, cart, item, err := u.resolve(ctx, r, in.Username, in.ItemID)
		if err != nil {
			return err
		}

		if _, err := r.CartEntries().RemoveUnits(ctx, cart.ID, item.ID, in.Quantity); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out, err = recalcAndBuild(ctx, r, user, cart)
		return err
	})

	if err != nil {
		return CartResponse{}, err
	}
	return out, nil
}

// ユーザー・カート・商品の順に解決する。見つからなければ404。
// カート行ロックで同一ユーザーの同時更新を直列化する。
func (u *CartUsecase) resolve(ctx context.Context, r repo.TxRepos, username string, itemID int64) (model.User, model.Cart, model.Item, error) {
	user, err := r.Users().FindByUsername(ctx, username)
	if errors.Is(err, repo.ErrNotFound) {
		log.Info().Str("username", username).Msg("user not found")
		return model.User{}, model.Cart{}, model.Item{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.User{}, model.Cart{}, model.Item{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cart, err := r.Carts().FindByUserIDForUpdate(ctx, user.ID)
	if err != nil {
		//カートはユーザー作成時に必ず作られるので、無いのは不整合
		return model.User{}, model.Cart{}, model.Item{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	item, err := r.Items().FindByID(ctx, itemID)
	if errors.Is(err, repo.ErrNotFound) {
		log.Info().Int64("item_id", itemID).Msg("item not found")
		return model.User{}, model.Cart{}, model.Item{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.User{}, model.Cart{}, model.Item{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return user, cart, item, nil
}

// 明細から合計を計算し直して保存し、返却用のカートを組み立てる。
// 合計は差分更新ではなく毎回行の合計から出す。
func recalcAndBuild(ctx context.Context, r repo.TxRepos, user model.User, cart model.Cart) (CartResponse, error) {
	entries, err := r.CartEntries().ListByCartID(ctx, cart.ID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Price)
	}

	if err := r.Carts().UpdateTotal(ctx, cart.ID, total); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	respItems := make([]CartItemResponse, 0, len(entries))

	//同じ商品を何度も引かないようにキャッシュする
	cache := map[int64]model.Item{}

	for _, e := range entries {
		item, ok := cache[e.ItemID]
		if !ok {
			item, err = r.Items().FindByID(ctx, e.ItemID)
			if err != nil {
				return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
			}
			cache[e.ItemID] = item
		}

		respItems = append(respItems, CartItemResponse{
			ID:          item.ID,
			Name:        item.Name,
			Price:       e.Price,
			Description: item.Description,
		})
	}

	return CartResponse{
		ID:     cart.ID,
		UserID: user.ID,
		Items:  respItems,
		Total:  total,
	}, nil
}
