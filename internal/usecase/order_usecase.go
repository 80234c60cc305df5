package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// OrderUsecase は /api/order の業務ロジックです。
// clearCartOnSubmit は提出後にカートを空にするかどうか。
// 元のシステムは空にしないので、再現する場合はfalseにする。
type OrderUsecase struct {
	tx                repo.TransactionManager
	clearCartOnSubmit bool
}

func NewOrderUsecase(tx repo.TransactionManager, clearCartOnSubmit bool) *OrderUsecase {
	return &OrderUsecase{tx: tx, clearCartOnSubmit: clearCartOnSubmit}
}

type OrderItemOutput struct {
	ItemID      int64           `json:"item_id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

type OrderOutput struct {
	ID        int64             `json:"id"`
	Number    string            `json:"number"`
	UserID    int64             `json:"user_id"`
	Total     decimal.Decimal   `json:"total"`
	CreatedAt time.Time         `json:"created_at"`
	Items     []OrderItemOutput `json:"items"`
}

// Submit は現在のカートの中身をそのままスナップショットして注文にする。
// 空のカートでも注文は作る（元の挙動にガードは無い）。
func (u *OrderUsecase) Submit(ctx context.Context, username string) (OrderOutput, error) {
	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		user, err := r.Users().FindByUsername(ctx, username)
		if errors.Is(err, repo.ErrNotFound) {
			log.Info().Str("username", username).Msg("user not found")
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		cart, err := r.Carts().FindByUserIDForUpdate(ctx, user.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		entries, err := r.CartEntries().ListByCartID(ctx, cart.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//スナップショット
		orderItems := make([]model.OrderItem, 0, len(entries))
		cache := map[int64]model.Item{}

		for _, e := range entries {
			item, ok := cache[e.ItemID]
			if !ok {
				item, err = r.Items().FindByID(ctx, e.ItemID)
				if err != nil {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}
				cache[e.ItemID] = item
			}

			orderItems = append(orderItems, model.OrderItem{
				ItemID:              e.ItemID,
				NameSnapshot:        item.Name,
				PriceSnapshot:       e.Price,
				DescriptionSnapshot: item.Description,
			})
		}

		now := time.Now()
		order := model.Order{
			Number:    uuid.NewString(),
			UserID:    user.ID,
			Total:     cart.Total,
			CreatedAt: now,
		}

		orderID, err := r.Orders().Create(ctx, order)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//フラグが立っているときだけカートを空に戻す
		if u.clearCartOnSubmit {
			if err := r.CartEntries().DeleteByCartID(ctx, cart.ID); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if err := r.Carts().UpdateTotal(ctx, cart.ID, decimal.Zero); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		order.ID = orderID
		out = toOrderOutput(order, orderItems)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// GetOrdersForUser はユーザーの注文を提出順で返す。
func (u *OrderUsecase) GetOrdersForUser(ctx context.Context, username string) ([]OrderOutput, error) {
	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		user, err := r.Users().FindByUsername(ctx, username)
		if errors.Is(err, repo.ErrNotFound) {
			log.Info().Str("username", username).Msg("user not found")
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		orders, err := r.Orders().ListByUserID(ctx, user.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ItemID:      it.ItemID,
			Name:        it.NameSnapshot,
			Price:       it.PriceSnapshot,
			Description: it.DescriptionSnapshot,
		})
	}

	return OrderOutput{
		ID:        o.ID,
		Number:    o.Number,
		UserID:    o.UserID,
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
		Items:     outItems,
	}
}
