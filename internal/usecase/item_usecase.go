package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// ItemUsecase は /api/item の業務ロジックです。読み取りのみ。
type ItemUsecase struct {
	itemRepo repo.ItemRepository
}

func NewItemUsecase(itemRepo repo.ItemRepository) *ItemUsecase {
	return &ItemUsecase{itemRepo: itemRepo}
}

type ItemResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

// 全商品一覧
func (u *ItemUsecase) List(ctx context.Context) ([]ItemResponse, error) {
	items, err := u.itemRepo.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toItemResponses(items), nil
}

// IDで1件取得
func (u *ItemUsecase) GetByID(ctx context.Context, id int64) (ItemResponse, error) {
	item, err := u.itemRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ItemResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return ItemResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toItemResponse(item), nil
}

// 名前で検索。0件は404（見つからない扱い）。
func (u *ItemUsecase) SearchByName(ctx context.Context, name string) ([]ItemResponse, error) {
	items, err := u.itemRepo.ListByName(ctx, name)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(items) == 0 {
		return nil, NewHTTPError(http.StatusNotFound, "not found")
	}
	return toItemResponses(items), nil
}

func toItemResponse(item model.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Price:       item.Price,
		Description: item.Description,
	}
}

func toItemResponses(items []model.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}
	return out
}
