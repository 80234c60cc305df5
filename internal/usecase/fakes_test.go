package usecase

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

// DBなしでusecaseを通すためのインメモリ実装。
// ロックは不要（テストは直列に呼ぶ）。
type memStore struct {
	users      []model.User
	items      []model.Item
	carts      []model.Cart
	entries    []model.CartEntry
	orders     []model.Order
	orderItems []model.OrderItem

	nextID int64
}

func newMemStore() *memStore {
	return &memStore{}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

// ユーザーと空カートをまとめて作る
func (s *memStore) seedUser(username string) (model.User, model.Cart) {
	u := model.User{ID: s.id(), Username: username, PasswordHash: "x"}
	s.users = append(s.users, u)

	c := model.Cart{ID: s.id(), UserID: u.ID, Total: decimal.Zero}
	s.carts = append(s.carts, c)

	return u, c
}

func (s *memStore) seedItem(name string, price string, description string) model.Item {
	p, err := decimal.NewFromString(price)
	if err != nil {
		panic(err)
	}

	it := model.Item{ID: s.id(), Name: name, Price: p, Description: description}
	s.items = append(s.items, it)
	return it
}

type memUsers struct{ s *memStore }

func (r memUsers) Create(_ context.Context, user *model.User) error {
	for _, u := range r.s.users {
		if u.Username == user.Username {
			return ErrUsernameTaken
		}
	}
	user.ID = r.s.id()
	r.s.users = append(r.s.users, *user)
	return nil
}

func (r memUsers) FindByID(_ context.Context, userID int64) (model.User, error) {
	for _, u := range r.s.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return model.User{}, repo.ErrNotFound
}

func (r memUsers) FindByUsername(_ context.Context, username string) (model.User, error) {
	for _, u := range r.s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, repo.ErrNotFound
}

type memItems struct{ s *memStore }

func (r memItems) ListAll(_ context.Context) ([]model.Item, error) {
	return append([]model.Item{}, r.s.items...), nil
}

func (r memItems) FindByID(_ context.Context, id int64) (model.Item, error) {
	for _, it := range r.s.items {
		if it.ID == id {
			return it, nil
		}
	}
	return model.Item{}, repo.ErrNotFound
}

func (r memItems) ListByName(_ context.Context, name string) ([]model.Item, error) {
	var out []model.Item
	for _, it := range r.s.items {
		if it.Name == name {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r memItems) Create(_ context.Context, item model.Item) (model.Item, error) {
	item.ID = r.s.id()
	r.s.items = append(r.s.items, item)
	return item, nil
}

type memCarts struct{ s *memStore }

func (r memCarts) Create(_ context.Context, cart model.Cart) (model.Cart, error) {
	cart.ID = r.s.id()
	r.s.carts = append(r.s.carts, cart)
	return cart, nil
}

func (r memCarts) FindByUserID(_ context.Context, userID int64) (model.Cart, error) {
	for _, c := range r.s.carts {
		if c.UserID == userID {
			return c, nil
		}
	}
	return model.Cart{}, repo.ErrNotFound
}

func (r memCarts) FindByUserIDForUpdate(ctx context.Context, userID int64) (model.Cart, error) {
	return r.FindByUserID(ctx, userID)
}

func (r memCarts) UpdateTotal(_ context.Context, cartID int64, total decimal.Decimal) error {
	for i, c := range r.s.carts {
		if c.ID == cartID {
			r.s.carts[i].Total = total
			return nil
		}
	}
	return repo.ErrNotFound
}

type memEntries struct{ s *memStore }

func (r memEntries) ListByCartID(_ context.Context, cartID int64) ([]model.CartEntry, error) {
	var out []model.CartEntry
	for _, e := range r.s.entries {
		if e.CartID == cartID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r memEntries) AppendUnits(_ context.Context, cartID int64, itemID int64, qty int64, price decimal.Decimal) error {
	for i := int64(0); i < qty; i++ {
		r.s.entries = append(r.s.entries, model.CartEntry{
			ID:     r.s.id(),
			CartID: cartID,
			ItemID: itemID,
			Price:  price,
		})
	}
	return nil
}

func (r memEntries) RemoveUnits(_ context.Context, cartID int64, itemID int64, qty int64) (int64, error) {
	var removed int64
	var kept []model.CartEntry

	for _, e := range r.s.entries {
		if removed < qty && e.CartID == cartID && e.ItemID == itemID {
			removed++
			continue
		}
		kept = append(kept, e)
	}

	r.s.entries = kept
	return removed, nil
}

func (r memEntries) DeleteByCartID(_ context.Context, cartID int64) error {
	var kept []model.CartEntry
	for _, e := range r.s.entries {
		if e.CartID != cartID {
			kept = append(kept, e)
		}
	}
	r.s.entries = kept
	return nil
}

type memOrders struct{ s *memStore }

func (r memOrders) FindByID(_ context.Context, orderID int64) (model.Order, error) {
	for _, o := range r.s.orders {
		if o.ID == orderID {
			return o, nil
		}
	}
	return model.Order{}, repo.ErrNotFound
}

func (r memOrders) ListByUserID(_ context.Context, userID int64) ([]model.Order, error) {
	var out []model.Order
	for _, o := range r.s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r memOrders) Create(_ context.Context, order model.Order) (int64, error) {
	order.ID = r.s.id()
	r.s.orders = append(r.s.orders, order)
	return order.ID, nil
}

type memOrderItems struct{ s *memStore }

func (r memOrderItems) CreateBulk(_ context.Context, orderID int64, items []model.OrderItem) error {
	for _, it := range items {
		it.ID = r.s.id()
		it.OrderID = orderID
		r.s.orderItems = append(r.s.orderItems, it)
	}
	return nil
}

func (r memOrderItems) ListByOrderID(_ context.Context, orderID int64) ([]model.OrderItem, error) {
	var out []model.OrderItem
	for _, it := range r.s.orderItems {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	return out, nil
}

type memTxRepos struct{ s *memStore }

func (r memTxRepos) Users() repo.UserRepository            { return memUsers{r.s} }
func (r memTxRepos) Items() repo.ItemRepository            { return memItems{r.s} }
func (r memTxRepos) Carts() repo.CartRepository            { return memCarts{r.s} }
func (r memTxRepos) CartEntries() repo.CartEntryRepository { return memEntries{r.s} }
func (r memTxRepos) Orders() repo.OrderRepository          { return memOrders{r.s} }
func (r memTxRepos) OrderItems() repo.OrderItemRepository  { return memOrderItems{r.s} }

type memTxManager struct{ s *memStore }

func (tm memTxManager) WithinTx(_ context.Context, fn func(r repo.TxRepos) error) error {
	return fn(memTxRepos{tm.s})
}
