package usecase

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// Mocking repositories
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID int64) (model.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (model.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(model.User), args.Error(1)
}

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) ListAll(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Item), args.Error(1)
}

func (m *MockItemRepository) FindByID(ctx context.Context, id int64) (model.Item, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Item), args.Error(1)
}

func (m *MockItemRepository) ListByName(ctx context.Context, name string) ([]model.Item, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]model.Item), args.Error(1)
}

func (m *MockItemRepository) Create(ctx context.Context, item model.Item) (model.Item, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(model.Item), args.Error(1)
}

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Create(ctx context.Context, cart model.Cart) (model.Cart, error) {
	args := m.Called(ctx, cart)
	return args.Get(0).(model.Cart), args.Error(1)
}

func (m *MockCartRepository) FindByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.Cart), args.Error(1)
}

func (m *MockCartRepository) FindByUserIDForUpdate(ctx context.Context, userID int64) (model.Cart, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.Cart), args.Error(1)
}

func (m *MockCartRepository) UpdateTotal(ctx context.Context, cartID int64, total decimal.Decimal) error {
	args := m.Called(ctx, cartID, total)
	return args.Error(0)
}

type MockCartEntryRepository struct {
	mock.Mock
}

func (m *MockCartEntryRepository) ListByCartID(ctx context.Context, cartID int64) ([]model.CartEntry, error) {
	args := m.Called(ctx, cartID)
	return args.Get(0).([]model.CartEntry), args.Error(1)
}

func (m *MockCartEntryRepository) AppendUnits(ctx context.Context, cartID int64, itemID int64, qty int64, price decimal.Decimal) error {
	args := m.Called(ctx, cartID, itemID, qty, price)
	return args.Error(0)
}

func (m *MockCartEntryRepository) RemoveUnits(ctx context.Context, cartID int64, itemID int64, qty int64) (int64, error) {
	args := m.Called(ctx, cartID, itemID, qty)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCartEntryRepository) DeleteByCartID(ctx context.Context, cartID int64) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderItemRepository struct {
	mock.Mock
}

func (m *MockOrderItemRepository) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *MockOrderItemRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]model.OrderItem), args.Error(1)
}

// TxRepos/TransactionManagerをモック一式で包む
type mockTxRepos struct {
	users       *MockUserRepository
	items       *MockItemRepository
	carts       *MockCartRepository
	cartEntries *MockCartEntryRepository
	orders      *MockOrderRepository
	orderItems  *MockOrderItemRepository
}

func newMockTxRepos() *mockTxRepos {
	return &mockTxRepos{
		users:       new(MockUserRepository),
		items:       new(MockItemRepository),
		carts:       new(MockCartRepository),
		cartEntries: new(MockCartEntryRepository),
		orders:      new(MockOrderRepository),
		orderItems:  new(MockOrderItemRepository),
	}
}

func (r *mockTxRepos) Users() repo.UserRepository            { return r.users }
func (r *mockTxRepos) Items() repo.ItemRepository            { return r.items }
func (r *mockTxRepos) Carts() repo.CartRepository            { return r.carts }
func (r *mockTxRepos) CartEntries() repo.CartEntryRepository { return r.cartEntries }
func (r *mockTxRepos) Orders() repo.OrderRepository          { return r.orders }
func (r *mockTxRepos) OrderItems() repo.OrderItemRepository  { return r.orderItems }

type mockTxManager struct {
	repos *mockTxRepos
}

func (tm mockTxManager) WithinTx(_ context.Context, fn func(r repo.TxRepos) error) error {
	return fn(tm.repos)
}

// testifyのReturnに渡すゼロ値
func modelUserZero() model.User { return model.User{} }
func modelItemZero() model.Item { return model.Item{} }
