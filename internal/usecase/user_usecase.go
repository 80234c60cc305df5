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

var (
	//400 ユーザー名が空
	ErrUsernameEmpty = errors.New("username can't be empty")
	//400 ユーザー名が使用済み
	ErrUsernameTaken = errors.New("username already exists")
	//400 パスワードが空か短すぎる
	ErrPasswordInvalid = errors.New("password is invalid")
	//400 確認用パスワードと一致しない
	ErrPasswordMismatch = errors.New("password and confirm password don't match")
)

// usecaseがValidatorInterfaceに依存する約束
type UserValidator interface {
	ValidateRegister(ctx context.Context, username string, password string, confirmPassword string) error
}

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

type UserUsecase struct {
	tx        repo.TransactionManager
	users     repo.UserRepository
	carts     repo.CartRepository
	validator UserValidator
	hasher    PasswordHasher
}

func NewUserUsecase(
	tx repo.TransactionManager,
	users repo.UserRepository,
	carts repo.CartRepository,
	validator UserValidator,
	hasher PasswordHasher,
) *UserUsecase {
	return &UserUsecase{
		tx:        tx,
		users:     users,
		carts:     carts,
		validator: validator,
		hasher:    hasher,
	}
}

type RegisterInput struct {
	Username        string
	Password        string
	ConfirmPassword string
}

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	CartID   int64  `json:"cart_id"`
}

// Register はユーザーと空のカートを同一トランザクションで作る。
func (u *UserUsecase) Register(ctx context.Context, in RegisterInput) (UserResponse, error) {
	if err := u.validator.ValidateRegister(ctx, in.Username, in.Password, in.ConfirmPassword); err != nil {
		switch {
		case errors.Is(err, ErrUsernameEmpty),
			errors.Is(err, ErrUsernameTaken),
			errors.Is(err, ErrPasswordInvalid),
			errors.Is(err, ErrPasswordMismatch):
			log.Info().Str("username", in.Username).Err(err).Msg("register rejected")
			return UserResponse{}, NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return UserResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	//パスワードは必ずハッシュ化して保存（平文保存しない）
	pwHash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return UserResponse{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	var out UserResponse

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		user := &model.User{
			Username:     in.Username,
			PasswordHash: pwHash,
		}

		if err := r.Users().Create(ctx, user); err != nil {
			// unique制約と同時に登録された場合もここに落ちる
			return NewHTTPError(http.StatusBadRequest, ErrUsernameTaken.Error())
		}

		cart, err := r.Carts().Create(ctx, model.Cart{
			UserID: user.ID,
			Total:  decimal.Zero,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = UserResponse{
			ID:       user.ID,
			Username: user.Username,
			CartID:   cart.ID,
		}
		return nil
	})

	if err != nil {
		return UserResponse{}, err
	}
	return out, nil
}

// ユーザー名で1件取得
func (u *UserUsecase) GetByUsername(ctx context.Context, username string) (UserResponse, error) {
	user, err := u.users.FindByUsername(ctx, username)
	if errors.Is(err, repo.ErrNotFound) {
		log.Info().Str("username", username).Msg("user not found")
		return UserResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return UserResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return u.toUserResponse(ctx, user)
}

// IDで1件取得
func (u *UserUsecase) GetByID(ctx context.Context, id int64) (UserResponse, error) {
	user, err := u.users.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return UserResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return UserResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return u.toUserResponse(ctx, user)
}

func (u *UserUsecase) toUserResponse(ctx context.Context, user model.User) (UserResponse, error) {
	cart, err := u.carts.FindByUserID(ctx, user.ID)
	if err != nil {
		//カートはユーザー作成時に必ず作られるので、無いのは不整合
		return UserResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return UserResponse{ID: user.ID, Username: user.Username, CartID: cart.ID}, nil
}
