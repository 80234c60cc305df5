package validator

import (
	"context"
	"errors"

	"app/internal/repository"
	"app/internal/usecase"
)

// パスワードの最低文字数
const minPasswordLength = 7

type userValidator struct {
	users repository.UserRepository
}

// Usecaseは interface を依存注入
func NewUserValidator(users repository.UserRepository) usecase.UserValidator {
	return &userValidator{users: users}
}

// 会員登録の入力を検証
func (v *userValidator) ValidateRegister(ctx context.Context, username string, password string, confirmPassword string) error {
	// 必須チェック
	if username == "" {
		return usecase.ErrUsernameEmpty
	}

	// ユーザー名の重複チェック（DBが必要）
	_, err := v.users.FindByUsername(ctx, username)
	if err == nil {
		return usecase.ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	// パスワード最低文字数
	if password == "" || len(password) < minPasswordLength {
		return usecase.ErrPasswordInvalid
	}

	// 確認用パスワードの一致
	if confirmPassword == "" || password != confirmPassword {
		return usecase.ErrPasswordMismatch
	}

	return nil
}
