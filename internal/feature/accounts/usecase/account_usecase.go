// Package usecase はaccountsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	"account_backend/internal/feature/accounts/domain/entity"
)

// AccountRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type AccountRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じusernameまたはemailのユーザーが既に存在する場合、ErrDuplicateAccountを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername は指定されたusernameに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrAccountNotFoundを返します。
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// UpdateEmail は指定されたユーザーのemailを更新します。
	// 対象行が存在しない場合はErrAccountNotFound、email重複の場合はErrDuplicateAccountを返します。
	UpdateEmail(ctx context.Context, username, email string) error

	// UpdatePassword は指定されたユーザーのパスワードハッシュを更新します。
	// 対象行が存在しない場合、ErrAccountNotFoundを返します。
	UpdatePassword(ctx context.Context, username, passwordHash string) error

	// DeleteByID は指定されたIDのユーザーを削除し、ID採番カウンタを1にリセットします。
	// 削除とリセットは同一トランザクションで実行されます。
	// 対象行が存在しない場合、ErrAccountNotFoundを返します。
	DeleteByID(ctx context.Context, id uint) error

	// DeleteAll は全ユーザーを削除し、ID採番カウンタを1にリセットします。
	// 削除対象が存在しない場合、ErrNoAccountsを返します。
	DeleteAll(ctx context.Context) error

	// List は全ユーザーを取得します。順序はストレージの自然順です。
	List(ctx context.Context) ([]entity.User, error)
}

// PasswordHasher はパスワードのハッシュ化と検証を抽象化します。
// bcrypt計算はCPU負荷が高いため、実装側で同時実行数を制限します（platform/password参照）。
type PasswordHasher interface {
	// Hash は平文パスワードからソルト付きハッシュを生成します。
	Hash(ctx context.Context, password string) (string, error)
	// Compare はハッシュと平文パスワードを照合し、不一致の場合エラーを返します。
	Compare(ctx context.Context, hashedPassword, password string) error
}

// accountUsecase はアカウント管理のビジネスロジックを実装します。
type accountUsecase struct {
	accounts AccountRepository
	hasher   PasswordHasher
}

// NewAccountUsecase はaccountUsecaseの新しいインスタンスを生成します。
func NewAccountUsecase(accounts AccountRepository, hasher PasswordHasher) *accountUsecase {
	return &accountUsecase{
		accounts: accounts,
		hasher:   hasher,
	}
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録します。
// passwordとconfirmPasswordが一致しない場合、ErrPasswordMismatchを返します。
func (u *accountUsecase) Signup(ctx context.Context, username, email, password, confirmPassword string) error {
	if password != confirmPassword {
		return ErrPasswordMismatch
	}

	hashed, err := u.hasher.Hash(ctx, password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Username: username, Email: email, Password: hashed}
	return u.accounts.Create(ctx, user)
}

// Signin はユーザーを認証し、成功時にユーザーを返します。
// ユーザー未検出の場合はErrAccountNotFound、パスワード不一致の場合はErrInvalidCredentialsを返します。
// どちらの場合もハンドラー層では同一メッセージで応答し、usernameの存在を漏らしません。
func (u *accountUsecase) Signin(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := u.accounts.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	if err := u.hasher.Compare(ctx, user.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// ResetEmail は指定されたユーザーのemailを更新します。
func (u *accountUsecase) ResetEmail(ctx context.Context, username, newEmail string) error {
	return u.accounts.UpdateEmail(ctx, username, newEmail)
}

// ResetPassword は指定されたユーザーのパスワードを再ハッシュして更新します。
// Signupと同じコストファクターでハッシュ化します。
func (u *accountUsecase) ResetPassword(ctx context.Context, username, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}

	hashed, err := u.hasher.Hash(ctx, newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return u.accounts.UpdatePassword(ctx, username, hashed)
}

// DeleteAccount は指定されたIDのユーザーを削除します。
// 削除とID採番カウンタのリセットはリポジトリ側で同一トランザクションとして実行されます。
func (u *accountUsecase) DeleteAccount(ctx context.Context, id uint) error {
	return u.accounts.DeleteByID(ctx, id)
}

// DeleteAllAccounts は全ユーザーを削除します。
func (u *accountUsecase) DeleteAllAccounts(ctx context.Context) error {
	return u.accounts.DeleteAll(ctx)
}

// ListAccounts は全ユーザーを取得します。
// レスポンスへのパスワード除外はトランスポート層のDTOが保証します。
func (u *accountUsecase) ListAccounts(ctx context.Context) ([]entity.User, error) {
	return u.accounts.List(ctx)
}
