// Package adapters はaccountsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"account_backend/internal/feature/accounts/domain/entity"
	"account_backend/internal/feature/accounts/usecase"
)

// userMySQL はAccountRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。
type userMySQL struct {
	db *gorm.DB
}

// userMySQLがAccountRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.AccountRepository = (*userMySQL)(nil)

// NewUserMySQL は指定されたgorm.DB接続でuserMySQLの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewUserMySQL(db *gorm.DB) *userMySQL {
	return &userMySQL{db: db}
}

// mapDuplicateError はユニーク制約違反をusecase.ErrDuplicateAccountに変換します。
// MySQLエラー1062（重複エントリ）と、TranslateError有効時のgorm.ErrDuplicatedKeyの両方を扱います。
func mapDuplicateError(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return usecase.ErrDuplicateAccount
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return usecase.ErrDuplicateAccount
	}
	return err
}

// resetSequence はusersテーブルのID採番カウンタを1にリセットします。
// 本番のMySQLではALTER TABLE、テスト用SQLiteではsqlite_sequenceを操作します。
func resetSequence(tx *gorm.DB) error {
	switch tx.Dialector.Name() {
	case "sqlite":
		return tx.Exec("DELETE FROM sqlite_sequence WHERE name = ?", "users").Error
	default:
		return tx.Exec("ALTER TABLE users AUTO_INCREMENT = 1").Error
	}
}

// Create はユーザーをデータベースに追加します。
// 同じusernameまたはemailのユーザーが既に存在する場合、usecase.ErrDuplicateAccountを返します。
func (r *userMySQL) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return mapDuplicateError(err)
	}
	return nil
}

// FindByUsername はusernameでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrAccountNotFoundを返します。
func (r *userMySQL) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAccountNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UpdateEmail は指定されたユーザーのemailを更新します。
// 対象行が存在しない場合はusecase.ErrAccountNotFound、
// email重複の場合はusecase.ErrDuplicateAccountを返します。
func (r *userMySQL) UpdateEmail(ctx context.Context, username, email string) error {
	res := r.db.WithContext(ctx).Model(&entity.User{}).
		Where("username = ?", username).
		Update("email", email)
	if res.Error != nil {
		return mapDuplicateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrAccountNotFound
	}
	return nil
}

// UpdatePassword は指定されたユーザーのパスワードハッシュを更新します。
// 対象行が存在しない場合、usecase.ErrAccountNotFoundを返します。
func (r *userMySQL) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	res := r.db.WithContext(ctx).Model(&entity.User{}).
		Where("username = ?", username).
		Update("password", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrAccountNotFound
	}
	return nil
}

// DeleteByID は指定されたIDのユーザーを削除し、ID採番カウンタを1にリセットします。
// 削除とリセットは同一トランザクションで実行され、リセット失敗時は削除もロールバックされます。
// 対象行が存在しない場合、usecase.ErrAccountNotFoundを返します。
func (r *userMySQL) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&entity.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrAccountNotFound
		}
		return resetSequence(tx)
	})
}

// DeleteAll は全ユーザーを削除し、ID採番カウンタを1にリセットします。
// 削除対象が存在しない場合、usecase.ErrNoAccountsを返します。
func (r *userMySQL) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrNoAccounts
		}
		return resetSequence(tx)
	})
}

// List は全ユーザーを取得します。順序はストレージの自然順です。
func (r *userMySQL) List(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
