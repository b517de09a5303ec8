// Package password はbcryptによるパスワードのハッシュ化と検証を提供します。
package password

import (
	"context"
	"runtime"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost はパスワードハッシュのコストファクターです（bcrypt work-factor 10）。
const DefaultCost = bcrypt.DefaultCost

// Hasher はbcrypt計算の同時実行数を制限するハッシャーです。
// bcryptは意図的に高コストなCPU処理であるため、セマフォで同時実行数を
// 制限し、サインアップのバーストが他のリクエストを停滞させないようにします。
type Hasher struct {
	cost int
	sem  chan struct{}
}

// NewHasher は指定されたコストと同時実行上限でHasherを生成します。
// maxConcurrentが0以下の場合はGOMAXPROCSを上限とします。
func NewHasher(cost, maxConcurrent int) *Hasher {
	if maxConcurrent <= 0 {
		maxConcurrent = runtime.GOMAXPROCS(0)
	}
	return &Hasher{
		cost: cost,
		sem:  make(chan struct{}, maxConcurrent),
	}
}

// acquire はセマフォを獲得します。ctxのキャンセルを尊重します。
func (h *Hasher) acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case h.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Hash は平文パスワードからソルト付きbcryptハッシュを生成します。
func (h *Hasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.acquire(ctx); err != nil {
		return "", err
	}
	defer func() { <-h.sem }()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare はbcryptハッシュと平文パスワードを照合します。
// 第1引数はハッシュ化パスワード、第2引数は平文パスワードです。
func (h *Hasher) Compare(ctx context.Context, hashedPassword, password string) error {
	if err := h.acquire(ctx); err != nil {
		return err
	}
	defer func() { <-h.sem }()

	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
