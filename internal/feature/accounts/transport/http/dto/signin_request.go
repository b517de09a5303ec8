// Package dto はaccountsフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// SigninReq は/signinエンドポイントのリクエストボディを表します。
// 必須フィールドのバリデーションを含みます。
type SigninReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
