package dto

// ResetEmailReq は/reset-emailエンドポイントのリクエストボディを表します。
type ResetEmailReq struct {
	Username string `json:"username" binding:"required"`
	NewEmail string `json:"newEmail" binding:"required"`
}
