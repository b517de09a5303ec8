package dto

// ResetPasswordReq は/reset-passwordエンドポイントのリクエストボディを表します。
// newPasswordとconfirmPasswordの一致チェックはusecase側で行います。
type ResetPasswordReq struct {
	Username        string `json:"username" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}
