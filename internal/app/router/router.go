package router

import (
	accounthandler "account_backend/internal/feature/accounts/transport/handler"
	"account_backend/internal/platform/http/handler"

	"github.com/gin-gonic/gin"
)

func NewRouter(accountHandler *accounthandler.AccountHandler) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	r.GET("/healthz", handler.Health)

	// 新規ユーザー登録
	r.POST("/signup", accountHandler.Signup)
	// ログイン（ユーザー情報返却のみ、トークン発行なし）
	r.POST("/signin", accountHandler.Signin)
	// email更新
	r.PUT("/reset-email", accountHandler.ResetEmail)
	// パスワード更新
	r.PUT("/reset-password", accountHandler.ResetPassword)
	// 全ユーザー削除
	r.DELETE("/delete-all", accountHandler.DeleteAll)
	// ユーザー削除
	r.DELETE("/delete/:id", accountHandler.Delete)
	// ユーザー一覧
	r.GET("/users", accountHandler.List)

	return r
}
