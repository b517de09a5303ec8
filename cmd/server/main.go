package main

import (
	"log"

	"account_backend/internal/app/router"
	accountadapters "account_backend/internal/feature/accounts/adapters"
	accounthandler "account_backend/internal/feature/accounts/transport/handler"
	accountusecase "account_backend/internal/feature/accounts/usecase"
	"account_backend/internal/platform/config"
	infradb "account_backend/internal/platform/db"
	"account_backend/internal/platform/password"
)

func main() {
	// 設定（.env + 環境変数、デフォルト値あり）
	cfg := config.Load()

	// db
	db := infradb.Open(cfg.DSN())

	// Repository
	userRepo := accountadapters.NewUserMySQL(db)

	// Hasher（bcrypt、同時実行数はGOMAXPROCSで制限）
	hasher := password.NewHasher(password.DefaultCost, 0)

	// Usecase
	accountUC := accountusecase.NewAccountUsecase(userRepo, hasher)

	// Handler
	accountH := accounthandler.NewAccountHandler(accountUC)

	// ルータ生成
	router := router.NewRouter(accountH)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
