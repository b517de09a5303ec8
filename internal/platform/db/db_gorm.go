package db

import (
	"log"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"account_backend/internal/feature/accounts/domain/entity"
)

// Open は指定されたDSNでMySQLへの接続を確立します。
// 起動直後のDB未準備に備え、60秒間リトライします。
// 接続はプロセスのライフサイクルで所有され、各コンポーネントへ明示的に渡されます。
func Open(dsn string) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	// TranslateErrorによりユニーク制約違反がgorm.ErrDuplicatedKeyに正規化される
	cfg := &gorm.Config{TranslateError: true}

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gmysql.Open(dsn), cfg)
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// マイグレーション（User）
		if err := db.AutoMigrate(&entity.User{}); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
