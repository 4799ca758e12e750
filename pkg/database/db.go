package database

import (
	"Verity/config"
	"Verity/models"
	"Verity/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) *gorm.DB {
	dsn := conf.MySQL.Dsn()
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}
	log.L.Info("connect database success")
	return db
}

// Migrate 建表，由 migrate 子命令触发
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Users{},
		&models.Post{},
		&models.Vote{},
		&models.Analysis{},
	)
}
