package app

import (
	"github.com/shopfront/internal/config"
	"github.com/shopfront/internal/models"
)

// OpenDatabase 按配置初始化全局数据库连接
func OpenDatabase(cfg *config.Config) error {
	return models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	})
}
