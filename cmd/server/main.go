package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/shopfront/internal/app"
	"github.com/shopfront/internal/config"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
	ansiCyan  = "\033[36m"
)

func main() {
	// 解析命令行参数
	var mode string
	var configPath string
	flag.StringVar(&mode, "mode", app.ModeAll, "启动模式: all (默认), api, worker")
	flag.StringVar(&configPath, "config", "", "配置文件路径，默认查找 ./config.yml")
	flag.Parse()

	printStartupBanner()

	// 加载配置
	cfg := config.LoadFrom(configPath)
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if cfg.Server.Mode == "release" {
		if isWeakSecret(cfg.JWT.SecretKey) {
			stdLog.Fatalf("JWT secret 过弱或仍为默认值，请在生产环境中配置强随机密钥")
		}
	} else if isWeakSecret(cfg.JWT.SecretKey) {
		logger.Warnw("jwt_secret_weak", "hint", "configure jwt.secret before deploying")
	}

	// 初始化数据库
	if err := app.OpenDatabase(cfg); err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}

	// 自动迁移数据库表
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("数据库迁移失败: %v", err)
	}

	// 初始化默认管理员账号
	if cfg.Server.Mode == "release" && cfg.Bootstrap.AdminPassword == "" {
		logger.Warnw("default_admin_skipped", "reason", "bootstrap.admin_password not set")
	} else if err := models.InitDefaultAdmin(cfg.Bootstrap.AdminUsername, cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword); err != nil {
		logger.Warnw("default_admin_init_failed", "error", err)
	}

	// 设置 Gin 模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiCyan + ansiBold + "shopfront API" + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------------" + ansiReset)
}

func isWeakSecret(secret string) bool {
	if len(secret) < 32 {
		return true
	}
	normalized := strings.ToLower(secret)
	if strings.Contains(normalized, "change-me") ||
		strings.Contains(normalized, "change-in-production") ||
		strings.Contains(normalized, "your-secret-key") {
		return true
	}
	return false
}
