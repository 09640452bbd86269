// Account Registry
//
// 行程內的使用者帳號登錄表。由標準輸入讀取指令、標準輸出寫出 JSON 結果，
// 日誌寫到標準錯誤。資料只存在於行程存活期間。
//
//	register <email> <password> [name...]
//	login <email> <password>
//	remove <user_id>
//	list
//	passwd <user_id> <old_password> <new_password>
//	metrics
package main

import (
	"fmt"
	"io"
	"os"

	"account-registry/internal/config"
	"account-registry/internal/metrics"
	"account-registry/internal/router"
	"account-registry/internal/service"
	"account-registry/internal/shell"

	"github.com/labstack/gommon/log"
)

var (
	loadConfig           = config.Load
	stdin      io.Reader = os.Stdin
	stdout     io.Writer = os.Stdout
	stderr     io.Writer = os.Stderr
	exitFunc             = os.Exit
)

func newLogger(cfg *config.Config) *log.Logger {
	logger := log.New("registry")
	logger.SetOutput(stderr)
	logger.SetLevel(cfg.LogLevel)
	return logger
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}

	logger := newLogger(cfg)
	if !cfg.EnvFileLoaded {
		logger.Debug(".env file not found, using environment only")
	}

	m := metrics.New()
	reg := service.NewRegistry(
		service.WithLogger(logger),
		service.WithMetrics(m),
	)

	if cfg.HasSeed() {
		id, err := reg.Register(cfg.SeedEmail, cfg.SeedName, cfg.SeedPassword)
		if err != nil {
			return fmt.Errorf("預設帳號建立失敗: %w", err)
		}
		logger.Infof("seed account %d created", id)
	}

	sh := shell.New(stdin, stdout)
	sh.Prompt = cfg.Prompt
	sh.Logger = logger
	router.Setup(sh, reg, m)

	logger.Info("registry ready")
	return sh.Run()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(stderr, err)
		exitFunc(1)
	}
}
