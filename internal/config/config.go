package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

type Config struct {
	LogLevel log.Lvl
	Prompt   string

	// 啟動時預先註冊的帳號，Email 與 Password 皆有值才生效
	SeedEmail    string
	SeedName     string
	SeedPassword string

	// 是否成功讀取 .env
	EnvFileLoaded bool
}

var levels = map[string]log.Lvl{
	"debug": log.DEBUG,
	"info":  log.INFO,
	"warn":  log.WARN,
	"error": log.ERROR,
	"off":   log.OFF,
}

// loadEnvFile 讀取 .env，測試可覆寫
var loadEnvFile = func() error { return godotenv.Load() }

// Load 先嘗試讀取 .env（不存在不視為錯誤），再由環境變數組出設定
func Load() (*Config, error) {
	cfg := &Config{
		EnvFileLoaded: loadEnvFile() == nil,
		LogLevel:      log.INFO,
		Prompt:        os.Getenv("REGISTRY_PROMPT"),
		SeedEmail:     os.Getenv("REGISTRY_SEED_EMAIL"),
		SeedName:      os.Getenv("REGISTRY_SEED_NAME"),
		SeedPassword:  os.Getenv("REGISTRY_SEED_PASSWORD"),
	}

	if v := os.Getenv("REGISTRY_LOG_LEVEL"); v != "" {
		lvl, ok := levels[strings.ToLower(v)]
		if !ok {
			return nil, fmt.Errorf("無效的 REGISTRY_LOG_LEVEL: %q", v)
		}
		cfg.LogLevel = lvl
	}

	if (cfg.SeedEmail == "") != (cfg.SeedPassword == "") {
		return nil, fmt.Errorf("REGISTRY_SEED_EMAIL 與 REGISTRY_SEED_PASSWORD 必須同時設定")
	}

	return cfg, nil
}

// HasSeed 回傳是否需要在啟動時預先註冊帳號
func (c *Config) HasSeed() bool {
	return c.SeedEmail != "" && c.SeedPassword != ""
}
