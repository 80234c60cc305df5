package config

import (
	"os"
	"strconv"
)

// Configはアプリ全体の設定
type Config struct {
	Port  string // サーバーポート（8080）
	GoEnv string // dev/prod

	// 注文提出後にカートを空にするかどうか。
	// 元のシステムは空にしないのでデフォルトはfalse。
	ClearCartOnSubmit bool

	LogLevel string // debug/info/warn/error
}

// Loadは環境変数
func Load() Config {
	return Config{
		Port:              getEnv("PORT", "8080"),
		GoEnv:             getEnv("GO_ENV", "dev"),
		ClearCartOnSubmit: getEnvBool("CLEAR_CART_ON_SUBMIT", false),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}

	return b
}
