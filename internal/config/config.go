package config

import (
	"fmt"
	"os"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	// 管理者API用の共有シークレット。ハードコードのデフォルトは持たない。
	AdminToken string

	FEURL string // フロントURL（CORSで使う。未設定なら全許可）
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port:       os.Getenv("PORT"),
		AdminToken: os.Getenv("ADMIN_TOKEN"),
		FEURL:      os.Getenv("FE_URL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	//必須チェック
	if cfg.AdminToken == "" {
		return Config{}, fmt.Errorf("ADMIN_TOKEN is required")
	}

	return cfg, nil
}

// CORSの許可オリジン。FE_URL未設定なら全許可。
func (c Config) AllowOrigins() []string {
	if c.FEURL == "" {
		return []string{"*"}
	}
	return []string{c.FEURL}
}
