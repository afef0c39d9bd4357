package config

import (
	"fmt"
	"os"

	"github.com/yeremiapane/reservation-app/store"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	Port         string
	GinMode      string
	StoreBackend string // memory | sqlite | mysql | redis
	DBDSN        string
	RedisAddr    string
}

func Load() Config {
	return Config{
		Port:         getenv("PORT", "8080"),
		GinMode:      getenv("GIN_MODE", "debug"),
		StoreBackend: getenv("STORE_BACKEND", "memory"),
		DBDSN:        getenv("DB_DSN", "reservation.db"),
		RedisAddr:    getenv("REDIS_ADDR", "localhost:6379"),
	}
}

// OpenKV membuka medium key-value sesuai STORE_BACKEND.
func OpenKV(cfg Config) (store.KV, error) {
	switch cfg.StoreBackend {
	case "memory":
		return store.NewMemoryKV(), nil
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(cfg.DBDSN), &gorm.Config{})
		if err != nil {
			return nil, err
		}
		return store.NewGormKV(db)
	case "mysql":
		db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
		if err != nil {
			return nil, err
		}
		return store.NewGormKV(db)
	case "redis":
		return store.NewRedisKV(cfg.RedisAddr), nil
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
