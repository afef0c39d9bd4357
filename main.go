package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/yeremiapane/reservation-app/config"
	"github.com/yeremiapane/reservation-app/router"
	"github.com/yeremiapane/reservation-app/store"
	"github.com/yeremiapane/reservation-app/utils"
)

func init() {
	utils.InitLogger()

	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Printf("Warning: .env file not found or error loading: %v", err)
	}
}

func main() {
	cfg := config.Load()

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Buka medium KV lalu muat entity store
	kv, err := config.OpenKV(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open store backend %q: %v", cfg.StoreBackend, err)
	}

	st := store.New(kv)
	if err := st.Load(context.Background()); err != nil {
		utils.ErrorLogger.Fatalf("Failed to load store: %v", err)
	}
	utils.InfoLogger.Printf("Store loaded (backend=%s)", cfg.StoreBackend)

	// Pembersihan blacklist token secara periodik
	go func() {
		for {
			time.Sleep(1 * time.Hour)
			utils.CleanupBlacklist()
		}
	}()

	r := router.SetupRouter(st)
	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
