package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Nhongkham198/SGdelivery/internal/auth"
	"github.com/Nhongkham198/SGdelivery/internal/db"
	"github.com/Nhongkham198/SGdelivery/internal/ingest"
	"github.com/Nhongkham198/SGdelivery/internal/logger"
	"github.com/Nhongkham198/SGdelivery/internal/menu"
	"github.com/Nhongkham198/SGdelivery/internal/order"
	"github.com/Nhongkham198/SGdelivery/internal/router"
	"github.com/Nhongkham198/SGdelivery/internal/sheet"
	"github.com/Nhongkham198/SGdelivery/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	logger.Init()
	defer logger.Sync()

	required := []string{
		"MENU_SHEET_URL",
		"DATABASE_URL",
		"JWT_SECRET",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}
	for _, k := range required {
		if os.Getenv(k) == "" {
			logger.L().Fatal("missing env var", zap.String("key", k))
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		logger.L().Fatal("R2 init failed", zap.Error(err))
	}

	// ───────────────────────── MENU PIPELINE ─────────────────────────
	pipeline := ingest.NewPipeline(sheet.NewClient(os.Getenv("MENU_SHEET_URL")))
	menuService := menu.NewService(pipeline, refreshInterval())
	menuHandler := menu.NewHandler(menuService)

	// Warm the snapshot so the first customer does not wait on the sheet.
	menuService.Refresh(context.Background())

	// ───────────────────────── ORDERS ─────────────────────────
	orderRepo := order.NewPostgresRepository(pgDB)
	orderService := order.NewService(orderRepo, menuService, r2Client)
	orderHandler := order.NewHandler(orderService)

	// ───────────────────────── AUTH ─────────────────────────
	ownerRepo := auth.NewPostgresOwnerRepository(pgDB)
	authService := auth.NewService(ownerRepo)
	authHandler := auth.NewHandler(authService)

	// ───────────────────────── HTTP ─────────────────────────
	corsMiddleware := cors.New(cors.Config{
		AllowOrigins:     corsOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})

	r := router.New(menuHandler, orderHandler, authHandler, corsMiddleware)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.L().Info("storefront API listening", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func refreshInterval() time.Duration {
	raw := os.Getenv("MENU_REFRESH_INTERVAL")
	if raw == "" {
		return 5 * time.Minute
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		logger.L().Warn("invalid MENU_REFRESH_INTERVAL, using 5m", zap.String("value", raw))
		return 5 * time.Minute
	}
	return d
}

func corsOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return []string{"http://localhost:3000", "http://localhost:5173"}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
