package main // entry point for the wholesale portal server

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/wholesale-portal/internal/config"
	"github.com/iliyamo/wholesale-portal/internal/database"
	"github.com/iliyamo/wholesale-portal/internal/handler"
	"github.com/iliyamo/wholesale-portal/internal/middleware"
	"github.com/iliyamo/wholesale-portal/internal/queue"
	"github.com/iliyamo/wholesale-portal/internal/repository"
	"github.com/iliyamo/wholesale-portal/internal/router"
)

func main() {
	// Load .env when present; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database open: %v", err)
	}

	// Redis backs dashboard sessions, response caching and rate limiting.
	// A nil client disables all three; the API keeps working on JWTs alone.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; dashboard sessions, cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	stores := repository.NewStoreRepo(db)
	vendors := repository.NewVendorRepo(db)
	purchases := repository.NewPurchaseInwardRepo(db)
	stocks := repository.NewStockInwardRepo(db)

	authH := handler.NewAuthHandler(cfg, users, tokens, rdb)
	portalH := handler.NewPortalHandler(stores, vendors, purchases, stocks, users)
	dashH := handler.NewDashboardHandler()

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterPortalAPI(e, portalH, cfg.JWTSecret, cacheMW)
	router.RegisterDashboard(e, dashH, rdb)

	// Background consumer that mirrors inward events into logs/inward.log.
	go func() {
		if err := queue.StartInwardConsumer(); err != nil {
			log.Printf("inward consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
