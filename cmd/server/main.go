package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/jaev1996/atria-fitness/internal/config"
	"github.com/jaev1996/atria-fitness/internal/database"
	"github.com/jaev1996/atria-fitness/internal/engine"
	"github.com/jaev1996/atria-fitness/internal/handler"
	"github.com/jaev1996/atria-fitness/internal/middleware"
	"github.com/jaev1996/atria-fitness/internal/queue"
	"github.com/jaev1996/atria-fitness/internal/router"
	"github.com/jaev1996/atria-fitness/internal/store"
)

func main() {
	// .env is optional; real deployments set the variables directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	st := store.NewMySQLStore(db, cfg.StateKey)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := st.EnsureSchema(ctx); err != nil {
		cancel()
		log.Fatalf("schema setup failed: %v", err)
	}
	cancel()

	// Redis backs the GET response cache.  A nil client disables caching.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, response cache disabled")
	}
	cacheCfg := config.LoadCacheConfig()

	svc := engine.NewService(st)
	svc.SetNotifier(func(ctx context.Context, ev engine.ChangeEvent) {
		_ = queue.PublishStoreChanged(ctx, queue.StoreChangedEvent{
			Entity:     ev.Entity,
			Action:     ev.Action,
			EntityID:   ev.ID,
			OccurredAt: time.Now().UTC().Format(time.RFC3339),
		})
		middleware.FlushCache(ctx, rdb, cacheCfg.Prefix)
	})

	// The consumer tails store.changed into the activity log.  It
	// reconnects on its own; a dead broker only costs the log.
	go func() {
		if err := queue.StartStoreConsumer(); err != nil {
			log.Printf("store-consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e, router.Handlers{
		Students:    handler.NewStudentHandler(svc),
		Instructors: handler.NewInstructorHandler(svc),
		Sessions:    handler.NewSessionHandler(svc),
		Payroll:     handler.NewPayrollHandler(svc),
		Settings:    handler.NewSettingsHandler(svc),
	}, middleware.NewRedisCache(cacheCfg, rdb))

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
