package main // Entry point package

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/skill-swap/internal/config"
	"github.com/iliyamo/skill-swap/internal/database"
	"github.com/iliyamo/skill-swap/internal/handler"
	"github.com/iliyamo/skill-swap/internal/queue"
	"github.com/iliyamo/skill-swap/internal/repository"
	"github.com/iliyamo/skill-swap/internal/router"
	"github.com/iliyamo/skill-swap/internal/store"
	"github.com/iliyamo/skill-swap/internal/workflow"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	rdb := config.NewRedisClient()

	st, err := newStore(cfg, rdb)
	if err != nil {
		log.Fatalf("store init failed: %v", err)
	}

	repo := repository.New(st)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := repo.Load(ctx); err != nil {
		log.Fatalf("load collections failed: %v", err)
	}

	wf := workflow.New(repo)

	// The consumer drains the session event queues into
	// logs/sessions.log. It only makes sense when a broker is
	// configured; otherwise the reconnect loop would hammer localhost.
	if os.Getenv("RABBITMQ_URL") != "" || os.Getenv("AMQP_URL") != "" {
		go func() {
			if err := queue.StartSessionConsumer(); err != nil {
				log.Printf("session consumer stopped: %v", err)
			}
		}()
	}

	auth := handler.NewAuthHandler(cfg, repo)
	skills := handler.NewSkillsHandler(repo)
	requests := handler.NewRequestsHandler(wf, repo)
	sessions := handler.NewSessionsHandler(wf, repo)
	cal := handler.NewCalendarHandler(repo)

	e := echo.New()
	router.RegisterRoutes(e, skills)
	router.RegisterAuth(e, auth)
	router.RegisterAPI(e, cfg, auth, skills, requests, sessions, cal, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s store=%s)", addr, cfg.Env, cfg.StoreBackend)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// newStore selects the durable store backend. Redis and MySQL require
// their servers to be reachable; the memory backend keeps everything
// in-process and loses data on exit.
func newStore(cfg config.Config, rdb *redis.Client) (store.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendRedis:
		if rdb == nil {
			return nil, errors.New("redis backend selected but redis is unreachable")
		}
		return store.NewRedis(rdb), nil
	case config.BackendMySQL:
		if cfg.DBUser == "" || cfg.DBName == "" {
			return nil, errors.New("mysql backend requires DB_USER and DB_NAME")
		}
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return store.NewMySQL(ctx, db)
	case config.BackendMemory:
		return store.NewMemory(), nil
	}
	return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
}
