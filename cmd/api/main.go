package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/marketconnect/backend/internal/config"
	"github.com/marketconnect/backend/internal/db"
	"github.com/marketconnect/backend/internal/model"
	"github.com/marketconnect/backend/internal/server"
	"github.com/marketconnect/backend/internal/session"
	"github.com/marketconnect/backend/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	if err := conn.AutoMigrate(
		&model.User{},
		&model.VendorProfile{},
		&model.CustomerProfile{},
		&model.Category{},
		&model.Product{},
		&model.Order{},
		&model.Conversation{},
		&model.Message{},
		&model.VendorPhoto{},
		&model.ActivityLog{},
		&model.Subscription{},
		&model.Favorite{},
	); err != nil {
		log.Fatalf("auto migrate error: %v", err)
	}

	rdb := session.NewClient(cfg.RedisAddr)
	store := session.NewStore(rdb, time.Duration(cfg.SessionTTLMinutes)*time.Minute)

	uploader, err := storage.NewUploader(context.Background(), cfg.StorageBucket)
	if err != nil {
		log.Printf("storage init error, image uploads disabled: %v", err)
		uploader = nil
	}

	srv, err := server.New(conn, cfg, store, uploader)
	if err != nil {
		log.Fatalf("server init error: %v", err)
	}

	addr := ":" + cfg.Port
	log.Printf("starting server on %s", addr)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
