package main

import (
	"log"
	"net/http"

	"escape-tracker/internal/config"
	"escape-tracker/internal/db"
	"escape-tracker/internal/registry"
	"escape-tracker/internal/server"

	"gorm.io/gorm"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	var conn *gorm.DB
	if cfg.DatabaseURL != "" {
		opened, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("database connection failed: %v", err)
		}
		if err := db.Migrate(opened); err != nil {
			log.Fatalf("database migration failed: %v", err)
		}
		conn = opened
		log.Println("result audit log enabled")
	}

	srv := server.New(registry.New(), conn, cfg)
	addr := cfg.ListenAddr()
	log.Printf("escape-tracker server listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		log.Fatal(err)
	}
}
