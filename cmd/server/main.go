package main

import (
	"log"
	"net/http"

	"spades-game/internal/config"
	"spades-game/internal/database"
	"spades-game/internal/server"
)

func main() {
	log.Println("Starting Spades server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open results database: %v", err)
	}
	defer db.Close()

	hub := server.NewHub(db, cfg)
	go hub.Run()

	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		server.ServeWs(hub, w, r)
	})

	server.HandleRoutes(db)

	log.Printf("Listening on %s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, nil))
}
