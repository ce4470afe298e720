package main

import (
	"log"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	s, err := newServer(cfg)
	if err != nil {
		log.Fatalf("Invalid loader schedule: %v", err)
	}

	r := gin.Default()
	r.LoadHTMLGlob("templates/*")
	r.Static("/images", "./images")
	r.Static("/static", "./static")
	s.routes(r)

	log.Printf("Portfolio listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
