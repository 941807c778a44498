package main

import (
	"log"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cfg := loadConfig()

	s, err := newSite(cfg)
	if err != nil {
		log.Fatal("Failed to start site: ", err)
	}
	defer s.db.Close()

	go s.cleanupOldVisitorData()

	r := s.router()
	log.Printf("Portfolio for %s listening on :%s", s.content.Name, cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
