package main

import (
	"log"
	"os"

	"github.com/DevAnseSenior/daily-diet/config"
	"github.com/DevAnseSenior/daily-diet/routes"
)

func main() {
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("database setup: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(db)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
