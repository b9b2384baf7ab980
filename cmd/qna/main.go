package main

import (
	"log"

	"github.com/joho/godotenv"

	"qna/cmd/internal/app"
)

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
