package main

import (
	"log"

	"github.com/Thiccblique/Tusday.com/internal/config"
	"github.com/Thiccblique/Tusday.com/internal/server"
)

// @title           Tusday API
// @version         1.0
// @description     Boards, columns, tasks and cells of the Tusday task board.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
