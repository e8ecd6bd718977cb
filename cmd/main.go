package main

import (
	"os"

	"github.com/ycz425/VertTracker-API/config"
	"github.com/ycz425/VertTracker-API/routes"
)

func main() {
	config.InitDB()

	r := routes.SetupRouter(config.DB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
