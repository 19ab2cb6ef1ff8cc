package main

import (
	"warranty_intake/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Warranty Claim Intake API
// @version         1.0
// @description     Accepts warranty-claim submissions, allocates claim numbers and forwards claims to the CRM and email provider.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
