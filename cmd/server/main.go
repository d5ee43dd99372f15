package main

import (
	"os"

	"sehat-ai/backend/internal/app"
)

// @title           Sehat AI Backend
// @version         1.0
// @description     Health-assistant chat backend: streams completions over SSE and answers location-aware healthcare resource queries.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a JWT.

func main() {
	os.Exit(app.Run())
}
