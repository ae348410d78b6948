package main

import (
	_ "kasra-bnpl/docs"
	"kasra-bnpl/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Kasra BNPL API
// @version         1.0
// @description     Storefront backend: direct HBAR payments and Buy Now, Pay Later agreements with ledger-logged payment references.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

func main() {
	routes.Run()
}
