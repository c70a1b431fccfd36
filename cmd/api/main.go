package main

import (
	_ "osms-portal/docs"
	"osms-portal/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           OSMS Portal API
// @version         1.0
// @description     RFQ lifecycle, NDA and enquiry portal backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
