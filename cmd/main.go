// cmd/main.go
package main

import (
	"recipe-api/app"
)

// @title           Recipe API
// @version         1.0
// @description     Personal recipe manager with per-user recipe storage and bearer-token authentication.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8000
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
