// filepath: cmd/servicehub/main.go
package main

import (
	"servicehub/internal/cli"

	// Import docs for Swagger
	_ "servicehub/docs"
)

// @title servicehub API
// @version 1.0.0
// @description Read-only catalog of services backed by an in-memory or SQLite repository.
// @BasePath /
// @schemes http

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
