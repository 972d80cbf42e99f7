//go:build tools

package main

// Pins the swag CLI used to regenerate the swagger spec from handler
// annotations: go run github.com/swaggo/swag/cmd/swag init -g cmd/api/main.go
import (
	_ "github.com/swaggo/swag"
)
