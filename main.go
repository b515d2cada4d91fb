/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/taskgate/clickup-gateway/cmd"

// @title ClickUp Gateway API
// @version 1.0
// @description REST gateway in front of the ClickUp API with JWT authentication, role based access control and rate limiting.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cmd.Execute()
}
