package main

import "chronos/internal/app"

// @title           Chronos Operations Dashboard API
// @version         1.0
// @description     Task tracking, utility bills and reporting for a single operations team.
// @BasePath        /
func main() {
	app.Run()
}
