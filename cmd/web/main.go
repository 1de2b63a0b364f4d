package main

import "skillpilot_backend/internal/app"

func main() {
	app.Run()
}
