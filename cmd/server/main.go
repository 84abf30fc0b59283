package main

import "quotedesk/go_backend/internal/app"

func main() {
	app.Run()
}
