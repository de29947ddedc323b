package main

import "bienesraices/internal/app"

func main() {
	app.Run()
}
