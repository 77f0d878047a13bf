package main

import (
	"log"

	"github.com/avc-dev/linkcut/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
