package main

import (
	"github.com/kinoduet/core/internal/app"
	"github.com/kinoduet/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
