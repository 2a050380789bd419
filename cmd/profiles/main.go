package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/profiles/internal/app"
	"github.com/dmitrijs2005/profiles/internal/config"
	"github.com/dmitrijs2005/profiles/internal/flagx"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	a, err := app.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	if err := a.Run(ctx, flagx.PositionalArgs(os.Args[1:])); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}
