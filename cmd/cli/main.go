package main

import (
	"context"
	"log"

	"github.com/badgergram/badgerclient/internal/cli"
	"github.com/badgergram/badgerclient/internal/config"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
