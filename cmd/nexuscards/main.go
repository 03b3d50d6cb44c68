package main

import (
	"context"
	"log"

	"github.com/cheaguirre/nexuscards/internal/cli"
	"github.com/cheaguirre/nexuscards/internal/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	app.Run(ctx)

}
