package main

import (
	"context"
	"log"
	"os"

	"github.com/giglink/giglink-cli/internal/buildinfo"
	"github.com/giglink/giglink-cli/internal/client/cli"
	"github.com/giglink/giglink-cli/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

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
