package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap/zapcore"

	"github.com/dmitrijs2005/jotsync/internal/buildinfo"
	"github.com/dmitrijs2005/jotsync/internal/client/cli"
	"github.com/dmitrijs2005/jotsync/internal/client/config"
	"github.com/dmitrijs2005/jotsync/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, flush := logging.NewProductionZapLogger(zapcore.InfoLevel)
	defer flush()

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
