package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/jotsync/internal/client/config"
	"github.com/dmitrijs2005/jotsync/internal/client/localstore"
	"github.com/dmitrijs2005/jotsync/internal/client/widget"
	"github.com/dmitrijs2005/jotsync/internal/logging"

	_ "modernc.org/sqlite"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	store, err := localstore.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer store.Close()

	w := widget.New(store, logger, cfg.WidgetPollInterval, os.Stdout)
	w.Run(ctx)
}
