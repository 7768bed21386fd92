package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/jobdesk/jobdesk/internal/buildinfo"
	"github.com/jobdesk/jobdesk/internal/client/cli"
	"github.com/jobdesk/jobdesk/internal/client/config"
	"github.com/jobdesk/jobdesk/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
