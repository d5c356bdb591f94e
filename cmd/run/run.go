package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/Philanthropists/phab-email-events/internal/config"
	"github.com/Philanthropists/phab-email-events/internal/handler"
	"github.com/Philanthropists/phab-email-events/internal/logger"
	"github.com/Philanthropists/phab-email-events/internal/sync"
	"github.com/Philanthropists/phab-email-events/internal/sync/common"
)

var GitCommit string

func main() {
	credentialsFile := flag.String("config", config.DefaultCredentialsFile, "path to the credentials file")
	flag.Parse()

	auth, err := config.Load(*credentialsFile)
	if err != nil {
		logger.GetLogger().Fatalw("could not load configuration",
			"error", err)
	}

	if err := logger.Init(auth.LogLevel, auth.LogDev); err != nil {
		logger.GetLogger().Fatalw("could not initialize logger",
			"error", err)
	}
	log := logger.GetLogger()
	defer log.Sync()

	common.PrintVersion(GitCommit)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		<-ctx.Done()
		// a second interrupt kills the process
		stop()
	}()

	h, err := handler.Build(auth)
	if err != nil {
		log.Fatalw("could not build handler",
			"error", err)
	}

	poller := sync.NewPoller(sync.NewDialer(auth), h,
		sync.WithPollInterval(time.Duration(auth.PollIntervalSeconds)*time.Second),
		sync.WithReconnectInterval(time.Duration(auth.ReconnectIntervalSeconds)*time.Second),
	)

	if err := poller.Run(ctx); err != nil {
		log.Fatalw("poller failed",
			"error", err)
	}
}
