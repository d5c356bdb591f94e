package main

import (
	"context"

	"github.com/Philanthropists/phab-email-events/internal/config"
	"github.com/Philanthropists/phab-email-events/internal/dynamodb"
	"github.com/Philanthropists/phab-email-events/internal/handler"
	"github.com/Philanthropists/phab-email-events/internal/logger"
	"github.com/Philanthropists/phab-email-events/internal/sync"
	"github.com/Philanthropists/phab-email-events/internal/sync/common"
	"github.com/aws/aws-lambda-go/lambda"
)

const defaultRegion = "us-east-1"

var GitCommit string

// HandleRequest runs a single poll cycle, continuing from the cursor
// persisted by the previous invocation.
func HandleRequest(ctx context.Context) error {
	auth, err := config.Load(config.DefaultCredentialsFile)
	if err != nil {
		return err
	}

	if err := logger.Init(auth.LogLevel, auth.LogDev); err != nil {
		return err
	}
	log := logger.GetLogger()
	defer log.Sync()

	common.PrintVersion(GitCommit)

	region := auth.CursorRegion
	if region == "" {
		region = defaultRegion
	}

	dynamo, err := dynamodb.NewClient(ctx, region)
	if err != nil {
		return err
	}

	h, err := handler.Build(auth)
	if err != nil {
		return err
	}

	poller := sync.NewPoller(sync.NewDialer(auth), h,
		sync.WithCursorStore(sync.NewDynamoCursor(dynamo, auth.CursorTable)),
	)
	defer poller.Close()

	if err := poller.Tick(ctx); err != nil {
		return err
	}

	log.Infow("poll cycle done",
		"cursor", poller.Cursor())

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
