package cmd

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/d4rkfella/object-fetch/internal/app"
	"github.com/d4rkfella/object-fetch/internal/config"
	"github.com/d4rkfella/object-fetch/internal/logging"
	"github.com/d4rkfella/object-fetch/internal/pkg/s3"
)

var (
	newObjectStore = func(ctx context.Context, cfg *config.Config) (app.ObjectStore, error) {
		client, err := s3.NewClient(ctx, &s3.Config{Region: cfg.Region, Endpoint: cfg.Endpoint})
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	startLambda = func(handler any) { lambda.Start(handler) }

	setupResources = setupSystemResources
)

func runLambda(cmd *cobra.Command, args []string) error {
	handler, cfg, err := buildHandler(cmd.Context())
	if err != nil {
		return err
	}

	setupResources(cfg.MemoryLimitRatio)

	log.Info().Str("component", "runtime").Str("bucket", cfg.BucketName).Str("key", cfg.ObjectKey).Msg("Starting Lambda runtime")
	startLambda(handler.Handle)
	return nil
}

// buildHandler loads configuration and creates the store client once; both are
// shared by every invocation served by this process.
func buildHandler(ctx context.Context) (*app.Handler, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	logging.Init(cfg.LogLevel, cfg.LogFormat)

	log.Debug().Str("component", "s3").Msg("Initializing S3 client")
	store, err := newObjectStore(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("s3 client creation failed: %w", err)
	}

	handler, err := app.NewHandler(cfg.BucketName, cfg.ObjectKey, store)
	if err != nil {
		return nil, nil, err
	}
	return handler, cfg, nil
}
