package s3

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"github.com/d4rkfella/object-fetch/internal/util"
)

// Config selects where the client talks to. Credentials always come from the
// ambient identity (execution role, environment, shared config).
type Config struct {
	Region   string
	Endpoint string
}

type Client struct {
	s3Client s3API
}

// NewClient builds a client meant to be created once per process and reused
// across invocations. SDK retries are disabled.
func NewClient(ctx context.Context, cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
	}
	if cfg.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(cfg.Region))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	opts := []func(*s3.Options){}
	if cfg.Endpoint != "" {
		log.Debug().Str("component", "s3").Str("endpoint", util.RedactURL(cfg.Endpoint)).Msg("Using custom S3 endpoint")
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	return &Client{
		s3Client: s3.NewFromConfig(awsCfg, opts...),
	}, nil
}
