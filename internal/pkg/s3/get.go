package s3

import (
	"context"
	"io"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"github.com/d4rkfella/object-fetch/internal/fault"
)

// GetObject issues a single GetObject request. The caller owns the returned body.
// Failures are returned as *fault.Error.
func (c *Client) GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	result, err := c.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		kind := classify(err)
		log.Debug().Err(err).Str("component", "s3").Str("bucket", bucket).Str("key", key).Stringer("kind", kind).Msg("GetObject failed")
		return nil, fault.New(kind, bucket, key, err)
	}
	if result.Body == nil {
		return http.NoBody, nil
	}
	return result.Body, nil
}
