package app

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/d4rkfella/object-fetch/internal/fault"
)

// Fetch reads the whole object and returns it as text. Every failure is a
// *fault.Error: store errors keep their kind, invalid UTF-8 is KindDecode and an
// interrupted stream is KindTransport.
func Fetch(ctx context.Context, store ObjectStore, bucket, key string) (string, error) {
	body, err := store.GetObject(ctx, bucket, key)
	if err != nil {
		var fe *fault.Error
		if errors.As(err, &fe) {
			return "", err
		}
		return "", fault.New(fault.KindTransport, bucket, key, err)
	}
	if body == nil {
		body = http.NoBody
	}
	defer func() {
		if err := body.Close(); err != nil {
			log.Warn().Err(err).Str("bucket", bucket).Str("key", key).Msg("Failed to close object body")
		}
	}()

	data, err := io.ReadAll(transform.NewReader(body, encoding.UTF8Validator))
	if err != nil {
		if errors.Is(err, encoding.ErrInvalidUTF8) {
			return "", fault.New(fault.KindDecode, bucket, key, err)
		}
		return "", fault.New(fault.KindTransport, bucket, key, err)
	}
	return string(data), nil
}
