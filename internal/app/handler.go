package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/d4rkfella/object-fetch/internal/config"
	"github.com/d4rkfella/object-fetch/internal/fault"
	"github.com/d4rkfella/object-fetch/internal/util"
)

const errorBodyPrefix = "Error reading file: "

// Response is the envelope returned for every invocation that reaches the store.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// Handler serves one fixed object. It holds no per-invocation state and is safe
// for concurrent use.
type Handler struct {
	bucket string
	key    string
	store  ObjectStore
}

// NewHandler fails with a *config.MissingError when bucket or key is empty, so
// a misconfigured function never produces an envelope.
func NewHandler(bucket, key string, store ObjectStore) (*Handler, error) {
	var missing []string
	if bucket == "" {
		missing = append(missing, config.EnvBucketName)
	}
	if key == "" {
		missing = append(missing, config.EnvFileName)
	}
	if len(missing) > 0 {
		return nil, &config.MissingError{Keys: missing}
	}
	if store == nil {
		return nil, errors.New("object store is nil")
	}
	return &Handler{bucket: bucket, key: key, store: store}, nil
}

// Handle runs one invocation. The trigger payload is accepted but not inspected.
// Fetch and decode failures become a 500 envelope; the returned error is always nil.
func (h *Handler) Handle(ctx context.Context, _ json.RawMessage) (Response, error) {
	start := time.Now()
	logger := log.With().
		Str("request_id", requestID(ctx)).
		Str("bucket", h.bucket).
		Str("key", util.TruncateKey(h.key, 128)).
		Logger()

	text, err := Fetch(ctx, h.store, h.bucket, h.key)
	if err != nil {
		logger.Error().
			Err(err).
			Stringer("kind", fault.KindOf(err)).
			Dur("duration", time.Since(start)).
			Msg("Object fetch failed")
		return Response{StatusCode: http.StatusInternalServerError, Body: errorBodyPrefix + err.Error()}, nil
	}

	logger.Info().
		Str("size", humanize.Bytes(uint64(len(text)))).
		Dur("duration", time.Since(start)).
		Msg("Object fetched")
	return Response{StatusCode: http.StatusOK, Body: text}, nil
}

func requestID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return uuid.NewString()
}
