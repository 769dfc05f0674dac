package s3

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type s3GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type s3API interface {
	s3GetObjectAPI
}

var _ s3API = (*s3.Client)(nil)
