package s3

import (
	"errors"
	"net/http"

	smithy "github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	"github.com/d4rkfella/object-fetch/internal/fault"
)

var notFoundCodes = map[string]bool{
	"NoSuchKey":    true,
	"NoSuchBucket": true,
	"NotFound":     true,
}

var accessDeniedCodes = map[string]bool{
	"AccessDenied":          true,
	"AllAccessDisabled":     true,
	"InvalidAccessKeyId":    true,
	"SignatureDoesNotMatch": true,
	"ExpiredToken":          true,
	"Forbidden":             true,
}

// classify maps an SDK error to a fault kind. API error codes win over the
// HTTP status; errors without a service response are transport faults unless
// the request could not be serialized at all.
func classify(err error) fault.Kind {
	var serErr *smithy.SerializationError
	if errors.As(err, &serErr) {
		return fault.KindRequest
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch code := apiErr.ErrorCode(); {
		case notFoundCodes[code]:
			return fault.KindNotFound
		case accessDeniedCodes[code]:
			return fault.KindAccessDenied
		}
	}

	var respErr *smithyhttp.ResponseError
	if errors.As(err, &respErr) && respErr.Response != nil && respErr.Response.Response != nil {
		switch respErr.HTTPStatusCode() {
		case http.StatusNotFound:
			return fault.KindNotFound
		case http.StatusForbidden:
			return fault.KindAccessDenied
		}
		return fault.KindService
	}

	if apiErr != nil {
		return fault.KindService
	}
	return fault.KindTransport
}
