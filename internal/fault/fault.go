// Package fault classifies failures on the object fetch path.
//
// Every failure keeps its identity internally as a Kind, while its Error text is
// the underlying description so callers that collapse faults into a single
// response still surface the original message.
package fault

import "errors"

// Kind is the class of a fetch failure.
type Kind int

const (
	// KindTransport covers network faults, interrupted streams and cancelled contexts.
	KindTransport Kind = iota
	// KindNotFound means the bucket or the object does not exist.
	KindNotFound
	// KindAccessDenied means the ambient identity may not read the object.
	KindAccessDenied
	// KindDecode means the object content is not valid UTF-8.
	KindDecode
	// KindService is any other error reported by the storage service.
	KindService
	// KindRequest means the client could not build the request, so nothing was sent.
	KindRequest
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindNotFound:
		return "not_found"
	case KindAccessDenied:
		return "access_denied"
	case KindDecode:
		return "decode"
	case KindService:
		return "service"
	case KindRequest:
		return "request"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is; they match any *Error of the same Kind.
var (
	ErrTransport    = &Error{Kind: KindTransport}
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrAccessDenied = &Error{Kind: KindAccessDenied}
	ErrDecode       = &Error{Kind: KindDecode}
	ErrService      = &Error{Kind: KindService}
	ErrRequest      = &Error{Kind: KindRequest}
)

// Error is a classified fetch failure for one bucket/key pair.
type Error struct {
	Kind   Kind
	Bucket string
	Key    string
	Err    error
}

// New wraps err with its classification.
func New(kind Kind, bucket, key string, err error) *Error {
	return &Error{Kind: kind, Bucket: bucket, Key: key, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the package sentinels by Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Err != nil {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or KindTransport
// for unclassified errors.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindTransport
}
