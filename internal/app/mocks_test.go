package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/d4rkfella/object-fetch/internal/fault"
)

type mockObjectStore struct {
	mock.Mock
}

var _ ObjectStore = (*mockObjectStore)(nil)

func (m *mockObjectStore) GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, bucket, key)
	body, _ := args.Get(0).(io.ReadCloser)
	return body, args.Error(1)
}

// memoryStore serves fixed objects and hands out a fresh reader per call.
type memoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	calls   int
}

func (s *memoryStore) GetObject(_ context.Context, bucket, key string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	data, ok := s.objects[bucket+"/"+key]
	if !ok {
		return nil, fault.New(fault.KindNotFound, bucket, key, errors.New("NoSuchKey: The specified key does not exist."))
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// failingReader yields some bytes and then a stream error.
type failingReader struct {
	data []byte
	err  error
	done bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, r.err
	}
	r.done = true
	return copy(p, r.data), nil
}

type trackingCloser struct {
	io.Reader
	closed bool
}

func (c *trackingCloser) Close() error {
	c.closed = true
	return nil
}
