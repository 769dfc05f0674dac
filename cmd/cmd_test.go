package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/d4rkfella/object-fetch/internal/app"
	"github.com/d4rkfella/object-fetch/internal/config"
	"github.com/d4rkfella/object-fetch/internal/fault"
)

func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	cfgFile = filepath.Join(os.TempDir(), "nonexistent-dir", "nonexistent.yaml")

	err = root.Execute()

	return buf.String(), err
}

// Helper to reset viper between tests
func resetViper() {
	viper.Reset()
}

type fakeStore struct {
	objects map[string]string
	calls   int
}

func (s *fakeStore) GetObject(_ context.Context, bucket, key string) (io.ReadCloser, error) {
	s.calls++
	content, ok := s.objects[bucket+"/"+key]
	if !ok {
		return nil, fault.New(fault.KindNotFound, bucket, key, errors.New("NoSuchKey: The specified key does not exist."))
	}
	return io.NopCloser(bytes.NewBufferString(content)), nil
}

// stubStore replaces the S3 client factory for the duration of a test.
func stubStore(t *testing.T, store app.ObjectStore) *config.Config {
	t.Helper()
	var received config.Config
	original := newObjectStore
	newObjectStore = func(ctx context.Context, cfg *config.Config) (app.ObjectStore, error) {
		received = *cfg
		return store, nil
	}
	t.Cleanup(func() { newObjectStore = original })
	return &received
}
