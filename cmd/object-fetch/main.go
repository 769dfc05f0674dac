package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/d4rkfella/object-fetch/cmd"
	"github.com/d4rkfella/object-fetch/internal/logging"
)

var (
	// version is set during build time.
	version = "dev"
	// commit is set during build time.
	commit = "none"
)

func main() {
	logging.Init("info", "json")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd.SetVersion(version, commit)
	cmd.SetContext(ctx)
	cmd.Execute()
}
