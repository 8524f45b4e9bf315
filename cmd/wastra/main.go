// Wastra - crafts marketplace and community client
//
// An offline-first terminal client for the Wastra crafts community:
// course catalog, karya gallery, and forum, all cached locally.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/wastra-labs/wastra/internal/cli"
	"github.com/wastra-labs/wastra/internal/telemetry"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	telemetryClient := telemetry.New()
	defer telemetryClient.Close()

	if err := cli.Execute(ctx, telemetryClient); err != nil {
		os.Exit(1)
	}
}
