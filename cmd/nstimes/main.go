package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/arunsworld/nstimes/config"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	config.LoadDotEnv()

	ctx, shutdown := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(newApp(config.Load())).ExecuteContext(ctx)
	shutdown()
	if err != nil {
		log.Printf("ERROR: %v", err)
		os.Exit(exitCode(err))
	}
}
