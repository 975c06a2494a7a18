package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/projectdiscovery/gologger"

	"github.com/andyrodri-503/Ping-Sweep/internal/runner"
	"github.com/andyrodri-503/Ping-Sweep/pkg/probe"
)

func main() {
	options := runner.ParseOptions()
	prober, err := probe.NewCommandProber()
	if err != nil {
		gologger.Fatal().Msgf("Could not resolve ping binary: %s\n", err)
	}
	sweepRunner, err := runner.NewRunner(options, prober)
	if err != nil {
		gologger.Fatal().Msgf("Could not create runner: %s\n", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	// Setup close handler
	go func() {
		<-c
		gologger.Info().Msg("interrupt received, stopping sweep")
		cancel()
	}()

	if err := sweepRunner.Run(ctx); err != nil {
		gologger.Fatal().Msgf("Could not run sweep: %s\n", err)
	}
}
