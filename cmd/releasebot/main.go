package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"release-notes-bot/internal/di"
	"release-notes-bot/internal/domain/model"
)

func main() {
	once := flag.Bool("once", false, "run a single digest and exit")
	testTimestamp := flag.String("test-timestamp", "", "run once in test mode for this timestamp (skips ingestion)")
	flag.Parse()

	if err := run(*once, *testTimestamp); err != nil {
		log.Fatalf("release bot: %v", err)
	}
}

func run(once bool, testTimestamp string) error {
	trigger := model.Trigger{}
	if testTimestamp != "" {
		ts, err := model.ParseTimestamp(testTimestamp)
		if err != nil {
			return err
		}
		trigger = model.TestTrigger(ts)
		once = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, cleanup, err := di.InitializeApp(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if !once {
		return application.Run(ctx)
	}

	resp, err := application.RunOnce(ctx, trigger)
	if err != nil {
		return err
	}
	if resp == nil {
		log.Printf("no new releases")
		return nil
	}
	log.Printf("digest delivered: status %d", resp.StatusCode)
	return nil
}
