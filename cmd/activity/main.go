package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reqforge-ai-be/internal/config"
	"reqforge-ai-be/internal/pkg/logger"
	"reqforge-ai-be/pkg/events"
	pktNats "reqforge-ai-be/pkg/nats"

	"github.com/fatih/color"
)

// activity tails the JetStream relay and prints every event.
func main() {
	cfg := config.Load()

	url := flag.String("nats", cfg.Events.NatsURL, "NATS server URL")
	eventType := flag.String("type", "", "only show this event type (e.g. BRD_GENERATED)")
	durable := flag.String("durable", "reqforge-activity-tail", "durable consumer name")
	flag.Parse()

	if *url == "" {
		color.Red("NATS URL is required (-nats or NATS_URL)")
		os.Exit(1)
	}

	sub, err := pktNats.NewSubscriber(*url, logger.NewNopLogger())
	if err != nil {
		color.Red("Failed to connect: %v", err)
		os.Exit(1)
	}
	defer sub.Close()

	subject := pktNats.SubjectPrefix + ">"
	if *eventType != "" {
		subject = pktNats.Subject(*eventType)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = sub.Subscribe(ctx, subject, *durable, func(_ context.Context, event events.Event) error {
		data, err := json.Marshal(event.Payload())
		if err != nil {
			return err
		}
		color.Green("%s %-20s", event.Timestamp().Format(time.RFC3339), event.EventType())
		color.White("  %s", data)
		return nil
	})
	if err != nil {
		color.Red("Failed to subscribe: %v", err)
		return
	}

	color.Cyan("Listening on %s (Ctrl+C to stop)", subject)
	<-ctx.Done()
}
