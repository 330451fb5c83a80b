package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/camrent/config"
	"github.com/Domenick1991/camrent/internal/kafka"
	"github.com/Domenick1991/camrent/internal/telegram"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.NotificationsTopic == "" {
		log.Fatalf("worker needs kafka.brokers and kafka.notifications_topic")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	notifier := telegram.NewNotifier(cfg.Telegram)

	log.Printf("worker: consuming %s", cfg.Kafka.NotificationsTopic)
	err = consumer.Consume(ctx, kafka.EventHandler(func(ctx context.Context, event kafka.BookingEvent) error {
		if err := notifier.Send(ctx, event); err != nil {
			log.Printf("notify %s error: %v", event.BookingID, err)
		}
		return nil
	}))
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("consumer stopped: %v", err)
	}
	log.Printf("worker: shutting down")
}
