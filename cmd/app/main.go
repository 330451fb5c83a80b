package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/camrent/api"
	"github.com/Domenick1991/camrent/config"
	catalogapi "github.com/Domenick1991/camrent/internal/api/catalog_service_api"
	"github.com/Domenick1991/camrent/internal/bootstrap"
	"github.com/Domenick1991/camrent/internal/cache"
	"github.com/Domenick1991/camrent/internal/catalog"
	"github.com/Domenick1991/camrent/internal/kafka"
	"github.com/Domenick1991/camrent/internal/repository"
	"github.com/Domenick1991/camrent/internal/service/booking"
	"github.com/Domenick1991/camrent/internal/service/cameras"
	"github.com/Domenick1991/camrent/internal/service/sessions"
	"github.com/Domenick1991/camrent/internal/storefront"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source := repository.NewFileCameraSource(cfg.Catalog.FilePath)
	if cfg.Catalog.Source == "postgres" {
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		defer pool.Close()
		source = repository.NewPGCameraSource(pool)
	}

	var producer *kafka.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		producer = kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			log.Printf("WARNING: %v", err)
		}
	}

	var store storefront.SessionStore = storefront.NewMemoryStore()
	if cfg.Redis.Addr != "" {
		redisStore := cache.NewRedisSessionStore(cfg.Redis)
		defer redisStore.Close()
		if err := redisStore.Ping(ctx); err != nil {
			log.Printf("WARNING: redis ping: %v", err)
		}
		store = redisStore
	}

	cameraService := cameras.NewCameraService(source, catalog.NewEnricher(cfg.Catalog.ImagePrefix))

	bookingOpts := []booking.BookingServiceOption{
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		booking.WithIDPrefix(cfg.Booking.IDPrefix),
	}
	var bookingService *booking.BookingService
	var bridge storefront.HostBridge = storefront.NoopBridge{}
	if producer != nil {
		bookingService = booking.NewBookingService(producer, cfg.Kafka.BookingTopic, bookingOpts...)
		bridge = storefront.NewRelayBridge(producer, cfg.Kafka.BookingTopic, cfg.Kafka.NotificationsTopic)
	} else {
		bookingService = booking.NewBookingService(nil, "", bookingOpts...)
	}

	workflow := storefront.NewWorkflow(bridge, catalog.DefaultAccessories())
	sessionService := sessions.NewSessionService(store, workflow, cameraService)

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(cfg.HTTP,
		api.NewCameraHandler(cameraService),
		api.NewBookingHandler(bookingService),
		api.NewSessionHandler(sessionService),
	)

	if err := bootstrap.Run(ctx, cfg, router, catalogapi.NewServer(cameraService, bookingService)); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
