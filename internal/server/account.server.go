package server

import (
	"context"
	"log"
	"net/http"

	"account-service/internal/authz"
	"account-service/internal/config"
	"account-service/internal/handler"
	"account-service/internal/repository"
	"account-service/internal/router"
	"account-service/internal/usecase"
	"account-service/pkg/id"
	"account-service/pkg/kafka"
	"account-service/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
)

// Closer tears down everything NewServer opened, in reverse order.
type Closer func()

func NewServer(cfg config.AppConfig) (*http.Server, Closer) {
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	db, err := config.ConnectDB(context.Background(), cfg.DBConnString)
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}

	if err := repository.RunMigrations(cfg.DBConnString); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	sf, err := id.NewSnowflake(cfg.SnowflakeNode)
	if err != nil {
		log.Fatalf("failed to init snowflake: %v", err)
	}

	var producer *kafka.AccountEventProducer
	if len(cfg.KafkaBrokers) > 0 {
		producer, err = kafka.NewAccountEventProducer(cfg.KafkaBrokers)
		if err != nil {
			log.Fatalf("failed to create Kafka producer: %v", err)
		}
	} else {
		log.Println("no Kafka brokers configured, account events disabled")
	}

	accountRepo := repository.NewAccountRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	sessionRepo := repository.NewSessionRepository(rdb)

	evaluator := authz.NewEvaluator(accountRepo, rdb)
	tokens := middleware.NewJWT(cfg.JWTSecret, cfg.JWTIssuer, cfg.SessionTTL)
	auth := middleware.NewAuthMiddleware(tokens, sessionRepo)

	// A nil *AccountEventProducer inside a non-nil interface would dodge the
	// producer nil-checks in the usecases.
	var events usecase.EventProducer
	if producer != nil {
		events = producer
	}

	accountUC := usecase.NewAccountUsecase(accountRepo, evaluator, events)
	sessionUC := usecase.NewSessionUsecase(accountRepo, sessionRepo, tokens, sf)
	ticketUC := usecase.NewTicketUsecase(ticketRepo, sf, events)

	accountHandler := handler.NewAccountHandler(accountUC)
	sessionHandler := handler.NewSessionHandler(sessionUC)
	ticketHandler := handler.NewTicketHandler(ticketUC)

	r := chi.NewRouter()
	router.SetupRoutes(r, accountHandler, sessionHandler, ticketHandler, auth, rdb)

	closer := func() {
		if producer != nil {
			log.Println("closing Kafka producer...")
			if err := producer.Close(); err != nil {
				log.Printf("error closing producer: %v", err)
			}
		}
		log.Println("closing Redis connection...")
		if err := rdb.Close(); err != nil {
			log.Printf("error closing Redis: %v", err)
		}
		log.Println("closing database connection...")
		db.Close()
	}

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}, closer
}
