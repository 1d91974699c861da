package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"ticketbari/config"
	"ticketbari/internal/api"
	"ticketbari/internal/auth"
	"ticketbari/internal/broker"
	"ticketbari/internal/cache"
	"ticketbari/internal/db"
	"ticketbari/internal/db/repos"
	"ticketbari/internal/monitoring"
	"ticketbari/internal/notifier"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	conn, err := db.Connect(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer conn.Close()

	if err := db.Migrate(conn); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	log.Println("Successfully connected to database")

	deps := api.Deps{
		Users:        repos.NewUserRepository(conn),
		Tickets:      repos.NewTicketRepository(conn),
		Bookings:     repos.NewBookingRepository(conn),
		Transactions: repos.NewTransactionRepository(conn),
	}

	if cfg.JWTSecret != "" {
		deps.Verifier = auth.NewVerifier(cfg.JWTSecret)
	} else {
		log.Println("JWT_SECRET not set, token verification disabled")
	}

	if cfg.RedisURL != "" {
		rdb, err := cache.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("connect redis: %v", err)
		}
		defer rdb.Close()
		deps.Cache = cache.NewTicketCache(rdb)
	}

	if cfg.RabbitMQURL != "" {
		b, err := broker.NewBroker(cfg.RabbitMQURL, "moderation")
		if err != nil {
			log.Printf("broker unavailable, moderation events disabled: %v", err)
		} else {
			defer b.Close()
			deps.Publisher = b

			if cfg.Mailer.APIKey != "" && cfg.Mailer.FromEmail != "" {
				n := notifier.New(cfg.Mailer.APIKey, cfg.Mailer.FromName, cfg.Mailer.FromEmail)
				if err := n.Run(b); err != nil {
					log.Printf("notifier disabled: %v", err)
				}
			}
		}
	}

	r := gin.Default()
	r.Use(monitoring.Middleware())
	api.SetupRoutes(r, deps)

	log.Printf("TicketBari server running on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
