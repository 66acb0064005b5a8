package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/kmenon/travel-booking/internal/config"
	"github.com/kmenon/travel-booking/internal/database"
	"github.com/kmenon/travel-booking/internal/handler"
	"github.com/kmenon/travel-booking/internal/queue"
	"github.com/kmenon/travel-booking/internal/repository"
	"github.com/kmenon/travel-booking/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	// Nil when Redis is unreachable; cache and rate limiting degrade to no-ops.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	catalog := repository.NewCatalogRepo(db)
	places := repository.NewPlaceRepo(db)
	bookings := repository.NewBookingRepo(db)
	reviews := repository.NewReviewRepo(db)

	e := echo.New()
	router.Register(e, router.Handlers{
		Auth:    handler.NewAuthHandler(cfg, users),
		Catalog: handler.NewCatalogHandler(catalog),
		Booking: handler.NewBookingHandler(bookings, places),
		Review:  handler.NewReviewHandler(reviews, places),
		Place:   handler.NewPlaceHandler(places),
	}, cfg, rdb)

	// Drains booking.confirmed into logs/booking.log; reconnects on its own.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
