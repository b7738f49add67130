package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mel-lim/listmaker-backend/config"
	"github.com/mel-lim/listmaker-backend/database"
	"github.com/mel-lim/listmaker-backend/routes"
	"github.com/mel-lim/listmaker-backend/services"
	"github.com/mel-lim/listmaker-backend/utils"
)

func main() {
	cfg := config.LoadConfig()

	if err := utils.InitLogger(); err != nil {
		log.Fatalf("failed to init loggers: %v", err)
	}

	// Подключение к PostgreSQL
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	log.Println("Connected to PostgreSQL")

	// Миграция
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	log.Println("Migration complete")

	// Сидирование шаблонных списков
	if err := database.SeedTemplates(db); err != nil {
		log.Fatalf("failed to seed templates: %v", err)
	}
	log.Println("Templates seeded (if needed)")

	// Подключение к Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	log.Println("Connected to Redis")

	// Крон очистки просроченных гостевых аккаунтов
	guestSweep := services.StartGuestSweepCron(db, time.Duration(cfg.GuestTTLHours)*time.Hour)
	defer guestSweep.Stop()
	log.Println("Guest sweep cron started")

	r := routes.SetupRouter(db, rdb, cfg)

	log.Printf("Server is running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
