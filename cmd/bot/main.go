package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/launchbot/slack-countdown-bot/internal/clock"
	"github.com/launchbot/slack-countdown-bot/internal/config"
	"github.com/launchbot/slack-countdown-bot/internal/domain/service"
	"github.com/launchbot/slack-countdown-bot/internal/handlers"
	"github.com/launchbot/slack-countdown-bot/internal/scheduler"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	slackClient := slack.New(cfg.SlackBotToken)

	countdownService, err := service.New(clock.New())
	if err != nil {
		log.Fatalf("Failed to initialize countdown service: %v", err)
	}

	sched := scheduler.New(countdownService, slackClient, cfg.DebugMode)
	sched.Start()
	defer sched.Stop()

	handler := handlers.New(slackClient, countdownService, sched, cfg.SlackSigningSecret)

	http.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
