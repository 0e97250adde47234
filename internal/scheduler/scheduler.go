package scheduler

import (
	"log"
	"sync"
	"time"

	"github.com/launchbot/slack-countdown-bot/internal/domain/contract"
	"github.com/robfig/cron/v3"
	"github.com/slack-go/slack"
)

const (
	productionInterval = time.Hour
	debugInterval      = time.Minute
)

var _ contract.Notifier = (*Scheduler)(nil)

// Scheduler drives the periodic countdown updates. Each tick asks the
// countdown service for a message and posts it to the channel recorded by
// the last successful /setcountdown.
type Scheduler struct {
	countdownService contract.CountdownService
	slackClient      contract.SlackClient
	cron             *cron.Cron

	mu        sync.Mutex
	channelID string
}

// New builds the trigger with its cadence fixed at construction time:
// hourly in production, every minute in debug mode.
func New(countdownService contract.CountdownService, slackClient contract.SlackClient, debugMode bool) *Scheduler {
	s := &Scheduler{
		countdownService: countdownService,
		slackClient:      slackClient,
		cron:             cron.New(),
	}

	interval := productionInterval
	if debugMode {
		interval = debugInterval
	}
	s.cron.Schedule(cron.Every(interval), cron.FuncJob(s.tick))

	return s
}

func (s *Scheduler) Start() {
	log.Println("Scheduler starting...")
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("Scheduler stopped")
}

// SetChannel records where scheduled countdown messages are delivered.
func (s *Scheduler) SetChannel(channelID string) {
	s.mu.Lock()
	s.channelID = channelID
	s.mu.Unlock()
}

func (s *Scheduler) tick() {
	s.mu.Lock()
	channelID := s.channelID
	s.mu.Unlock()

	// No countdown has been set in any channel yet.
	if channelID == "" {
		return
	}

	text, ok := s.countdownService.ProduceScheduledMessage()
	if !ok {
		return
	}

	_, _, err := s.slackClient.PostMessage(
		channelID,
		slack.MsgOptionText(text, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		log.Printf("Failed to send countdown update to channel %s: %v", channelID, err)
		return
	}

	log.Printf("Countdown update sent to channel %s", channelID)
}
