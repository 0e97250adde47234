package scheduler

import (
	"errors"
	"testing"

	"github.com/launchbot/slack-countdown-bot/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type schedulerMocks struct {
	countdownService *mocks.MockCountdownService
	slackClient      *mocks.MockSlackClient
}

func newSchedulerTest(t *testing.T, debugMode bool) (*Scheduler, schedulerMocks, *gomock.Controller) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := schedulerMocks{
		countdownService: mocks.NewMockCountdownService(ctrl),
		slackClient:      mocks.NewMockSlackClient(ctrl),
	}

	s := New(m.countdownService, m.slackClient, debugMode)
	require.NotNil(t, s)

	return s, m, ctrl
}

func TestNew(t *testing.T) {
	s, m, ctrl := newSchedulerTest(t, false)
	defer ctrl.Finish()

	assert.Equal(t, m.countdownService, s.countdownService)
	assert.Equal(t, m.slackClient, s.slackClient)
	assert.NotNil(t, s.cron)
	assert.Empty(t, s.channelID)
}

func TestScheduler_tick(t *testing.T) {
	tests := []struct {
		name       string
		channelID  string
		buildMocks func(m schedulerMocks)
	}{
		{
			name: "Should do nothing before any countdown is set",
			buildMocks: func(m schedulerMocks) {
				// No channel recorded, service must not even be consulted.
			},
		},
		{
			name:      "Should stay silent when the service produces nothing",
			channelID: "C123456789",
			buildMocks: func(m schedulerMocks) {
				m.countdownService.EXPECT().
					ProduceScheduledMessage().
					Return("", false).Times(1)
			},
		},
		{
			name:      "Should post the produced message to the recorded channel",
			channelID: "C123456789",
			buildMocks: func(m schedulerMocks) {
				m.countdownService.EXPECT().
					ProduceScheduledMessage().
					Return("⏳ Token Launch Incoming! 🚀\nOnly 2h left until liftoff!", true).Times(1)
				m.slackClient.EXPECT().
					PostMessage("C123456789", gomock.Any(), gomock.Any()).
					Return("C123456789", "1700000000.000100", nil).Times(1)
			},
		},
		{
			name:      "Should survive a Slack delivery failure",
			channelID: "C123456789",
			buildMocks: func(m schedulerMocks) {
				m.countdownService.EXPECT().
					ProduceScheduledMessage().
					Return("🎉 Token is LIVE! 🚀\nThe wait is over! Join the action now!", true).Times(1)
				m.slackClient.EXPECT().
					PostMessage("C123456789", gomock.Any(), gomock.Any()).
					Return("", "", errors.New("channel_not_found")).Times(1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m, ctrl := newSchedulerTest(t, true)
			defer ctrl.Finish()

			if tt.channelID != "" {
				s.SetChannel(tt.channelID)
			}
			tt.buildMocks(m)

			s.tick()
		})
	}
}

func TestScheduler_SetChannel_ReplacesTarget(t *testing.T) {
	s, m, ctrl := newSchedulerTest(t, false)
	defer ctrl.Finish()

	s.SetChannel("C111")
	s.SetChannel("C222")

	m.countdownService.EXPECT().
		ProduceScheduledMessage().
		Return("update", true).Times(1)
	m.slackClient.EXPECT().
		PostMessage("C222", gomock.Any(), gomock.Any()).
		Return("C222", "1700000000.000100", nil).Times(1)

	s.tick()
}
