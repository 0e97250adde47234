package contract

import (
	"github.com/launchbot/slack-countdown-bot/internal/domain/entity"
)

// CountdownService is the core countdown logic invoked by the slash-command
// handler and by the scheduled trigger.
type CountdownService interface {
	// SetTarget parses rawText as a launch date/time in the fixed Eastern
	// zone and replaces the current target. Returns the confirmation text
	// to echo back, or domain.ErrPermissionDenied / domain.ErrInvalidFormat.
	SetTarget(role entity.CallerRole, rawText string) (string, error)

	// QueryRemaining returns the countdown status text for the current
	// instant, or domain.ErrNotConfigured when no target is set.
	QueryRemaining() (string, error)

	// ProduceScheduledMessage returns the text a scheduled tick should
	// post. ok is false when nothing should be sent (no target configured,
	// or the launch announcement has already gone out).
	ProduceScheduledMessage() (text string, ok bool)
}

// Notifier receives the delivery target for scheduled countdown messages.
// The handler records the channel of the last successful /setcountdown here.
type Notifier interface {
	SetChannel(channelID string)
}
