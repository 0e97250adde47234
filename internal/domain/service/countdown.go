package service

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/launchbot/slack-countdown-bot/internal/clock"
	"github.com/launchbot/slack-countdown-bot/internal/domain"
	"github.com/launchbot/slack-countdown-bot/internal/domain/contract"
	"github.com/launchbot/slack-countdown-bot/internal/domain/entity"
)

var _ contract.CountdownService = (*CountdownService)(nil)

// CountdownService owns the single launch countdown. The slash-command
// handler and the scheduled trigger run on separate goroutines, so every
// operation takes the mutex for the full read or mutation.
type CountdownService struct {
	mu    sync.Mutex
	state entity.Countdown

	clk clock.Clock
	loc *time.Location
}

func New(clk clock.Clock) (*CountdownService, error) {
	loc, err := time.LoadLocation(domain.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %s: %w", domain.Timezone, err)
	}

	return &CountdownService{
		clk: clk,
		loc: loc,
	}, nil
}

// SetTarget replaces the launch target and resets the announcement flag.
// A target in the past is accepted on purpose: the next tick then produces
// the launch announcement straight away.
func (s *CountdownService) SetTarget(role entity.CallerRole, rawText string) (string, error) {
	if !role.IsPrivileged() {
		return "", domain.ErrPermissionDenied
	}

	target, err := time.ParseInLocation(domain.DateTimeFormat, strings.TrimSpace(rawText), s.loc)
	if err != nil {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidFormat, rawText)
	}

	s.mu.Lock()
	s.state = entity.Countdown{Target: target}
	s.mu.Unlock()

	return fmt.Sprintf(domain.MsgConfirmation, target.Format(domain.DateTimeZoneFormat)), nil
}

// QueryRemaining returns the countdown status for the current instant.
// Pure read, no state change.
func (s *CountdownService) QueryRemaining() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.IsSet() {
		return "", domain.ErrNotConfigured
	}

	now := s.clk.Now().In(s.loc)
	if !now.Before(s.state.Target) {
		return domain.MsgLive, nil
	}

	return fmt.Sprintf(domain.MsgRoutine, formatRemaining(s.state.Target.Sub(now))), nil
}

// ProduceScheduledMessage decides what a scheduled tick should post. The
// launch announcement is produced exactly once per target: the first tick
// at or after the target flips the announced flag, every later tick is
// silent until a new target is set.
func (s *CountdownService) ProduceScheduledMessage() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.IsSet() {
		return "", false
	}

	now := s.clk.Now().In(s.loc)
	if !now.Before(s.state.Target) {
		if s.state.Announced {
			return "", false
		}
		s.state.Announced = true
		return domain.MsgLive, true
	}

	return fmt.Sprintf(domain.MsgRoutine, formatRemaining(s.state.Target.Sub(now))), true
}

// formatRemaining renders a duration as "Xd Yh Zm", dropping zero-valued
// units. Sub-minute remainders render as "0m".
func formatRemaining(d time.Duration) string {
	total := int64(d.Seconds())
	days := total / 86400
	hours := total % 86400 / 3600
	minutes := total % 3600 / 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if len(parts) == 0 {
		return "0m"
	}

	return strings.Join(parts, " ")
}
