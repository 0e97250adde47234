package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/launchbot/slack-countdown-bot/internal/domain"
	"github.com/launchbot/slack-countdown-bot/internal/domain/contract"
	"github.com/launchbot/slack-countdown-bot/internal/domain/entity"
	slackcmd "github.com/launchbot/slack-countdown-bot/internal/slack"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	slackClient      contract.SlackClient
	countdownService contract.CountdownService
	notifier         contract.Notifier
	signingSecret    string
}

func New(slackClient contract.SlackClient, countdownService contract.CountdownService, notifier contract.Notifier, signingSecret string) *SlackHandler {
	return &SlackHandler{
		slackClient:      slackClient,
		countdownService: countdownService,
		notifier:         notifier,
		signingSecret:    signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Command, s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	// Handle command
	response := h.handleCommand(cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdSet:
		return h.handleSetCountdown(cmd, slashCmd)
	case slackcmd.CmdStatus:
		return h.handleCountdown()
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command. Try `/countdown help`")
	}
}

func (h *SlackHandler) handleSetCountdown(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	role, err := h.callerRole(slashCmd.UserID)
	if err != nil {
		return h.createErrorResponse("Failed to check your permissions")
	}

	confirmation, err := h.countdownService.SetTarget(role, cmd.Args)
	if errors.Is(err, domain.ErrPermissionDenied) {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         domain.MsgPermissionDenied,
		}
	}
	if errors.Is(err, domain.ErrInvalidFormat) {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         domain.MsgInvalidFormat,
		}
	}
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to set countdown: %v", err))
	}

	// Scheduled updates go to the channel that configured the countdown.
	h.notifier.SetChannel(slashCmd.ChannelID)

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         confirmation,
	}
}

func (h *SlackHandler) handleCountdown() *slack.Msg {
	text, err := h.countdownService.QueryRemaining()
	if errors.Is(err, domain.ErrNotConfigured) {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         domain.MsgNotConfigured,
		}
	}
	if err != nil {
		return h.createErrorResponse("Failed to check countdown")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         text,
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// callerRole resolves the invoking user's privilege via the Slack users API.
// Workspace admins and owners may set the countdown.
func (h *SlackHandler) callerRole(userID string) (entity.CallerRole, error) {
	user, err := h.slackClient.GetUserInfo(userID)
	if err != nil {
		return "", fmt.Errorf("failed to get user info from Slack: %w", err)
	}

	if user.IsAdmin || user.IsOwner {
		return entity.RoleAdmin, nil
	}
	return entity.RoleMember, nil
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
