package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdSet    CommandType = "set"
	CmdStatus CommandType = "status"
	CmdHelp   CommandType = "help"
)

type Command struct {
	Type CommandType
	Args string
	Raw  string
}

// ParseCommand maps a slash command and its text to a typed command.
// `/setcountdown <text>` sets the launch target, `/countdown` queries the
// remaining time, `/countdown help` shows usage.
func ParseCommand(command, text string) (*Command, error) {
	cmd := &Command{
		Raw: text,
	}

	switch command {
	case "/setcountdown":
		cmd.Type = CmdSet
		cmd.Args = strings.TrimSpace(text)
	case "/countdown":
		if strings.TrimSpace(text) == "help" {
			cmd.Type = CmdHelp
		} else {
			cmd.Type = CmdStatus
		}
	default:
		return nil, fmt.Errorf("unknown command: %s", command)
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available commands:*

• ` + "`/setcountdown YYYY-MM-DD HH:MM`" + ` - Set launch date/time in Eastern time (admins only, ex: 2024-12-31 23:59)
• ` + "`/countdown`" + ` - Check the remaining time until launch
• ` + "`/countdown help`" + ` - Show this message

Countdown updates are posted automatically to the channel where the countdown was set.`
}
