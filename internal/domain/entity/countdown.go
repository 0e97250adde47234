package entity

import "time"

// Countdown holds the launch countdown state. The zero value means no
// countdown has been configured yet.
type Countdown struct {
	Target    time.Time
	Announced bool
}

// IsSet reports whether a launch target has been configured.
func (c Countdown) IsSet() bool {
	return !c.Target.IsZero()
}

// CallerRole is the privilege level of the user invoking a command, as
// resolved by the transport layer.
type CallerRole string

const (
	RoleAdmin  CallerRole = "admin"
	RoleMember CallerRole = "member"
)

// IsPrivileged reports whether the role may change the countdown target.
func (r CallerRole) IsPrivileged() bool {
	return r == RoleAdmin
}
